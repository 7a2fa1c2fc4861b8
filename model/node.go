package model

// Point 代表一个经纬度点 (WGS84)
type Point struct {
	Lat float64 // 纬度
	Lng float64 // 经度
}

// Node 对应地图上的一个区 (kecamatan)，ID 即区名
type Node struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Position int     `json:"-" gorm:"index"` // 在数据中的顺序, 数据库读出时按此排序
}

// Point 返回节点坐标
func (n Node) Point() Point {
	return Point{Lat: n.Lat, Lng: n.Lng}
}
