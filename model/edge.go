package model

// Edge 对应两个区之间的一条无向连线
type Edge struct {
	ID   uint    `json:"-" gorm:"primaryKey"`
	From string  `json:"from" gorm:"index"`
	To   string  `json:"to" gorm:"index"`
	Dist float64 `json:"dist"` // 距离 (公里)
}

// Other 返回边的另一端; id 不是端点时返回空字符串
func (e Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// MapData 用于解析整个地图数据文件
type MapData struct {
	Meta  map[string]interface{} `json:"meta"` // 存地图中心、缩放级别等元数据
	Nodes []Node                 `json:"nodes"`
	Edges []Edge                 `json:"edges"`
}

// Center 从元数据中读取地图中心, 没有时返回 ok=false
func (m MapData) Center() (Point, bool) {
	raw, ok := m.Meta["center"].([]interface{})
	if !ok || len(raw) != 2 {
		return Point{}, false
	}
	lat, ok1 := raw[0].(float64)
	lng, ok2 := raw[1].(float64)
	if !ok1 || !ok2 {
		return Point{}, false
	}
	return Point{Lat: lat, Lng: lng}, true
}

// Zoom 从元数据中读取默认缩放级别
func (m MapData) Zoom() (int, bool) {
	z, ok := m.Meta["zoom"].(float64)
	if !ok {
		return 0, false
	}
	return int(z), true
}
