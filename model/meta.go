package model

// MetaEntry 地图元数据的一项 (数据库存储), Value 为 JSON 编码后的值
type MetaEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}
