package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"bandung-maps/config"
	"bandung-maps/data"
	"bandung-maps/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 连接 PostgreSQL, 自动迁移表结构, 表为空时导入内置地图数据
func InitDB(cfg config.Database) (*gorm.DB, error) {
	// 带重试的数据库连接 (Docker 启动时数据库可能还没准备好)
	var (
		gdb *gorm.DB
		err error
	)
	maxRetries := max(cfg.MaxRetries, 1)
	for i := 0; i < maxRetries; i++ {
		gdb, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		log.Printf("等待数据库就绪... (%d/%d): %v", i+1, maxRetries, err)
		time.Sleep(cfg.RetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 自动迁移模式 (自动创建表结构)
	if err := gdb.AutoMigrate(&model.Node{}, &model.Edge{}, &model.MetaEntry{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	// 检查是否需要导入初始数据
	var nodeCount int64
	if err := gdb.Model(&model.Node{}).Count(&nodeCount).Error; err != nil {
		return nil, fmt.Errorf("统计节点失败: %w", err)
	}
	if nodeCount == 0 {
		log.Println("检测到数据库为空，正在导入内置地图数据...")
		mapData, err := data.Bandung()
		if err != nil {
			return nil, err
		}
		if err := ImportMapData(gdb, mapData); err != nil {
			return nil, err
		}
		log.Println("地图数据导入成功!")
	}

	log.Println("数据库连接并初始化成功！")
	return gdb, nil
}

// ImportMapData 在一个事务中批量写入节点和边
func ImportMapData(gdb *gorm.DB, mapData model.MapData) error {
	if gdb == nil {
		return errors.New("import map data: db is nil")
	}

	nodes, edges := Records(mapData)
	meta, err := MetaEntries(mapData.Meta)
	if err != nil {
		return err
	}
	return gdb.Transaction(func(tx *gorm.DB) error {
		if len(meta) > 0 {
			if err := tx.Create(&meta).Error; err != nil {
				return fmt.Errorf("插入元数据失败: %w", err)
			}
		}
		if len(nodes) > 0 {
			if err := tx.CreateInBatches(nodes, 100).Error; err != nil {
				return fmt.Errorf("插入节点失败: %w", err)
			}
			log.Printf("导入了 %d 个节点", len(nodes))
		}
		if len(edges) > 0 {
			if err := tx.CreateInBatches(edges, 100).Error; err != nil {
				return fmt.Errorf("插入边失败: %w", err)
			}
			log.Printf("导入了 %d 条边", len(edges))
		}
		return nil
	})
}

// LoadMapData 从数据库读取地图数据和元数据, 节点按导入时的顺序, 边按 ID 排序
func LoadMapData(gdb *gorm.DB) (model.MapData, error) {
	if gdb == nil {
		return model.MapData{}, errors.New("load map data: db is nil")
	}

	var mapData model.MapData
	if err := gdb.Order("position").Find(&mapData.Nodes).Error; err != nil {
		return model.MapData{}, fmt.Errorf("读取节点失败: %w", err)
	}
	if err := gdb.Order("id").Find(&mapData.Edges).Error; err != nil {
		return model.MapData{}, fmt.Errorf("读取边失败: %w", err)
	}

	var entries []model.MetaEntry
	if err := gdb.Find(&entries).Error; err != nil {
		return model.MapData{}, fmt.Errorf("读取元数据失败: %w", err)
	}
	meta, err := DecodeMeta(entries)
	if err != nil {
		return model.MapData{}, err
	}
	mapData.Meta = meta
	return mapData, nil
}

// Records 把地图数据转换为待写入的记录: 节点记下顺序, 边清空 ID 交给数据库生成
func Records(mapData model.MapData) ([]model.Node, []model.Edge) {
	nodes := make([]model.Node, len(mapData.Nodes))
	for i, n := range mapData.Nodes {
		n.Position = i
		nodes[i] = n
	}

	edges := make([]model.Edge, len(mapData.Edges))
	for i, e := range mapData.Edges {
		e.ID = 0
		edges[i] = e
	}
	return nodes, edges
}

// MetaEntries 把元数据逐项编码为 JSON, 以便存入数据库
func MetaEntries(meta map[string]interface{}) ([]model.MetaEntry, error) {
	entries := make([]model.MetaEntry, 0, len(meta))
	for key, value := range meta {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("编码元数据 %q 失败: %w", key, err)
		}
		entries = append(entries, model.MetaEntry{Key: key, Value: string(raw)})
	}
	return entries, nil
}

// DecodeMeta 还原 MetaEntries 编码的元数据; 没有记录时返回 nil
func DecodeMeta(entries []model.MetaEntry) (map[string]interface{}, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	meta := make(map[string]interface{}, len(entries))
	for _, e := range entries {
		var value interface{}
		if err := json.Unmarshal([]byte(e.Value), &value); err != nil {
			return nil, fmt.Errorf("解析元数据 %q 失败: %w", e.Key, err)
		}
		meta[e.Key] = value
	}
	return meta, nil
}
