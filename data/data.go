// Package data 内置的万隆 (Bandung) 行政区地图数据
package data

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"bandung-maps/model"
	"bandung-maps/utils"
)

//go:embed bandung.json
var bandungJSON []byte

// rawEdge 文件中的边; dist 字段缺失时 Dist 为 nil
type rawEdge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Dist *float64 `json:"dist"`
}

type rawMapData struct {
	Meta  map[string]interface{} `json:"meta"`
	Nodes []model.Node           `json:"nodes"`
	Edges []rawEdge              `json:"edges"`
}

// Bandung 解析内置的地图数据, 每次调用返回一份新的副本
func Bandung() (model.MapData, error) {
	return Decode(bandungJSON)
}

// Decode 解析 JSON 格式的地图数据
// 没有 dist 字段的边按两端坐标计算距离; 显式写出的 0 保持不变
func Decode(raw []byte) (model.MapData, error) {
	var doc rawMapData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.MapData{}, fmt.Errorf("解析地图数据失败: %w", err)
	}

	points := make(map[string]model.Point, len(doc.Nodes))
	for _, node := range doc.Nodes {
		points[node.ID] = node.Point()
	}

	mapData := model.MapData{Meta: doc.Meta, Nodes: doc.Nodes}
	if len(doc.Edges) > 0 {
		mapData.Edges = make([]model.Edge, 0, len(doc.Edges))
	}
	for _, e := range doc.Edges {
		edge := model.Edge{From: e.From, To: e.To}
		switch {
		case e.Dist != nil:
			edge.Dist = *e.Dist
		case e.From != e.To:
			// 未知端点留给 algo.NewGraph 报错
			from, ok1 := points[e.From]
			to, ok2 := points[e.To]
			if ok1 && ok2 {
				edge.Dist = utils.HaversineKm(from, to)
			}
		}
		mapData.Edges = append(mapData.Edges, edge)
	}
	return mapData, nil
}
