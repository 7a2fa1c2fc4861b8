package algo

import (
	"errors"
	"fmt"
	"os"

	"bandung-maps/config"
	"bandung-maps/data"
	"bandung-maps/db"
	"bandung-maps/model"
	"bandung-maps/utils"

	"gorm.io/gorm"
)

var (
	// ErrNodeNotFound 起点或终点不在图中
	ErrNodeNotFound = errors.New("节点不存在")

	// ErrInvalidGraph 地图数据不合法 (重复节点、未知端点、负权边)
	ErrInvalidGraph = errors.New("地图数据不合法")
)

// Neighbor 邻接表中的一项: 相邻节点及边的距离
type Neighbor struct {
	ID   string
	Dist float64 // 距离 (公里)
}

// Adjacency 邻接表 (ID -> 邻居列表), 构建后只读
type Adjacency map[string][]Neighbor

// Graph 图结构，用于路径规划
type Graph struct {
	Nodes    map[string]*model.Node // 节点字典 (ID -> Node)
	AdjList  Adjacency              // 邻接表
	NodeList []model.Node           // 节点列表 (保持数据中的顺序)
	EdgeList []model.Edge           // 边列表 (保持数据中的顺序)
	Meta     map[string]interface{} // 地图元数据
}

// Stats 图的统计信息
type Stats struct {
	NodeCount     int    `json:"node_count"`
	EdgeCount     int    `json:"edge_count"`
	MaxDegreeNode string `json:"max_degree_node"`
	MaxDegree     int    `json:"max_degree"`
}

// BuildAdjacency 由节点和边构建邻接表
// 图是无向的: 每条边 (a, b, w) 同时插入 a->b 和 b->a
func BuildAdjacency(nodes []model.Node, edges []model.Edge) Adjacency {
	adj := make(Adjacency, len(nodes))
	for _, node := range nodes {
		adj[node.ID] = []Neighbor{}
	}
	for _, edge := range edges {
		adj[edge.From] = append(adj[edge.From], Neighbor{ID: edge.To, Dist: edge.Dist})
		adj[edge.To] = append(adj[edge.To], Neighbor{ID: edge.From, Dist: edge.Dist})
	}
	return adj
}

// NewGraph 校验地图数据并构建图
func NewGraph(data model.MapData) (*Graph, error) {
	g := &Graph{
		Nodes:    make(map[string]*model.Node, len(data.Nodes)),
		NodeList: make([]model.Node, 0, len(data.Nodes)),
		EdgeList: make([]model.Edge, 0, len(data.Edges)),
		Meta:     data.Meta,
	}

	// 加载节点
	for _, node := range data.Nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("%w: 节点 ID 为空", ErrInvalidGraph)
		}
		if _, exists := g.Nodes[node.ID]; exists {
			return nil, fmt.Errorf("%w: 重复的节点 %q", ErrInvalidGraph, node.ID)
		}
		g.NodeList = append(g.NodeList, node)
		g.Nodes[node.ID] = &g.NodeList[len(g.NodeList)-1]
	}

	// 加载边
	for i, edge := range data.Edges {
		if !g.HasNode(edge.From) || !g.HasNode(edge.To) {
			return nil, fmt.Errorf("%w: 第 %d 条边 %s <-> %s 引用了未知节点", ErrInvalidGraph, i+1, edge.From, edge.To)
		}
		if edge.Dist < 0 {
			return nil, fmt.Errorf("%w: 第 %d 条边 %s <-> %s 距离为负 (%v)", ErrInvalidGraph, i+1, edge.From, edge.To, edge.Dist)
		}
		g.EdgeList = append(g.EdgeList, edge)
	}

	g.AdjList = BuildAdjacency(g.NodeList, g.EdgeList)
	return g, nil
}

// LoadFromJSON 从 JSON 文件加载地图数据
func LoadFromJSON(filepath string) (*Graph, error) {
	file, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("读取文件失败: %w", err)
	}

	mapData, err := data.Decode(file)
	if err != nil {
		return nil, err
	}
	return NewGraph(mapData)
}

// LoadFromDB 从数据库加载地图数据
func LoadFromDB(gdb *gorm.DB) (*Graph, error) {
	mapData, err := db.LoadMapData(gdb)
	if err != nil {
		return nil, err
	}
	return NewGraph(mapData)
}

// Load 按配置的数据来源构建图
func Load(cfg config.Config) (*Graph, error) {
	switch cfg.DataSource {
	case config.SourceJSON:
		return LoadFromJSON(cfg.MapDataPath)
	case config.SourceDB:
		gdb, err := db.InitDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		return LoadFromDB(gdb)
	case config.SourceEmbedded, "":
		mapData, err := data.Bandung()
		if err != nil {
			return nil, err
		}
		return NewGraph(mapData)
	default:
		return nil, fmt.Errorf("未知的数据来源: %q", cfg.DataSource)
	}
}

// HasNode 判断节点是否存在
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Nodes[id]
	return ok
}

// GetNeighbors 获取指定节点的邻居
func (g *Graph) GetNeighbors(nodeID string) []Neighbor {
	return g.AdjList[nodeID]
}

// Degree 节点的度 (相连的边数)
func (g *Graph) Degree(nodeID string) int {
	return len(g.AdjList[nodeID])
}

// MaxDegreeNode 返回度最大的节点; 度相同时取数据中靠前的节点
func (g *Graph) MaxDegreeNode() (string, int) {
	best, bestDegree := "", -1
	for _, node := range g.NodeList {
		if d := g.Degree(node.ID); d > bestDegree {
			best, bestDegree = node.ID, d
		}
	}
	if best == "" {
		return "", 0
	}
	return best, bestDegree
}

// Stats 统计节点数、边数以及度最大的节点
func (g *Graph) Stats() Stats {
	node, degree := g.MaxDegreeNode()
	return Stats{
		NodeCount:     len(g.NodeList),
		EdgeCount:     len(g.EdgeList),
		MaxDegreeNode: node,
		MaxDegree:     degree,
	}
}

// FindNearestNode 找到离给定坐标最近的节点
func (g *Graph) FindNearestNode(lat, lng float64) *model.Node {
	var nearest *model.Node
	minDist := -1.0

	target := model.Point{Lat: lat, Lng: lng}
	for i := range g.NodeList {
		node := &g.NodeList[i]
		dist := utils.HaversineKm(target, node.Point())

		if minDist < 0 || dist < minDist {
			minDist = dist
			nearest = node
		}
	}

	return nearest
}

// OnPath 判断边是否是路径上相邻两点之间的连线 (用于地图高亮)
func OnPath(edge model.Edge, path []string) bool {
	for i := 0; i+1 < len(path); i++ {
		if edge.Other(path[i]) == path[i+1] {
			return true
		}
	}
	return false
}
