package handler

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strings"

	"bandung-maps/algo"
	"bandung-maps/render"

	"github.com/gin-gonic/gin"
)

// MapHandler 地图与路径规划接口
type MapHandler struct {
	Graph      *algo.Graph
	MapOptions render.MapOptions
}

// NewMapHandler 创建地图接口, 地图中心等选项取自图的元数据
func NewMapHandler(g *algo.Graph) *MapHandler {
	return &MapHandler{Graph: g, MapOptions: render.DefaultOptions(g)}
}

// PathRequest 路径规划请求
type PathRequest struct {
	StartID  string  `json:"start_id"`            // 起点节点 ID
	EndID    string  `json:"end_id"`              // 终点节点 ID
	StartLat float64 `json:"start_lat,omitempty"` // 起点纬度 (可选)
	StartLng float64 `json:"start_lng,omitempty"` // 起点经度 (可选)
	EndLat   float64 `json:"end_lat,omitempty"`   // 终点纬度 (可选)
	EndLng   float64 `json:"end_lng,omitempty"`   // 终点经度 (可选)
}

// PathResponse 路径规划响应
type PathResponse struct {
	Found    bool               `json:"found"`
	Path     []PathNode         `json:"path,omitempty"`
	Segments []algo.PathSegment `json:"segments,omitempty"` // 路径段详情
	Distance *float64           `json:"distance,omitempty"` // 总距离 (公里)
	Message  string             `json:"message,omitempty"`
}

// PathNode 路径节点信息
type PathNode struct {
	ID     string  `json:"id"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Degree int     `json:"degree"`
}

func (h *MapHandler) pathNode(id string) (PathNode, bool) {
	node := h.Graph.Nodes[id]
	if node == nil {
		return PathNode{}, false
	}
	return PathNode{
		ID:     node.ID,
		Lat:    node.Lat,
		Lng:    node.Lng,
		Degree: h.Graph.Degree(node.ID),
	}, true
}

// FindPath 路径规划接口
func (h *MapHandler) FindPath(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	// 如果提供了坐标，找到最近的节点
	startID := strings.TrimSpace(req.StartID)
	endID := strings.TrimSpace(req.EndID)

	if req.StartLat != 0 && req.StartLng != 0 {
		if nearest := h.Graph.FindNearestNode(req.StartLat, req.StartLng); nearest != nil {
			startID = nearest.ID
		}
	}

	if req.EndLat != 0 && req.EndLng != 0 {
		if nearest := h.Graph.FindNearestNode(req.EndLat, req.EndLng); nearest != nil {
			endID = nearest.ID
		}
	}

	// 验证起点和终点
	if startID == "" || endID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "起点或终点未指定"})
		return
	}

	// 执行路径规划
	result, err := h.Graph.FindPath(startID, endID)
	if err != nil {
		if errors.Is(err, algo.ErrNodeNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("路径规划失败: start=%s end=%s err=%v", startID, endID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "路径规划失败"})
		return
	}

	if !result.Found {
		c.JSON(http.StatusOK, PathResponse{
			Found:   false,
			Message: "未找到符合条件的路径",
		})
		return
	}

	// 构建路径节点信息
	pathNodes := make([]PathNode, 0, len(result.Path))
	for _, nodeID := range result.Path {
		if pn, ok := h.pathNode(nodeID); ok {
			pathNodes = append(pathNodes, pn)
		}
	}

	distance := result.Distance
	c.JSON(http.StatusOK, PathResponse{
		Found:    true,
		Path:     pathNodes,
		Segments: result.Segments,
		Distance: &distance,
		Message:  "路径规划成功",
	})
}

// GetNodes 获取所有节点信息
func (h *MapHandler) GetNodes(c *gin.Context) {
	nodes := make([]PathNode, 0, len(h.Graph.NodeList))
	for _, node := range h.Graph.NodeList {
		if pn, ok := h.pathNode(node.ID); ok {
			nodes = append(nodes, pn)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(nodes),
		"nodes": nodes,
	})
}

// GetNodeByID 根据 ID 获取节点信息
func (h *MapHandler) GetNodeByID(c *gin.Context) {
	pn, ok := h.pathNode(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "节点不存在"})
		return
	}

	c.JSON(http.StatusOK, pn)
}

// SearchNodes 搜索节点 (名称不区分大小写的模糊匹配)
func (h *MapHandler) SearchNodes(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少搜索关键词"})
		return
	}

	needle := strings.ToLower(query)
	results := make([]PathNode, 0)
	for _, node := range h.Graph.NodeList {
		if strings.Contains(strings.ToLower(node.ID), needle) {
			if pn, ok := h.pathNode(node.ID); ok {
				results = append(results, pn)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// GetEdges 获取所有边
func (h *MapHandler) GetEdges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count": len(h.Graph.EdgeList),
		"edges": h.Graph.EdgeList,
	})
}

// GetStats 图的统计信息: 节点数、边数、度最大的节点
func (h *MapHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Graph.Stats())
}

// RenderMap 返回 HTML 地图; 提供 start 和 end 时高亮最短路线
func (h *MapHandler) RenderMap(c *gin.Context) {
	startID := strings.TrimSpace(c.Query("start"))
	endID := strings.TrimSpace(c.Query("end"))

	var result algo.PathResult
	if startID != "" || endID != "" {
		var err error
		result, err = h.Graph.FindPath(startID, endID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var buf bytes.Buffer
	if err := render.WriteMap(&buf, h.Graph, result, h.MapOptions); err != nil {
		log.Printf("渲染地图失败: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "渲染地图失败"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
