package render

import (
	"fmt"
	"io"
	"os"

	"bandung-maps/algo"
	"bandung-maps/model"
	"bandung-maps/utils"
)

// 连线样式
const (
	ColorPath   = "red"
	ColorNormal = "gray"
	WeightPath  = 3.5
	WeightEdge  = 2.5
)

// 没有元数据时的默认地图中心 (万隆市中心) 和缩放级别
var (
	DefaultCenter = model.Point{Lat: -6.9147, Lng: 107.6098}
	DefaultZoom   = 12
)

// MapOptions 地图渲染选项
type MapOptions struct {
	Title  string
	Center model.Point
	Zoom   int
}

// Marker 节点标记
type Marker struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Line 一条边的连线及其中点的距离标签
type Line struct {
	Points [][2]float64 `json:"points"`
	Label  [2]float64   `json:"label"`
	Color  string       `json:"color"`
	Weight float64      `json:"weight"`
	Text   string       `json:"text"`
}

type page struct {
	Title   string
	Summary string
	Center  [2]float64
	Zoom    int
	Markers []Marker
	Lines   []Line
}

// DefaultOptions 从图的元数据中读取地图中心和缩放级别
func DefaultOptions(g *algo.Graph) MapOptions {
	opts := MapOptions{Title: "Bandung", Center: DefaultCenter, Zoom: DefaultZoom}
	meta := model.MapData{Meta: g.Meta}
	if c, ok := meta.Center(); ok {
		opts.Center = c
	}
	if z, ok := meta.Zoom(); ok {
		opts.Zoom = z
	}
	if name, ok := g.Meta["name"].(string); ok && name != "" {
		opts.Title = name
	}
	return opts
}

// Layers 生成节点标记和连线; 路径上的边用红色加粗显示
func Layers(g *algo.Graph, result algo.PathResult) ([]Marker, []Line) {
	markers := make([]Marker, 0, len(g.NodeList))
	for _, node := range g.NodeList {
		markers = append(markers, Marker{ID: node.ID, Lat: node.Lat, Lng: node.Lng})
	}

	lines := make([]Line, 0, len(g.EdgeList))
	for _, edge := range g.EdgeList {
		from, to := g.Nodes[edge.From], g.Nodes[edge.To]
		if from == nil || to == nil {
			continue
		}

		color, weight := ColorNormal, WeightEdge
		if result.Found && algo.OnPath(edge, result.Path) {
			color, weight = ColorPath, WeightPath
		}

		mid := utils.Midpoint(from.Point(), to.Point())
		lines = append(lines, Line{
			Points: [][2]float64{{from.Lat, from.Lng}, {to.Lat, to.Lng}},
			Label:  [2]float64{mid.Lat, mid.Lng},
			Color:  color,
			Weight: weight,
			Text:   algo.FormatKm(edge.Dist) + " km",
		})
	}
	return markers, lines
}

// WriteMap 把地图渲染为 HTML 写入 w
func WriteMap(w io.Writer, g *algo.Graph, result algo.PathResult, opts MapOptions) error {
	markers, lines := Layers(g, result)

	summary := "未找到路线"
	if result.Found {
		summary = fmt.Sprintf("路线: %s (%s km)", algo.FormatRoute(result.Path), algo.FormatKm(result.Distance))
	}

	p := page{
		Title:   opts.Title,
		Summary: summary,
		Center:  [2]float64{opts.Center.Lat, opts.Center.Lng},
		Zoom:    opts.Zoom,
		Markers: markers,
		Lines:   lines,
	}
	if err := mapTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("渲染地图失败: %w", err)
	}
	return nil
}

// SaveMap 把地图保存为 HTML 文件
func SaveMap(path string, g *algo.Graph, result algo.PathResult, opts MapOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建地图文件失败: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("保存地图文件失败: %w", cerr)
		}
	}()

	return WriteMap(f, g, result, opts)
}
