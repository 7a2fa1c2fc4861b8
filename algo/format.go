package algo

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatKm 格式化公里数, 去掉多余的小数位 (4 -> "4", 2.5 -> "2.5")
func FormatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}

// FormatRoute 把路径格式化为 "A -> B -> C"
func FormatRoute(path []string) string {
	return strings.Join(path, " -> ")
}

// FormatPath 格式化路径结果为可读字符串
func (g *Graph) FormatPath(result PathResult) string {
	if !result.Found {
		return "未找到路径"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "路线: %s\n", FormatRoute(result.Path))
	fmt.Fprintf(&sb, "距离: %s 公里\n", FormatKm(result.Distance))
	for i, seg := range result.Segments {
		fmt.Fprintf(&sb, "%d. %s -> %s (%s 公里)\n", i+1, seg.FromID, seg.ToID, FormatKm(seg.Distance))
	}
	return sb.String()
}

// FormatReport 生成完整的统计报告: 路线和各路段、距离、节点数、边数、度最大的节点以及节点和边列表
func (g *Graph) FormatReport(result PathResult) string {
	stats := g.Stats()

	var sb strings.Builder
	sb.WriteString("图统计:\n")
	if result.Found {
		sb.WriteString(g.FormatPath(result))
	} else {
		sb.WriteString("路线: 无\n")
	}
	fmt.Fprintf(&sb, "节点数: %d\n", stats.NodeCount)
	fmt.Fprintf(&sb, "边数: %d\n", stats.EdgeCount)
	fmt.Fprintf(&sb, "\n度最大的节点: %s -> 度: %d\n", stats.MaxDegreeNode, stats.MaxDegree)

	sb.WriteString("\n节点列表:\n")
	for _, node := range g.NodeList {
		fmt.Fprintf(&sb, "- %s\n", node.ID)
	}

	sb.WriteString("\n边列表:\n")
	for _, edge := range g.EdgeList {
		fmt.Fprintf(&sb, "- %s <-> %s (距离: %s 公里)\n", edge.From, edge.To, FormatKm(edge.Dist))
	}
	return sb.String()
}
