package algo

import (
	"container/heap"
	"fmt"
	"math"
)

// PathSegment 路径段信息
type PathSegment struct {
	FromID   string  `json:"from_id"`
	ToID     string  `json:"to_id"`
	Distance float64 `json:"distance"` // 公里
}

// PathResult 路径规划结果
type PathResult struct {
	Path     []string      // 节点 ID 序列 (含起点和终点)
	Segments []PathSegment // 路径段详情
	Distance float64       // 总距离 (公里), 无路径时为 +Inf
	Found    bool          // 是否找到路径
}

// frontierItem 优先队列中的元素: 一条尚未确定的候选路径
type frontierItem struct {
	Cost   float64  // 累计距离
	NodeID string   // 当前节点
	Path   []string // 到达 NodeID 之前经过的节点, 多个元素可能共享, 只读
	Seq    int      // 入队序号, 距离相同时先入队的先出队
	Index  int      // 在堆中的索引
}

// frontier 实现 heap.Interface 接口的优先队列 (最小堆)
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *frontier) Push(x interface{}) {
	n := len(*pq)
	item := x.(*frontierItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // 避免内存泄漏
	item.Index = -1 // 标记为已移除
	*pq = old[0 : n-1]
	return item
}

// ShortestPath 使用 Dijkstra 算法寻找 startID 到 endID 的最短路径
// 返回总距离和节点序列; 不连通时返回 (+Inf, nil)
// 不在邻接表中的起点视为没有出边; 函数不修改 adj, 可并发调用
func ShortestPath(adj Adjacency, startID, endID string) (float64, []string) {
	visited := make(map[string]bool, len(adj))

	pq := make(frontier, 0, len(adj))
	heap.Init(&pq)
	heap.Push(&pq, &frontierItem{NodeID: startID})
	seq := 0

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*frontierItem)

		// 旧的重复条目 (lazy deletion), 跳过
		if visited[current.NodeID] {
			continue
		}
		visited[current.NodeID] = true

		path := make([]string, len(current.Path)+1)
		copy(path, current.Path)
		path[len(path)-1] = current.NodeID

		// 终点第一次出队时的距离即为最短距离 (边权非负)
		if current.NodeID == endID {
			return current.Cost, path
		}

		for _, nb := range adj[current.NodeID] {
			if visited[nb.ID] {
				continue
			}
			seq++
			heap.Push(&pq, &frontierItem{
				Cost:   current.Cost + nb.Dist,
				NodeID: nb.ID,
				Path:   path,
				Seq:    seq,
			})
		}
	}

	return math.Inf(1), nil
}

// FindPath 在图上规划路径
// 起点或终点不存在时返回 ErrNodeNotFound; 不连通时 Found 为 false
func (g *Graph) FindPath(startID, endID string) (PathResult, error) {
	for _, id := range []string{startID, endID} {
		if !g.HasNode(id) {
			return PathResult{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	cost, path := ShortestPath(g.AdjList, startID, endID)
	if math.IsInf(cost, 1) {
		return PathResult{Distance: cost, Found: false}, nil
	}

	// 构建路径段信息
	segments := make([]PathSegment, 0, len(path))
	for i := 0; i+1 < len(path); i++ {
		segments = append(segments, PathSegment{
			FromID:   path[i],
			ToID:     path[i+1],
			Distance: g.edgeDist(path[i], path[i+1]),
		})
	}

	return PathResult{
		Path:     path,
		Segments: segments,
		Distance: cost,
		Found:    true,
	}, nil
}

// edgeDist 两个相邻节点之间最短的那条边的距离
func (g *Graph) edgeDist(fromID, toID string) float64 {
	best := math.Inf(1)
	for _, nb := range g.AdjList[fromID] {
		if nb.ID == toID && nb.Dist < best {
			best = nb.Dist
		}
	}
	return best
}
