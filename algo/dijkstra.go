package algo

import (
	"container/heap"
	"math"
	"slices"

	"campus-nav/model"
)

// Segment 路径中的一段
type Segment struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"` // 米
}

// Route 路径规划结果
type Route struct {
	Path     []string  // 地点名称序列，首尾分别是起点和终点
	Segments []Segment // 路径段详情
	Distance float64   // 总距离 (米)，即经过的边权之和
}

// Start 起点
func (r Route) Start() string { return r.Path[0] }

// End 终点
func (r Route) End() string { return r.Path[len(r.Path)-1] }

// PriorityQueueItem 优先队列中的元素
type PriorityQueueItem struct {
	NodeID string
	Cost   float64 // 距离成本 (米)
	Order  int     // 节点登记顺序，成本相同时按它排序
	Index  int     // 在堆中的索引
}

// PriorityQueue 实现 heap.Interface 接口的优先队列
type PriorityQueue []*PriorityQueueItem

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].Order < pq[j].Order
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*PriorityQueueItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // 避免内存泄漏
	item.Index = -1 // 标记为已移除
	*pq = old[0 : n-1]
	return item
}

// ShortestPath 使用 Dijkstra 算法寻找总距离最短的路径
//
// 起点或终点不存在时返回 *LocationNotFoundError (先检查起点)；
// 起点等于终点时返回只含一个节点、距离为 0 的路径；
// 终点不可达时返回 *NoPathError。
func (g *Graph) ShortestPath(startID, endID string) (Route, error) {
	if !g.HasNode(startID) {
		return Route{}, &LocationNotFoundError{Name: startID}
	}
	if !g.HasNode(endID) {
		return Route{}, &LocationNotFoundError{Name: endID}
	}

	if startID == endID {
		return Route{Path: []string{startID}, Segments: []Segment{}, Distance: 0}, nil
	}

	// 初始化距离成本、前驱和使用的边
	cost := make(map[string]float64, len(g.names))
	prevEdge := make(map[string]*model.Edge, len(g.names))
	visited := make(map[string]bool, len(g.names))

	for _, id := range g.names {
		cost[id] = math.Inf(1) // 无穷大
	}
	cost[startID] = 0

	pq := make(PriorityQueue, 0, len(g.names))
	heap.Init(&pq)
	heap.Push(&pq, &PriorityQueueItem{NodeID: startID, Cost: 0, Order: g.order[startID]})

	// Dijkstra 主循环
	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*PriorityQueueItem)
		currentID := current.NodeID

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		// 到达终点，提前退出
		if currentID == endID {
			break
		}

		for _, edge := range g.GetNeighbors(currentID) {
			neighborID := edge.To
			if visited[neighborID] {
				continue
			}

			newCost := cost[currentID] + edge.Dist
			// 只有严格更短才更新，保证结果确定
			if newCost < cost[neighborID] {
				cost[neighborID] = newCost
				prevEdge[neighborID] = edge
				heap.Push(&pq, &PriorityQueueItem{
					NodeID: neighborID,
					Cost:   newCost,
					Order:  g.order[neighborID],
				})
			}
		}
	}

	if math.IsInf(cost[endID], 1) {
		return Route{}, &NoPathError{Start: startID, End: endID}
	}

	// 回溯路径和边
	var edges []*model.Edge
	for at := endID; at != startID; at = prevEdge[at].From {
		edges = append(edges, prevEdge[at])
	}
	slices.Reverse(edges)

	route := Route{
		Path:     make([]string, 0, len(edges)+1),
		Segments: make([]Segment, 0, len(edges)),
	}
	route.Path = append(route.Path, startID)
	for _, edge := range edges {
		route.Path = append(route.Path, edge.To)
		route.Segments = append(route.Segments, Segment{From: edge.From, To: edge.To, Distance: edge.Dist})
		route.Distance += edge.Dist
	}

	return route, nil
}
