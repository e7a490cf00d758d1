package algo

import (
	"campus-nav/model"
	"campus-nav/utils"
)

// Graph 导航用的无向带权图
// 构建完成后只读，可以在多个 goroutine 之间共享；地点变化时整体重建
type Graph struct {
	nodes   map[string]*model.Location // 节点字典 (名称 -> 地点)
	order   map[string]int             // 节点的登记顺序，用于稳定地打破平局
	adjList map[string][]*model.Edge   // 邻接表 (名称 -> 边列表)
	names   []string                   // 节点列表 (用于遍历)
	edges   int                        // 无向边数量
}

// newGraph 创建一个空的图
func newGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]*model.Location),
		order:   make(map[string]int),
		adjList: make(map[string][]*model.Edge),
	}
}

// Build 在给定地点上构建完全图
// 每对不同地点之间一条边，权重为两点间的球面距离 (米)
// n 个地点得到 n 个节点、n*(n-1)/2 条边；少于 2 个地点时得到平凡图
func Build(locations []model.Location) *Graph {
	g := newGraph()
	for _, loc := range locations {
		g.addNode(loc)
	}

	for i := 0; i < len(g.names); i++ {
		for j := i + 1; j < len(g.names); j++ {
			a, b := g.nodes[g.names[i]], g.nodes[g.names[j]]
			g.addEdge(a.Name, b.Name, utils.GeodesicDistance(a.Point(), b.Point()))
		}
	}
	return g
}

// addNode 添加节点，同名节点只保留第一个
func (g *Graph) addNode(loc model.Location) {
	if _, exists := g.nodes[loc.Name]; exists {
		return
	}
	node := loc
	g.nodes[loc.Name] = &node
	g.order[loc.Name] = len(g.names)
	g.names = append(g.names, loc.Name)
}

// addEdge 添加一条无向边 (两个方向各存一份)
func (g *Graph) addEdge(from, to string, dist float64) {
	g.adjList[from] = append(g.adjList[from], &model.Edge{From: from, To: to, Dist: dist})
	g.adjList[to] = append(g.adjList[to], &model.Edge{From: to, To: from, Dist: dist})
	g.edges++
}

// NodeCount 节点数量
func (g *Graph) NodeCount() int { return len(g.names) }

// EdgeCount 无向边数量
func (g *Graph) EdgeCount() int { return g.edges }

// HasNode 节点是否存在
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Node 获取节点对应的地点
func (g *Graph) Node(name string) (model.Location, bool) {
	node, ok := g.nodes[name]
	if !ok {
		return model.Location{}, false
	}
	return *node, true
}

// Names 按登记顺序返回节点名称
func (g *Graph) Names() []string {
	return append([]string(nil), g.names...)
}

// GetNeighbors 获取指定节点的邻居边
func (g *Graph) GetNeighbors(name string) []*model.Edge {
	return g.adjList[name]
}

// Weight 两点间直接相连的边的权重
func (g *Graph) Weight(from, to string) (float64, bool) {
	for _, edge := range g.adjList[from] {
		if edge.To == to {
			return edge.Dist, true
		}
	}
	return 0, false
}

// FindNearestNode 找到离给定坐标最近的节点
func (g *Graph) FindNearestNode(lat, lng float64) (model.Location, bool) {
	var nearest *model.Location
	minDist := -1.0

	target := model.Point{Lat: lat, Lng: lng}
	for _, name := range g.names {
		node := g.nodes[name]
		dist := utils.GeodesicDistance(target, node.Point())

		if minDist < 0 || dist < minDist {
			minDist = dist
			nearest = node
		}
	}

	if nearest == nil {
		return model.Location{}, false
	}
	return *nearest, true
}
