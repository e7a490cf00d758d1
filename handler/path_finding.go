package handler

import (
	"net/http"

	"campus-nav/algo"
	"campus-nav/model"
	"campus-nav/navigator"
	"campus-nav/present"
	"campus-nav/utils"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"
)

// PathRequest 路径规划请求
// 可以直接给地点名称，也可以给坐标 (取最近的地点)
type PathRequest struct {
	Start    string   `json:"start"`               // 起点名称
	End      string   `json:"end"`                 // 终点名称
	StartLat *float64 `json:"start_lat,omitempty"` // 起点纬度 (可选)
	StartLng *float64 `json:"start_lng,omitempty"` // 起点经度 (可选)
	EndLat   *float64 `json:"end_lat,omitempty"`   // 终点纬度 (可选)
	EndLng   *float64 `json:"end_lng,omitempty"`   // 终点经度 (可选)
}

// PathResponse 路径规划响应
type PathResponse struct {
	Found       bool                       `json:"found"`
	Start       string                     `json:"start"`
	End         string                     `json:"end"`
	Path        []PathNode                 `json:"path"`
	Segments    []algo.Segment             `json:"segments"`
	Distance    float64                    `json:"distance"`    // 总距离 (米)
	Coordinates [][2]float64               `json:"coordinates"` // [[纬度, 经度], ...] 按路径顺序
	Directions  string                     `json:"directions"`
	MediaURL    string                     `json:"media_url,omitempty"`
	GeoJSON     *geojson.FeatureCollection `json:"geojson"`
	Version     string                     `json:"version"`
	Message     string                     `json:"message,omitempty"`
}

// PathNode 地点信息
type PathNode struct {
	Name     string   `json:"name"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Category string   `json:"category"`
	Aliases  []string `json:"aliases,omitempty"`
}

func toPathNode(l model.Location) PathNode {
	return PathNode{Name: l.Name, Lat: l.Lat, Lng: l.Lng, Category: l.Category, Aliases: l.Aliases}
}

func toPathNodes(locations []model.Location) []PathNode {
	nodes := make([]PathNode, 0, len(locations))
	for _, l := range locations {
		nodes = append(nodes, toPathNode(l))
	}
	return nodes
}

// NavigationHandler 路径规划和地点查询接口
type NavigationHandler struct {
	nav *navigator.Service
}

// NewNavigationHandler 创建 NavigationHandler
func NewNavigationHandler(nav *navigator.Service) *NavigationHandler {
	return &NavigationHandler{nav: nav}
}

// snapshot 当前快照，未加载时直接写错误响应
func (h *NavigationHandler) snapshot(c *gin.Context) *navigator.Snapshot {
	snap := h.nav.Snapshot()
	if snap == nil {
		respondError(c, navigator.ErrNotLoaded)
	}
	return snap
}

// FindPath POST /api/route - 路径规划
func (h *NavigationHandler) FindPath(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "请求参数错误: "+err.Error())
		return
	}

	snap := h.snapshot(c)
	if snap == nil {
		return
	}

	if !coordinateOK(req.StartLat, req.StartLng) || !coordinateOK(req.EndLat, req.EndLng) {
		badRequest(c, "坐标超出范围: 纬度 -90~90，经度 -180~180")
		return
	}

	// 如果没有给名称但提供了坐标，找到最近的地点
	start, ok := resolveEndpoint(snap, req.Start, req.StartLat, req.StartLng)
	if !ok {
		badRequest(c, "起点未指定")
		return
	}
	end, ok := resolveEndpoint(snap, req.End, req.EndLat, req.EndLng)
	if !ok {
		badRequest(c, "终点未指定")
		return
	}

	// 同一个快照上完成整次查询
	result, err := snap.Route(start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	pathNodes := make([]PathNode, 0, len(result.Route.Path))
	for _, name := range result.Route.Path {
		if loc, ok := snap.Registry.Lookup(name); ok {
			pathNodes = append(pathNodes, toPathNode(loc))
		}
	}

	coords := make([][2]float64, 0, len(result.Coordinates))
	for _, p := range result.Coordinates {
		coords = append(coords, [2]float64{p.Lat, p.Lng})
	}

	c.JSON(http.StatusOK, PathResponse{
		Found:       true,
		Start:       start,
		End:         end,
		Path:        pathNodes,
		Segments:    result.Route.Segments,
		Distance:    result.Route.Distance,
		Coordinates: coords,
		Directions:  result.Directions,
		MediaURL:    result.MediaURL,
		GeoJSON:     result.GeoJSON,
		Version:     result.Version,
		Message:     "路径规划成功",
	})
}

// coordinateOK 未提供坐标时不检查
func coordinateOK(lat, lng *float64) bool {
	if lat != nil && !utils.ValidCoordinate(*lat, 0) {
		return false
	}
	if lng != nil && !utils.ValidCoordinate(0, *lng) {
		return false
	}
	return true
}

func resolveEndpoint(snap *navigator.Snapshot, name string, lat, lng *float64) (string, bool) {
	if name != "" {
		return name, true
	}
	if lat == nil || lng == nil {
		return "", false
	}
	loc, ok := snap.Graph.FindNearestNode(*lat, *lng)
	if !ok {
		return "", false
	}
	return loc.Name, true
}

// GetLocations GET /api/locations - 获取所有地点
func (h *NavigationHandler) GetLocations(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}

	etag := `"` + snap.Registry.Version() + `"`
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	nodes := toPathNodes(snap.Registry.All())
	c.JSON(http.StatusOK, gin.H{
		"count":     len(nodes),
		"locations": nodes,
		"version":   snap.Registry.Version(),
	})
}

// GetLocationByName GET /api/locations/:name - 根据名称获取地点
func (h *NavigationHandler) GetLocationByName(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}

	name := c.Param("name")
	loc, ok := snap.Registry.Lookup(name)
	if !ok {
		respondError(c, &algo.LocationNotFoundError{Name: name})
		return
	}
	c.JSON(http.StatusOK, toPathNode(loc))
}

// SearchLocations GET /api/locations/search?q= - 按名称或别名搜索
func (h *NavigationHandler) SearchLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		badRequest(c, "缺少搜索关键词")
		return
	}

	snap := h.snapshot(c)
	if snap == nil {
		return
	}

	results := toPathNodes(snap.Registry.Search(query))
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// GetMap GET /api/map - 初始地图 (中心、缩放、标记)
func (h *NavigationHandler) GetMap(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}
	c.JSON(http.StatusOK, present.NewMapView(snap.Registry.All()))
}

// Reload POST /api/admin/reload - 重新加载地图数据
func (h *NavigationHandler) Reload(c *gin.Context) {
	snap, err := h.nav.Reload(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "地图重新加载成功",
		"locations": snap.Graph.NodeCount(),
		"edges":     snap.Graph.EdgeCount(),
		"version":   snap.Registry.Version(),
		"loaded_at": snap.LoadedAt,
	})
}
