// Package navigator 持有当前的地点表和导航图，响应路径查询
//
// 查询只读一个不可变的快照；重新加载时先完整构建新快照，再原子替换，
// 正在进行的查询始终看到完整一致的图。
package navigator

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"campus-nav/algo"
	"campus-nav/model"
	"campus-nav/present"
	"campus-nav/registry"

	"github.com/paulmach/orb/geojson"
)

// ErrNotLoaded 尚未成功加载过地图
var ErrNotLoaded = errors.New("navigator: 地图数据未加载")

// Snapshot 某一时刻的地点表、导航图和视频表
type Snapshot struct {
	Registry *registry.Registry
	Graph    *algo.Graph
	Media    *present.MediaTable
	LoadedAt time.Time
}

// BuildSnapshot 从地图数据构建快照
func BuildSnapshot(data *model.MapData, mediaBaseURL string) (*Snapshot, error) {
	reg, err := registry.FromMapData(data)
	if err != nil {
		return nil, err
	}

	media, err := present.NewMediaTable(data.Media, mediaBaseURL)
	if err != nil {
		return nil, &registry.ConfigError{Reason: "路线视频配置错误", Err: err}
	}

	return &Snapshot{
		Registry: reg,
		Graph:    algo.Build(reg.All()),
		Media:    media,
		LoadedAt: time.Now(),
	}, nil
}

// Result 一次路径查询的完整结果
type Result struct {
	Route       algo.Route
	Coordinates []model.Point
	Directions  string
	MediaURL    string // 没有关联视频时为空
	GeoJSON     *geojson.FeatureCollection
	Version     string
}

// Service 导航服务
type Service struct {
	source       Source
	mediaBaseURL string
	current      atomic.Pointer[Snapshot]
}

// NewService 创建导航服务，需要调用 Reload 加载数据后才能查询
func NewService(source Source, mediaBaseURL string) *Service {
	return &Service{source: source, mediaBaseURL: mediaBaseURL}
}

// Reload 从数据源重新构建快照并替换
// 失败时保留旧快照
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	data, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := BuildSnapshot(data, s.mediaBaseURL)
	if err != nil {
		return nil, err
	}

	s.current.Store(snap)
	log.Printf("地图加载成功! 地点数: %d, 边数: %d, 视频数: %d, 版本: %s",
		snap.Graph.NodeCount(), snap.Graph.EdgeCount(), snap.Media.Len(), snap.Registry.Version())
	return snap, nil
}

// Snapshot 当前快照，未加载时为 nil
func (s *Service) Snapshot() *Snapshot {
	return s.current.Load()
}

// Route 计算起点到终点的最短路径，并准备好展示所需的数据
func (s *Service) Route(start, end string) (*Result, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.Route(start, end)
}

// Route 在该快照上计算路径
func (snap *Snapshot) Route(start, end string) (*Result, error) {
	route, err := snap.Graph.ShortestPath(start, end)
	if err != nil {
		return nil, err
	}

	coords, err := present.Coordinates(route, snap.Registry)
	if err != nil {
		return nil, err
	}
	fc, err := present.GeoJSON(route, snap.Registry)
	if err != nil {
		return nil, err
	}
	mediaURL, _ := snap.Media.Lookup(start, end)

	return &Result{
		Route:       route,
		Coordinates: coords,
		Directions:  present.Directions(route),
		MediaURL:    mediaURL,
		GeoJSON:     fc,
		Version:     snap.Registry.Version(),
	}, nil
}
