package present

import (
	"campus-nav/model"
	"campus-nav/utils"
)

// DefaultZoom 校园尺度下的默认缩放级别
const DefaultZoom = 18

// Marker 地图上的一个标记
type Marker struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Category string  `json:"category"`
}

// MapView 初始地图: 中心点、缩放级别、范围和全部标记
type MapView struct {
	Center  model.Point    `json:"center"`
	Zoom    int            `json:"zoom"`
	Bounds  [2]model.Point `json:"bounds"` // [西南角, 东北角]
	Markers []Marker       `json:"markers"`
}

// NewMapView 以全部地点坐标的平均值为中心
func NewMapView(locations []model.Location) MapView {
	points := make([]model.Point, 0, len(locations))
	markers := make([]Marker, 0, len(locations))
	for _, l := range locations {
		points = append(points, l.Point())
		markers = append(markers, Marker{Name: l.Name, Lat: l.Lat, Lng: l.Lng, Category: l.Category})
	}

	view := MapView{
		Center:  utils.Centroid(points),
		Zoom:    DefaultZoom,
		Markers: markers,
	}
	if len(points) > 0 {
		b := utils.Bounds(points)
		view.Bounds = [2]model.Point{utils.FromOrb(b.Min), utils.FromOrb(b.Max)}
	}
	return view
}
