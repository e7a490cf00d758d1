package utils

import (
	"math"

	"campus-nav/model"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ToOrb 转换为 orb.Point (注意 orb 的顺序是 [经度, 纬度])
func ToOrb(p model.Point) orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// FromOrb orb.Point 转回 model.Point
func FromOrb(p orb.Point) model.Point {
	return model.Point{Lat: p.Lat(), Lng: p.Lon()}
}

// GeodesicDistance 两点间的球面距离 (米)
// 用于建图时计算每条边的 Weight，采用 Haversine 公式，地球半径取 WGS84 长半轴
func GeodesicDistance(p1, p2 model.Point) float64 {
	return geo.DistanceHaversine(ToOrb(p1), ToOrb(p2))
}

// Centroid 所有点的经纬度算术平均值，用作地图中心
// 空切片返回零值
func Centroid(points []model.Point) model.Point {
	if len(points) == 0 {
		return model.Point{}
	}
	var lat, lng float64
	for _, p := range points {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(points))
	return model.Point{Lat: lat / n, Lng: lng / n}
}

// Bounds 包含所有点的最小外接矩形，前端可用来 fitBounds
func Bounds(points []model.Point) orb.Bound {
	mp := make(orb.MultiPoint, 0, len(points))
	for _, p := range points {
		mp = append(mp, ToOrb(p))
	}
	return mp.Bound()
}

// ValidCoordinate 纬度在 [-90, 90]、经度在 [-180, 180] 且都是有限数值
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return math.Abs(lat) <= 90 && math.Abs(lng) <= 180
}
