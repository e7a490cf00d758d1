// Package present 把路径规划结果转换成地图、文字和视频展示需要的数据
package present

import (
	"fmt"
	"strings"

	"campus-nav/algo"
	"campus-nav/model"
	"campus-nav/utils"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Arrow 路线文字中地点之间的分隔符
const Arrow = " → "

// Locator 按名称查找地点 (registry.Registry 实现了它)
type Locator interface {
	Lookup(name string) (model.Location, bool)
}

// Coordinates 按路径顺序返回坐标，供前端画折线
func Coordinates(route algo.Route, loc Locator) ([]model.Point, error) {
	points := make([]model.Point, 0, len(route.Path))
	for _, name := range route.Path {
		l, ok := loc.Lookup(name)
		if !ok {
			return nil, &algo.LocationNotFoundError{Name: name}
		}
		points = append(points, l.Point())
	}
	return points, nil
}

// Directions 可读的路线文字，例如 "Route from A to B: A → B"
func Directions(route algo.Route) string {
	if len(route.Path) == 0 {
		return ""
	}
	return fmt.Sprintf("Route from %s to %s: %s", route.Start(), route.End(), strings.Join(route.Path, Arrow))
}

// GeoJSON 路线的 GeoJSON 表示: 一条 LineString 加上每个途经地点一个 Point
func GeoJSON(route algo.Route, loc Locator) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()

	line := make(orb.LineString, 0, len(route.Path))
	stops := make([]*geojson.Feature, 0, len(route.Path))
	for i, name := range route.Path {
		l, ok := loc.Lookup(name)
		if !ok {
			return nil, &algo.LocationNotFoundError{Name: name}
		}
		p := utils.ToOrb(l.Point())
		line = append(line, p)

		stop := geojson.NewFeature(p)
		stop.Properties["name"] = l.Name
		stop.Properties["category"] = l.Category
		stop.Properties["order"] = i
		stops = append(stops, stop)
	}

	// 单点路线没有折线
	if len(line) >= 2 {
		path := geojson.NewFeature(line)
		path.Properties["distance"] = route.Distance
		path.Properties["directions"] = Directions(route)
		fc.Append(path)
	}
	for _, stop := range stops {
		fc.Append(stop)
	}
	return fc, nil
}
