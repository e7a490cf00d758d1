package model

// Point 代表一个经纬度点 (WGS84)
type Point struct {
	Lat float64 `json:"lat"` // 纬度
	Lng float64 `json:"lng"` // 经度
}

// 地点分类 (仅用于展示，不参与路径计算)
const (
	CategoryEntrance  = "entrance"
	CategoryAcademic  = "academic"
	CategoryFacility  = "facility"
	CategoryResidence = "residence"
)

// Location 校园地图上的一个命名地点 (大门、教学楼、食堂等)
type Location struct {
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Lat      float64  `json:"lat" yaml:"lat" validate:"min=-90,max=90"`
	Lng      float64  `json:"lng" yaml:"lng" validate:"min=-180,max=180"`
	Category string   `json:"category" yaml:"category" validate:"oneof=entrance academic facility residence"`
	Aliases  []string `json:"aliases,omitempty" yaml:"aliases,omitempty" validate:"dive,required"` // 别名，只用于搜索和语音匹配
}

// Point 返回地点的坐标
func (l Location) Point() Point {
	return Point{Lat: l.Lat, Lng: l.Lng}
}
