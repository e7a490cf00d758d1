package model

// Edge 对应两个地点之间的一条无向连线
type Edge struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Dist float64 `json:"dist"` // 距离 (米), 建图时按球面距离算好
}

// RouteMedia 与一对地点关联的路线视频
// From/To 不区分顺序；Resource 是相对路径或 URL，由展示层根据配置解析
type RouteMedia struct {
	From     string `json:"from" yaml:"from" validate:"required"`
	To       string `json:"to" yaml:"to" validate:"required"`
	Resource string `json:"resource" yaml:"resource" validate:"required"`
}

// MapData 用于解析整个地图数据文件 (JSON 或 YAML)
type MapData struct {
	Meta      map[string]interface{} `json:"meta" yaml:"meta"` // 存版本号等元数据
	Locations []Location             `json:"locations" yaml:"locations"`
	Media     []RouteMedia           `json:"media" yaml:"media"`
}
