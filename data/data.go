// Package data 内置的校园地图数据
// 配置的数据文件不存在时作为兜底，测试也使用它
package data

import _ "embed"

// CampusJSON 内置校园地图 (7 个地点)
//
//go:embed campus.json
var CampusJSON []byte
