package navigator

import (
	"context"
	"errors"
	"io/fs"
	"log"

	"campus-nav/model"
	"campus-nav/registry"
)

// Source 地图数据来源 (文件、数据库等)
type Source interface {
	Load(ctx context.Context) (*model.MapData, error)
}

// FileSource 从 JSON/YAML 文件读取地图数据
// 文件不存在且配置了 Fallback 时使用内置数据，Fallback 为空时文件缺失直接报错
type FileSource struct {
	Path     string
	Fallback []byte // 内置的 JSON 数据
}

// Load 读取并解析文件
func (s FileSource) Load(_ context.Context) (*model.MapData, error) {
	data, err := registry.LoadFile(s.Path)
	if err == nil {
		return data, nil
	}

	if errors.Is(err, fs.ErrNotExist) && s.Fallback != nil {
		log.Printf("地图文件 %s 不存在，使用内置地图数据", s.Path)
		return registry.Decode(s.Fallback, registry.FormatJSON)
	}
	return nil, err
}

// StaticSource 直接使用内存中的地图数据 (测试或嵌入场景)
type StaticSource struct {
	Data *model.MapData
}

// Load 返回内存中的数据
func (s StaticSource) Load(_ context.Context) (*model.MapData, error) {
	if s.Data == nil {
		return nil, &registry.ConfigError{Reason: "地图数据为空"}
	}
	return s.Data, nil
}

var _ Source = FileSource{}
var _ Source = StaticSource{}
