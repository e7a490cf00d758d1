package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"campus-nav/model"

	"gopkg.in/yaml.v3"
)

// 数据文件格式
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LoadFile 读取地图数据文件，按扩展名选择 JSON 或 YAML
func LoadFile(path string) (*model.MapData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, configErrorf(err, "读取文件失败 %s", path)
	}
	return Decode(raw, FormatFromPath(path))
}

// FormatFromPath 根据扩展名判断格式，默认 JSON
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode 解析地图数据，不认识的字段视为错误
func Decode(raw []byte, format string) (*model.MapData, error) {
	var data model.MapData

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&data); err != nil {
			return nil, configErrorf(err, "解析 YAML 失败")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&data); err != nil {
			return nil, configErrorf(err, "解析 JSON 失败")
		}
		// 文件里只能有一个 JSON 值
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, configErrorf(err, "JSON 数据之后还有多余内容")
		}
	default:
		return nil, configErrorf(nil, "不支持的格式: %s", format)
	}

	return &data, nil
}

// Load 读取并校验地图数据文件
func Load(path string) (*Registry, *model.MapData, error) {
	data, err := LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := FromMapData(data)
	if err != nil {
		return nil, nil, err
	}
	return r, data, nil
}
