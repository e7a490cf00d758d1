// Package registry 校园地点表
//
// Registry 在构造时完成全部校验，之后只读，可以被多个 goroutine 同时访问。
// 需要变更地点时重新构造一个新的 Registry，而不是原地修改。
package registry

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"net/url"
	"path/filepath"
	"strings"

	"campus-nav/model"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/blake2b"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Registry 只读的地点表 (名称 -> 地点)
type Registry struct {
	locations []model.Location // 保持数据文件中的顺序
	index     map[string]int
	version   string
}

// New 校验并构造地点表
// 名称为空、重复、坐标越界或分类未知时返回 *ConfigError
func New(locations []model.Location) (*Registry, error) {
	r := &Registry{
		locations: make([]model.Location, 0, len(locations)),
		index:     make(map[string]int, len(locations)),
	}

	for i, loc := range locations {
		if err := validateLocation(loc); err != nil {
			return nil, configErrorf(err, "第 %d 个地点 %q 不合法", i+1, loc.Name)
		}
		if _, exists := r.index[loc.Name]; exists {
			return nil, configErrorf(nil, "地点名称重复: %q", loc.Name)
		}

		loc = clone(loc)
		r.index[loc.Name] = len(r.locations)
		r.locations = append(r.locations, loc)
	}

	r.version = fingerprint(r.locations)
	return r, nil
}

// FromMapData 从解析好的地图数据构造地点表，并校验其中的路线视频
func FromMapData(data *model.MapData) (*Registry, error) {
	if data == nil {
		return nil, configErrorf(nil, "地图数据为空")
	}
	r, err := New(data.Locations)
	if err != nil {
		return nil, err
	}
	if err := r.CheckMedia(data.Media); err != nil {
		return nil, err
	}
	return r, nil
}

func validateLocation(loc model.Location) error {
	// validator 的 min/max 对 NaN 不可靠，单独检查
	if math.IsNaN(loc.Lat) || math.IsNaN(loc.Lng) || math.IsInf(loc.Lat, 0) || math.IsInf(loc.Lng, 0) {
		return errors.New("坐标不是有限数值")
	}
	return validate.Struct(loc)
}

// CheckMedia 校验路线视频表：两端必须是已登记的地点，资源不能是本机绝对路径
func (r *Registry) CheckMedia(media []model.RouteMedia) error {
	for i, m := range media {
		if err := validate.Struct(m); err != nil {
			return configErrorf(err, "第 %d 条路线视频不合法", i+1)
		}
		for _, name := range []string{m.From, m.To} {
			if _, ok := r.index[name]; !ok {
				return configErrorf(nil, "路线视频引用了不存在的地点: %q", name)
			}
		}
		if isLocalAbsPath(m.Resource) {
			return configErrorf(nil, "路线视频资源不能是本机绝对路径: %q", m.Resource)
		}
	}
	return nil
}

// isLocalAbsPath 识别 /x/y、C:\x\y 以及 file:// 这类本机路径
func isLocalAbsPath(resource string) bool {
	// 盘符路径会被 url.Parse 当成 scheme，先单独判断
	if len(resource) >= 3 && resource[1] == ':' && (resource[2] == '\\' || resource[2] == '/') {
		return true
	}
	u, err := url.Parse(resource)
	if err != nil {
		return filepath.IsAbs(resource) || strings.HasPrefix(resource, "/") || strings.HasPrefix(resource, `\`)
	}
	if strings.EqualFold(u.Scheme, "file") {
		return true
	}
	if u.Scheme != "" {
		return false
	}
	return filepath.IsAbs(resource) || strings.HasPrefix(resource, "/") || strings.HasPrefix(resource, `\`)
}

// Lookup 按名称精确查找 (区分大小写)
func (r *Registry) Lookup(name string) (model.Location, bool) {
	i, ok := r.index[name]
	if !ok {
		return model.Location{}, false
	}
	return clone(r.locations[i]), true
}

// Has 名称是否存在
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// All 按登记顺序返回全部地点的副本
func (r *Registry) All() []model.Location {
	out := make([]model.Location, len(r.locations))
	for i, loc := range r.locations {
		out[i] = clone(loc)
	}
	return out
}

func clone(loc model.Location) model.Location {
	if loc.Aliases != nil {
		loc.Aliases = append([]string(nil), loc.Aliases...)
	}
	return loc
}

// Names 按登记顺序返回全部名称
func (r *Registry) Names() []string {
	names := make([]string, len(r.locations))
	for i, loc := range r.locations {
		names[i] = loc.Name
	}
	return names
}

// Len 地点数量
func (r *Registry) Len() int { return len(r.locations) }

// Version 地点表内容的指纹，内容不变则指纹不变
func (r *Registry) Version() string { return r.version }

// Search 按名称或别名做不区分大小写的子串匹配
func (r *Registry) Search(query string) []model.Location {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	results := make([]model.Location, 0)
	for _, loc := range r.locations {
		if matchAny(loc, func(s string) bool { return strings.Contains(strings.ToLower(s), q) }) {
			results = append(results, clone(loc))
		}
	}
	return results
}

// Resolve 把自由文本 (例如语音识别结果) 解析成一个地点
// 优先级: 精确名称 > 忽略大小写的名称或别名 > 文本中出现的最长名称或别名
func (r *Registry) Resolve(text string) (model.Location, bool) {
	text = strings.TrimSpace(text)
	if loc, ok := r.Lookup(text); ok {
		return loc, true
	}

	for _, loc := range r.locations {
		if matchAny(loc, func(s string) bool { return strings.EqualFold(s, text) }) {
			return clone(loc), true
		}
	}

	lower := strings.ToLower(text)
	best, bestLen := -1, 0
	for i, loc := range r.locations {
		for _, s := range append([]string{loc.Name}, loc.Aliases...) {
			if len(s) > bestLen && strings.Contains(lower, strings.ToLower(s)) {
				best, bestLen = i, len(s)
			}
		}
	}
	if best < 0 {
		return model.Location{}, false
	}
	return clone(r.locations[best]), true
}

func matchAny(loc model.Location, match func(string) bool) bool {
	if match(loc.Name) {
		return true
	}
	for _, alias := range loc.Aliases {
		if match(alias) {
			return true
		}
	}
	return false
}

func fingerprint(locations []model.Location) string {
	// []Location 的 JSON 编码是确定的 (字段顺序固定，切片有序)
	raw, _ := json.Marshal(locations)
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:8])
}
