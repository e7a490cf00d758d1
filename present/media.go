package present

import (
	"fmt"
	"net/url"
	"strings"

	"campus-nav/model"
)

// MediaTable 路线视频表，按无序的 {起点, 终点} 查找
// 资源在构造时根据 baseURL 解析成最终地址
type MediaTable struct {
	entries map[pairKey]string
}

type pairKey struct{ a, b string }

func keyOf(x, y string) pairKey {
	if x > y {
		x, y = y, x
	}
	return pairKey{a: x, b: y}
}

// NewMediaTable 构造视频表
// baseURL 为空时资源原样返回；同一对地点出现多次时以第一条为准
func NewMediaTable(entries []model.RouteMedia, baseURL string) (*MediaTable, error) {
	var base *url.URL
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("解析视频地址前缀失败: %w", err)
		}
		base = u
	}

	t := &MediaTable{entries: make(map[pairKey]string, len(entries))}
	for _, e := range entries {
		key := keyOf(e.From, e.To)
		if _, exists := t.entries[key]; exists {
			continue
		}

		resource := e.Resource
		if base != nil {
			ref, err := url.Parse(resource)
			if err != nil {
				return nil, fmt.Errorf("解析视频地址失败 %q: %w", resource, err)
			}
			resource = base.ResolveReference(ref).String()
		}
		t.entries[key] = resource
	}
	return t, nil
}

// Lookup 查找起点和终点之间的视频，与顺序无关
// 只看查询的起点和终点，不看实际经过的路径
func (t *MediaTable) Lookup(start, end string) (string, bool) {
	if t == nil {
		return "", false
	}
	resource, ok := t.entries[keyOf(start, end)]
	return resource, ok
}

// Len 视频数量
func (t *MediaTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
