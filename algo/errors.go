package algo

import "fmt"

// LocationNotFoundError 起点或终点不在图中
type LocationNotFoundError struct {
	Name string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("地点不存在: %q", e.Name)
}

// NoPathError 起点和终点不连通
// 完全图下不会出现，只有手工构造的稀疏图才可能触发
type NoPathError struct {
	Start string
	End   string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("未找到路径: %q -> %q", e.Start, e.End)
}
