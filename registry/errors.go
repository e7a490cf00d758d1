package registry

import "fmt"

// ConfigError 地图数据不合法 (名称重复、坐标越界、文件无法解析等)
// 启动时出现该错误应直接退出，不做部分加载
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("地图配置错误: %s: %v", e.Reason, e.Err)
	}
	return "地图配置错误: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(err error, format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...), Err: err}
}
