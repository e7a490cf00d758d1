// Package config 从 .env 文件和环境变量读取配置
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"campus-nav/db"

	"github.com/joho/godotenv"
)

// 地图数据来源
const (
	SourceFile = "file"
	SourceDB   = "db"
)

// DefaultRegistryFile 未设置 REGISTRY_FILE 时的地图文件
const DefaultRegistryFile = "data/campus.json"

// Config 服务配置
type Config struct {
	Port           string
	GinMode        string
	RegistrySource string // file 或 db
	RegistryFile   string
	MediaDir       string // 本地视频目录，挂载到 /media
	MediaBaseURL   string // 解析视频相对路径用的前缀
	AppPublicURL   string // 二维码内容，为空则不提供二维码
	DB             db.Config
}

// Load 读取配置
// .env 不存在只打印提示，仍然使用系统环境变量
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv 只从环境变量读取配置
func FromEnv() (*Config, error) {
	maxRetries, err := getEnvInt("DB_MAX_RETRIES", 30)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		GinMode:        getEnvOrDefault("GIN_MODE", "debug"),
		RegistrySource: getEnvOrDefault("REGISTRY_SOURCE", SourceFile),
		RegistryFile:   getEnvOrDefault("REGISTRY_FILE", DefaultRegistryFile),
		MediaDir:       getEnvOrDefault("MEDIA_DIR", "./media"),
		MediaBaseURL:   getEnvOrDefault("MEDIA_BASE_URL", "/media/"),
		AppPublicURL:   os.Getenv("APP_PUBLIC_URL"),
		DB: db.Config{
			Host:          getEnvOrDefault("DB_HOST", "localhost"),
			Port:          getEnvOrDefault("DB_PORT", "5432"),
			User:          getEnvOrDefault("DB_USER", "navuser"),
			Password:      getEnvOrDefault("DB_PASSWORD", "navpassword"),
			Name:          getEnvOrDefault("DB_NAME", "campusnav"),
			MaxRetries:    maxRetries,
			RetryInterval: 2 * time.Second,
		},
	}

	switch cfg.RegistrySource {
	case SourceFile, SourceDB:
	default:
		return nil, fmt.Errorf("REGISTRY_SOURCE 只能是 %s 或 %s: %q", SourceFile, SourceDB, cfg.RegistrySource)
	}

	return cfg, nil
}

// UsesDefaultRegistryFile 是否使用默认地图文件
// 只有默认路径缺失时才允许退回内置数据，显式配置的路径写错要报错
func (c *Config) UsesDefaultRegistryFile() bool {
	return filepath.Clean(c.RegistryFile) == filepath.Clean(DefaultRegistryFile)
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s 必须是整数: %w", key, err)
	}
	return n, nil
}
