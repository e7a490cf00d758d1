package main

import (
	"context"
	"fmt"
	"log"

	"campus-nav/capability"
	"campus-nav/config"
	"campus-nav/data"
	"campus-nav/db"
	"campus-nav/handler"
	"campus-nav/navigator"
	"campus-nav/registry"

	"github.com/gin-gonic/gin"
)

func main() {
	fmt.Println("=== 欢迎使用 Campus Nav - 校园导航助手 ===")

	// 1. 读取配置 (.env + 环境变量)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置错误: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. 选择地图数据来源
	source, closeSource, err := openSource(cfg)
	if err != nil {
		log.Fatalf("初始化地图数据来源失败: %v", err)
	}
	defer closeSource()

	// 3. 加载地图并构建导航图，数据不合法直接退出
	nav := navigator.NewService(source, cfg.MediaBaseURL)
	fmt.Println("正在构建导航图...")
	if _, err := nav.Reload(context.Background()); err != nil {
		log.Fatalf("加载地图失败: %v", err)
	}

	// 4. 可选能力: 目前只内置二维码，语音能力由部署方注入
	caps := capability.Set{
		QRCode: capability.NewQRCodeGenerator(cfg.AppPublicURL, capability.DefaultQRSize),
	}

	// 5. 初始化 Gin 引擎并配置路由
	r := handler.NewRouter(gin.Default(), nav, caps, handler.RouterOptions{MediaDir: cfg.MediaDir})

	// 6. 启动服务器
	fmt.Println("\n服务器启动中...")
	fmt.Printf("访问地址: http://localhost:%s\n", cfg.Port)
	fmt.Println("API 文档:")
	fmt.Println("  - POST   /api/route              - 路径规划")
	fmt.Println("  - GET    /api/locations          - 获取所有地点")
	fmt.Println("  - GET    /api/locations/:name    - 获取指定地点")
	fmt.Println("  - GET    /api/locations/search   - 搜索地点")
	fmt.Println("  - GET    /api/map                - 初始地图")
	fmt.Println("  - GET    /api/media              - 路线视频")
	fmt.Println("  - GET    /api/qrcode             - 应用二维码")
	fmt.Println("  - POST   /api/speak              - 语音播报")
	fmt.Println("  - POST   /api/voice              - 语音输入")
	fmt.Println("  - POST   /api/admin/reload       - 重新加载地图")
	fmt.Println("\n按 Ctrl+C 退出")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}

// openSource 按配置返回地图数据来源
// 数据库来源在表为空时用地图文件 (或内置数据) 初始化
func openSource(cfg *config.Config) (navigator.Source, func(), error) {
	file := navigator.FileSource{Path: cfg.RegistryFile}
	if cfg.UsesDefaultRegistryFile() {
		file.Fallback = data.CampusJSON
	}
	if cfg.RegistrySource != config.SourceDB {
		return file, func() {}, nil
	}

	store, err := db.Open(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Printf("关闭数据库失败: %v", err)
		}
	}

	seed, err := file.Load(context.Background())
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	// 先校验再入库，避免把坏数据写进数据库
	if _, err := registry.FromMapData(seed); err != nil {
		closeStore()
		return nil, nil, err
	}
	if _, err := store.SeedIfEmpty(context.Background(), seed); err != nil {
		closeStore()
		return nil, nil, err
	}

	return store, closeStore, nil
}
