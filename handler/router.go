package handler

import (
	"campus-nav/capability"
	"campus-nav/navigator"

	"github.com/gin-gonic/gin"
)

// RouterOptions 路由配置
type RouterOptions struct {
	MediaDir string // 本地视频目录，为空则不挂载 /media
}

// NewRouter 配置全部路由
func NewRouter(r *gin.Engine, nav *navigator.Service, caps capability.Set, opts RouterOptions) *gin.Engine {
	r.Use(RequestID(), CORS())

	if opts.MediaDir != "" {
		r.Static("/media", opts.MediaDir)
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		status := "ok"
		if nav.Snapshot() == nil {
			status = "loading"
		}
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  status,
		})
	})

	nh := NewNavigationHandler(nav)
	mh := NewMediaHandler(nav, caps)

	api := r.Group("/api")
	{
		api.POST("/route", nh.FindPath)
		api.GET("/locations", nh.GetLocations)
		api.GET("/locations/search", nh.SearchLocations)
		api.GET("/locations/:name", nh.GetLocationByName)
		api.GET("/map", nh.GetMap)
		api.POST("/admin/reload", nh.Reload)

		api.GET("/media", mh.RouteMedia)
		api.GET("/qrcode", mh.QRCode)
		api.POST("/speak", mh.Speak)
		api.POST("/voice", mh.Voice)
	}

	return r
}
