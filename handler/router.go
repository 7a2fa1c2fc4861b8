package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter 配置路由; authRequired 为 true 时路径规划和地图接口需要 Token
func NewRouter(maps *MapHandler, auth *AuthHandler, authRequired bool) *gin.Engine {
	r := gin.Default()

	// CORS 跨域中间件
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "ok",
		})
	})

	// 根路径重定向到地图页面
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api/map")
	})

	// API 路由组
	api := r.Group("/api")
	{
		// 公开接口 (无需认证)
		api.POST("/login", auth.Login)
		api.POST("/register", auth.Register)

		api.GET("/nodes", maps.GetNodes)
		api.GET("/nodes/search", maps.SearchNodes)
		api.GET("/nodes/:id", maps.GetNodeByID)
		api.GET("/edges", maps.GetEdges)
		api.GET("/stats", maps.GetStats)

		// 路径规划接口
		routes := api.Group("/")
		if authRequired {
			routes.Use(auth.AuthMiddleware())
		}
		routes.POST("/path/find", maps.FindPath)
		routes.GET("/map", maps.RenderMap)
	}

	return r
}
