package main

import (
	"fmt"
	"log"

	"bandung-maps/algo"
	"bandung-maps/config"
	"bandung-maps/handler"

	"github.com/gin-gonic/gin"
)

func main() {
	fmt.Println("=== 欢迎使用 Bandung Maps - 万隆最短路线服务 ===")

	// 1. 读取配置 (.env 可选)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("读取配置失败: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. 加载地图数据
	// DATA_SOURCE=embedded 使用内置的万隆数据; json 读取本地文件;
	// db 连接 PostgreSQL, 第一次运行时自动导入内置数据
	fmt.Printf("正在从 %s 构建图...\n", cfg.DataSource)
	graph, err := algo.Load(cfg)
	if err != nil {
		log.Fatalf("加载地图失败: %v", err)
	}
	stats := graph.Stats()
	fmt.Printf("地图加载成功! 节点数: %d, 边数: %d\n", stats.NodeCount, stats.EdgeCount)

	// 3. 认证: 配置了管理员账号时预先创建
	auth := handler.NewAuthHandler(cfg.JWTSecret)
	if cfg.AdminUser != "" && cfg.AdminPass != "" {
		if _, err := auth.AddUser(cfg.AdminUser, cfg.AdminPass, ""); err != nil {
			log.Fatalf("创建管理员账号失败: %v", err)
		}
		log.Printf("管理员账号已创建: %s", cfg.AdminUser)
	}

	// 4. 初始化 Gin 引擎并配置路由
	r := handler.NewRouter(handler.NewMapHandler(graph), auth, cfg.AuthRequired)

	// 5. 启动服务器
	fmt.Println("\n服务器启动中...")
	fmt.Printf("访问地址: http://localhost:%s\n", cfg.Port)
	fmt.Printf("地图页面: http://localhost:%s/api/map\n", cfg.Port)
	fmt.Println("API 文档:")
	fmt.Println("  - POST   /api/login          - 用户登录")
	fmt.Println("  - POST   /api/register       - 用户注册")
	fmt.Println("  - POST   /api/path/find      - 路径规划")
	fmt.Println("  - GET    /api/map            - 地图页面 (?start=&end= 高亮路线)")
	fmt.Println("  - GET    /api/nodes          - 获取所有节点")
	fmt.Println("  - GET    /api/nodes/:id      - 获取指定节点")
	fmt.Println("  - GET    /api/nodes/search   - 搜索节点")
	fmt.Println("  - GET    /api/edges          - 获取所有边")
	fmt.Println("  - GET    /api/stats          - 图统计信息")
	if cfg.AuthRequired {
		fmt.Println("路径规划和地图接口需要在 Authorization 头中携带 Bearer Token")
	}
	fmt.Println("\n按 Ctrl+C 退出")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
