package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// 地图数据来源
const (
	SourceEmbedded = "embedded" // 内置数据
	SourceJSON     = "json"     // 本地 JSON 文件
	SourceDB       = "db"       // PostgreSQL
)

// Config 应用配置
type Config struct {
	Port         string
	GinMode      string
	DataSource   string // embedded | json | db
	MapDataPath  string // DataSource=json 时读取的文件
	MapOutput    string // 控制台模式下生成的地图文件
	JWTSecret    string
	AuthRequired bool // 路径规划接口是否需要登录
	AdminUser    string // 启动时创建的管理员账号, 为空则不创建
	AdminPass    string
	Database     Database
}

// Database 数据库连接配置
type Database struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MaxRetries    int
	RetryInterval time.Duration
}

// DSN 拼接 PostgreSQL 连接串
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		d.Host, d.User, d.Password, d.Name, d.Port,
	)
}

// Load 读取 .env (可选) 和环境变量
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件 (使用环境变量)")
	}

	cfg := Config{
		Port:         Get("PORT", "8080"),
		GinMode:      Get("GIN_MODE", "debug"),
		DataSource:   strings.ToLower(Get("DATA_SOURCE", SourceEmbedded)),
		MapDataPath:  Get("MAP_DATA_PATH", "map_data.json"),
		MapOutput:    Get("MAP_OUTPUT", "map_bandung.html"),
		JWTSecret:    Get("JWT_SECRET", "your-secret-key-change-in-production"),
		AuthRequired: GetBool("AUTH_REQUIRED", false),
		AdminUser:    Get("ADMIN_USERNAME", ""),
		AdminPass:    Get("ADMIN_PASSWORD", ""),
		Database: Database{
			Host:          Get("DB_HOST", "localhost"),
			Port:          Get("DB_PORT", "5432"),
			User:          Get("DB_USER", "bandung"),
			Password:      Get("DB_PASSWORD", "bandung"),
			Name:          Get("DB_NAME", "bandungmaps"),
			MaxRetries:    GetInt("DB_MAX_RETRIES", 30),
			RetryInterval: 2 * time.Second,
		},
	}

	switch cfg.DataSource {
	case SourceEmbedded, SourceJSON, SourceDB:
	default:
		return Config{}, fmt.Errorf("config: unknown DATA_SOURCE %q", cfg.DataSource)
	}

	return cfg, nil
}

// Get 获取环境变量，如果不存在则返回默认值
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetBool 解析布尔类型的环境变量, 无法解析时返回默认值
func GetBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(Get(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

// GetInt 解析整数类型的环境变量, 无法解析时返回默认值
func GetInt(key string, fallback int) int {
	v, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
