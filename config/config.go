package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config 结构体用于存储应用程序的配置信息
type Config struct {
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	LogLevel      string
	FrontendURL   string
	Port          string
	SourceSchemes []string // 允许的引用来源 URL scheme，为空表示不限制
	Debug         bool     // 是否开启调试模式
}

// AppConfig 是全局配置变量
var AppConfig Config

// Init 函数用于初始化配置
func Init() {
	// 加载 .env 文件
	err := godotenv.Load()
	if err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	// 从环境变量中读取配置
	AppConfig = Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "fritter"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:5173"),
		Port:          getEnv("PORT", "8080"),
		SourceSchemes: getEnvAsList("SOURCE_SCHEMES"),
		Debug:         getEnvAsBool("DEBUG", true),
	}

	validateConfig()

	if AppConfig.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("应用程序运行在调试模式")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("应用程序运行在生产模式")
	}

	log.Printf("配置加载完成。数据库：%s/%s", AppConfig.MongoURI, AppConfig.MongoDB)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

// getEnvAsList 读取逗号分隔的环境变量
func getEnvAsList(key string) []string {
	valStr := getEnv(key, "")
	if valStr == "" {
		return nil
	}
	parts := strings.Split(valStr, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, strings.ToLower(p))
		}
	}
	return list
}

func validateConfig() {
	if AppConfig.MongoURI == "" || AppConfig.MongoDB == "" {
		log.Fatal("错误：数据库配置不完整")
	}
	if AppConfig.JWTSecret == "" {
		log.Fatal("错误：JWT密钥未设置")
	}
}
