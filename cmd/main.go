package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fritter-backend/config"
	"fritter-backend/internal/api/follow"
	"fritter-backend/internal/api/like"
	"fritter-backend/internal/api/source"
	"fritter-backend/internal/middleware"
	"fritter-backend/internal/repository/mongodb"
	"fritter-backend/internal/service"
	"fritter-backend/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("程序发生严重错误", zap.Any("error", r))
		}
	}()

	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 连接数据库
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(config.AppConfig.MongoURI))
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	// 测试数据库连接
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
	}
	util.Logger.Info("数据库连接成功")

	db := client.Database(config.AppConfig.MongoDB)

	// 建立唯一索引
	if err := mongodb.EnsureIndexes(connectCtx, db); err != nil {
		util.Logger.Fatal("创建索引失败", zap.Error(err))
	}

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("source_url", util.ValidateSourceURL)
	}

	// 初始化存储库、服务和处理器
	userRepo := mongodb.NewUserRepository(db)
	freetRepo := mongodb.NewFreetRepository(db)

	followRepo := mongodb.NewFollowRepository(db)
	followService := service.NewFollowService(followRepo, userRepo, freetRepo)
	followHandler := follow.NewFollowHandler(followService)

	likeRepo := mongodb.NewLikeRepository(db)
	likeService := service.NewLikeService(likeRepo, userRepo, freetRepo)
	likeHandler := like.NewLikeHandler(likeService)

	sourceRepo := mongodb.NewSourceRepository(db)
	sourceService := service.NewSourceService(sourceRepo, freetRepo)
	sourceHandler := source.NewSourceHandler(sourceService)

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()

	// 设置 Gin 路由
	r := gin.Default()

	// 添加中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
	}
	r.Use(cors.New(corsConfig))

	// 定义 API 路由
	api := r.Group("/api")
	{
		// 关注相关路由
		followRoutes := api.Group("/follow")
		followRoutes.Use(middleware.AuthMiddleware())
		{
			followRoutes.GET("/follows/:userName", followHandler.GetFollowers)
			followRoutes.GET("/following/:userName", followHandler.GetFollowing)
			followRoutes.GET("/followfreets/:userName", followHandler.GetFollowedFreets)
			followRoutes.PUT("/followuser/:userName", followHandler.FollowUser)
			followRoutes.DELETE("/followuser/:userName", followHandler.UnfollowUser)
			followRoutes.PUT("/hidefollow/:userName", followHandler.HideFollowers)
			followRoutes.PUT("/unhidefollow/:userName", followHandler.UnhideFollowers)
		}

		// 点赞相关路由
		likeRoutes := api.Group("/likes")
		likeRoutes.Use(middleware.AuthMiddleware())
		{
			likeRoutes.GET("/likecount/:freetId", likeHandler.GetLikeCount)
			likeRoutes.GET("/likeusers/:freetId", likeHandler.GetLikeUsers)
			likeRoutes.PUT("/like/:freetId", likeHandler.LikeFreet)
			likeRoutes.DELETE("/like/:freetId", likeHandler.UnlikeFreet)
			likeRoutes.PUT("/hide/:freetId", likeHandler.HideLikes)
			likeRoutes.PUT("/unhide/:freetId", likeHandler.UnhideLikes)
		}

		// 引用来源相关路由，查询不需要登录
		api.GET("/source/sources/:freetId", sourceHandler.GetSources)
		api.POST("/source/addsource/:freetId", middleware.AuthMiddleware(), sourceHandler.AddSource)
		api.PUT("/source/delsource/:freetId", middleware.AuthMiddleware(), sourceHandler.RemoveSource)
	}

	// 创建一个带有超时的 http.Server
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动", zap.String("port", config.AppConfig.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}
