package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"traini8/config"
	"traini8/internal/api/handler"
	"traini8/internal/api/middleware"
	"traini8/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时关闭限流
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var limiter middleware.RateLimiter
	if rdb != nil {
		limiter = rdb
	}

	// ── 培训中心模块 ──
	api := r.Group("/api")
	{
		centers := api.Group("/training-centers")
		{
			centers.GET("", h.TrainingCenter.ListTrainingCenters)
			centers.GET("/export", h.TrainingCenter.ExportTrainingCenters)
			centers.POST("",
				middleware.RateLimit(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window),
				h.TrainingCenter.CreateTrainingCenter,
			)
		}
	}

	return r
}
