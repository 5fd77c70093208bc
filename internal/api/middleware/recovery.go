package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"traini8/pkg/response"
)

// Recovery 在 gin.CustomRecovery 基础上记录 zap 日志并返回 JSON 500。
// 客户端断开（broken pipe）由 gin 处理，不写响应。
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	// gin 自带的 panic 输出关闭，统一走 zap
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		logger.Error("请求处理 panic",
			zap.Any("panic", rec),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Stack("stack"),
		)
		c.Abort()
		response.Error(c, http.StatusInternalServerError, 50000, "Internal server error")
	})
}
