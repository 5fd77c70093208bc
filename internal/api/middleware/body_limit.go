package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"traini8/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// 声明长度超限直接返回 413；未声明长度的请求由 MaxBytesReader 截断，
// 读取时报 *http.MaxBytesError，由 Handler 转为 413
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Request body too large")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
