package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// maxAuditBody 请求体超过此长度时只记录前缀
const maxAuditBody = 4096

// AuditMiddleware 记录写请求的表单内容与处理结果；GET 只记录状态与耗时
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		startTime := time.Now()

		attrs := []any{
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
		}

		if c.Request.Method != http.MethodGet && c.Request.Body != nil {
			reqBody, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(reqBody))
			if len(reqBody) > maxAuditBody {
				reqBody = reqBody[:maxAuditBody]
			}
			attrs = append(attrs, log.String("req_body", string(reqBody)))
		}

		c.Next()

		attrs = append(attrs,
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
		)
		if len(c.Errors) > 0 {
			attrs = append(attrs, log.String("errors", c.Errors.String()))
		}

		level := log.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = log.LevelError
		} else if c.Writer.Status() >= http.StatusBadRequest {
			level = log.LevelWarn
		}
		log.Log(ctx, level, "Request handled", attrs...)
	}
}
