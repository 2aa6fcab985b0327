package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/httputil"
)

// TraceIDKey はコンテキストにTraceIDを格納するキー。
const TraceIDKey = "trace_id"

// TraceIDMiddleware はリクエストごとにTrace IDを払い出す。
// X-Trace-IDヘッダがあればそれを引き継ぐ。
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set(TraceIDKey, traceID)
		c.Header("X-Trace-ID", traceID)
		c.Next()
	}
}

// LoggingMiddleware はアクセスログを出力する。
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		traceID, _ := c.Get(TraceIDKey)
		slog.Info("http request",
			"event_id", "HTTP_ACCESS",
			"trace_id", traceID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

// RecoveryMiddleware はハンドラのpanicを500応答へ変換する。
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				traceID, _ := c.Get(TraceIDKey)
				slog.Error("handler panic",
					"event_id", "HTTP_PANIC",
					"trace_id", traceID,
					"panic", r,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httputil.InternalServerError("internal error"))
			}
		}()
		c.Next()
	}
}
