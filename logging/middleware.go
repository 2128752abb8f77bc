package logging

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware 把 Logger 注入请求 context，并在请求结束后按状态码级别记录一条日志
func Middleware(l *Logger) gin.HandlerFunc {
	httpLogger := l.WithComponent(ComponentHTTP)
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(NewContext(c.Request.Context(), httpLogger))

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		args := []any{
			FieldMethod, c.Request.Method,
			FieldPath, c.Request.URL.Path,
			FieldStatus, status,
			FieldDuration, time.Since(start).Milliseconds(),
			FieldClientIP, c.ClientIP(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			args = append(args, FieldQuery, q)
		}
		if len(c.Errors) > 0 {
			args = append(args, FieldError, c.Errors.String())
		}
		httpLogger.Log(c.Request.Context(), level, "HTTP request completed", args...)
	}
}
