// Package logging 基于 log/slog 的结构化日志，附带组件名
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// 常用字段
const (
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldQuery     = "query"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldClientIP  = "client_ip"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldTopic     = "topic"
)

// 组件名
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentStore    = "store"
	ComponentDatabase = "database"
	ComponentEvents   = "events"
	ComponentWS       = "websocket"
)

// Logger slog.Logger 加组件名
type Logger struct {
	*slog.Logger
	base      *slog.Logger
	component string
}

// Options 日志配置
type Options struct {
	Level     string
	Format    string
	Component string
	Output    io.Writer
}

// ParseLevel 解析日志级别，无法识别时为 info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New 创建 Logger，format 为 json 时输出 JSON，否则为文本
func New(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	component := opts.Component
	if component == "" {
		component = ComponentApp
	}
	base := slog.New(handler)
	return &Logger{
		Logger:    base.With(FieldComponent, component),
		base:      base,
		component: component,
	}
}

// WithComponent 返回指定组件名的子 Logger
func (l *Logger) WithComponent(component string) *Logger {
	base := l.base
	if base == nil {
		base = l.Logger
	}
	return &Logger{
		Logger:    base.With(FieldComponent, component),
		base:      base,
		component: component,
	}
}

// With 附加字段
func (l *Logger) With(args ...any) *Logger {
	out := &Logger{Logger: l.Logger.With(args...), component: l.component}
	if l.base != nil {
		out.base = l.base.With(args...)
	}
	return out
}

// Component 组件名
func (l *Logger) Component() string {
	return l.component
}

// SetDefault 设置为 slog 默认 Logger
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}

type ctxKey struct{}

// NewContext 将 Logger 放入 context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext 从 context 取 Logger，没有时返回默认 Logger
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
			return l
		}
	}
	return &Logger{Logger: slog.Default(), component: "unknown"}
}
