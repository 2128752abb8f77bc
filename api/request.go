package api

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"fintrack/config"
	"fintrack/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// 校验错误使用 json 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

var errDate = errors.New("invalid field date: expected YYYY-MM-DD")

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// parseDate 解析日期，空串返回零值交给存储层校验
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errDate
}

// bindMessage 将绑定错误转换为与存储层一致的字段提示
func bindMessage(err error) string {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return config.SafeErrorMessage(err, "Invalid request body")
	}
	fe := fields[0]
	ve := &store.ValidationError{Field: fe.Field()}
	switch fe.Tag() {
	case "required":
	case "max":
		ve.Reason = "at most " + fe.Param() + " characters"
	default:
		ve.Reason = "failed " + fe.Tag()
	}
	return ve.Error()
}

// bindJSON 绑定请求体，失败时已写入 400
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		BadRequest(c, bindMessage(err))
		return false
	}
	return true
}

// IDRequest 按 ID 删除
type IDRequest struct {
	ID string `json:"id" example:"0b9f5a8e-4c1d-4f7e-9a51-2d7f0a0c3b11"`
}

// bindID 绑定请求体中的 id，缺失时返回 false 并已写入 400
func bindID(c *gin.Context, missingMessage string) (string, bool) {
	var req IDRequest
	if !bindJSON(c, &req) {
		return "", false
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		BadRequest(c, missingMessage)
		return "", false
	}
	return id, true
}
