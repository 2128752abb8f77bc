package api

import (
	"errors"
	"net/http"

	"fintrack/logging"
	"fintrack/store"

	"github.com/gin-gonic/gin"
)

// genericError 发给客户端的 500 提示
const genericError = "Something went wrong"

// MessageResponse 错误响应以及删除成功的响应
type MessageResponse struct {
	Message string `json:"message" example:"Budget deleted successfully"`
}

// Message 输出 {message}
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

// InternalError 500 错误响应，响应体固定为 genericError，错误详情只写日志
func InternalError(c *gin.Context, err error) {
	logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
		logging.FieldPath, c.Request.URL.Path,
		logging.FieldError, err,
	)
	_ = c.Error(err)
	Message(c, http.StatusInternalServerError, genericError)
}

// StoreFailure 将存储层错误映射为 HTTP 状态码
func StoreFailure(c *gin.Context, err error, notFound string) {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Error())
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, notFound)
	default:
		InternalError(c, err)
	}
}
