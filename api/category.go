package api

import (
	"net/http"

	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 类别查询
type CategoryHandler struct{}

// NewCategoryHandler 创建类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List 列出内置类别
// @Summary 获取类别列表
// @Description 返回固定的类别表，包含名称和颜色
// @Tags 类别
// @Produce json
// @Success 200 {array} models.Category "获取成功"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.GetCategories())
}
