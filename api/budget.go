package api

import (
	"net/http"
	"strings"

	"fintrack/events"
	"fintrack/models"
	"fintrack/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetHandler 预算处理器
type BudgetHandler struct {
	store  store.BudgetStore
	events events.Publisher
}

// NewBudgetHandler 创建预算处理器，publisher 可为 nil
func NewBudgetHandler(s store.BudgetStore, publisher events.Publisher) *BudgetHandler {
	return &BudgetHandler{store: s, events: publisher}
}

// BudgetRequest 设置预算请求
type BudgetRequest struct {
	Category string          `json:"category" binding:"required,max=50" example:"groceries"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" example:"400"`
	Month    string          `json:"month" binding:"required" example:"2024-02"`
}

func (h *BudgetHandler) publish(action, id string) {
	if h.events != nil {
		h.events.Publish(events.Event{Topic: events.TopicBudgets, Action: action, ID: id})
	}
}

// Upsert 设置预算，同一类别同一月份只保留一条
// @Summary 设置预算
// @Description 创建或替换某类别某月的预算金额，替换时保留原 ID
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body BudgetRequest true "预算信息"
// @Success 201 {object} models.Budget "保存成功"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 500 {object} MessageResponse "服务器错误"
// @Router /api/budgets [post]
func (h *BudgetHandler) Upsert(c *gin.Context) {
	var req BudgetRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.store.Upsert(c.Request.Context(), req.Category, req.Amount, strings.TrimSpace(req.Month))
	if err != nil {
		StoreFailure(c, err, "Budget not found")
		return
	}

	action := events.ActionCreated
	if b.Replaced() {
		action = events.ActionUpdated
	}
	h.publish(action, b.ID)
	c.JSON(http.StatusCreated, b)
}

// List 获取预算列表
// @Summary 获取预算列表
// @Description 不传 month 时返回全部预算
// @Tags 预算
// @Produce json
// @Param month query string false "月份 (YYYY-MM)"
// @Success 200 {array} models.Budget "获取成功"
// @Failure 400 {object} MessageResponse "月份格式错误"
// @Failure 500 {object} MessageResponse "服务器错误"
// @Router /api/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))
	if month != "" && !models.ValidMonth(month) {
		BadRequest(c, "invalid field month: expected YYYY-MM")
		return
	}

	budgets, err := h.store.ListByMonth(c.Request.Context(), month)
	if err != nil {
		InternalError(c, err)
		return
	}
	if budgets == nil {
		budgets = []models.Budget{}
	}
	c.JSON(http.StatusOK, budgets)
}

// Delete 删除预算
// @Summary 删除预算
// @Description 按请求体中的 id 删除预算
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body IDRequest true "预算 ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 400 {object} MessageResponse "缺少 ID"
// @Failure 404 {object} MessageResponse "预算不存在"
// @Failure 500 {object} MessageResponse "服务器错误"
// @Router /api/budgets [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := bindID(c, "Missing budget ID")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		StoreFailure(c, err, "Budget not found")
		return
	}

	h.publish(events.ActionDeleted, id)
	Message(c, http.StatusOK, "Budget deleted successfully")
}
