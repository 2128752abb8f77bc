package api

import (
	"net/http"
	"strings"
	"time"

	"fintrack/insights"
	"fintrack/models"
	"fintrack/store"

	"github.com/gin-gonic/gin"
)

// InsightsHandler 仪表盘数据
type InsightsHandler struct {
	transactions store.TransactionStore
	budgets      store.BudgetStore
	now          func() time.Time
}

// NewInsightsHandler 创建仪表盘处理器，now 为 nil 时使用 time.Now
func NewInsightsHandler(txs store.TransactionStore, budgets store.BudgetStore, now func() time.Time) *InsightsHandler {
	if now == nil {
		now = time.Now
	}
	return &InsightsHandler{transactions: txs, budgets: budgets, now: now}
}

// Dashboard 汇总仪表盘
// @Summary 获取仪表盘数据
// @Description 汇总收支、类别占比、月度趋势、预算对比和支出洞察。month 只影响预算对比和预算列表。
// @Tags 统计
// @Produce json
// @Param month query string false "月份 (YYYY-MM)，默认当前月"
// @Success 200 {object} insights.Dashboard "获取成功"
// @Failure 400 {object} MessageResponse "月份格式错误"
// @Failure 500 {object} MessageResponse "服务器错误"
// @Router /api/insights [get]
func (h *InsightsHandler) Dashboard(c *gin.Context) {
	now := h.now()
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		month = insights.MonthOf(now)
	} else if !models.ValidMonth(month) {
		BadRequest(c, "invalid field month: expected YYYY-MM")
		return
	}

	ctx := c.Request.Context()
	txs, err := h.transactions.List(ctx, true)
	if err != nil {
		InternalError(c, err)
		return
	}
	budgets, err := h.budgets.ListByMonth(ctx, "")
	if err != nil {
		InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights.BuildDashboard(txs, budgets, month, now))
}
