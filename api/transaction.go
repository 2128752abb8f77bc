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

// TransactionHandler 交易记录处理器
type TransactionHandler struct {
	store  store.TransactionStore
	events events.Publisher
}

// NewTransactionHandler 创建交易记录处理器，publisher 可为 nil
func NewTransactionHandler(s store.TransactionStore, publisher events.Publisher) *TransactionHandler {
	return &TransactionHandler{store: s, events: publisher}
}

// TransactionRequest 创建/更新交易请求，金额为负表示支出
type TransactionRequest struct {
	ID          string          `json:"id,omitempty" example:"0b9f5a8e-4c1d-4f7e-9a51-2d7f0a0c3b11"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"-42.5"`
	Description string          `json:"description" binding:"required,max=255" example:"Weekly groceries"`
	Date        string          `json:"date" binding:"required" example:"2024-02-10"`
	Category    string          `json:"category,omitempty" binding:"omitempty,max=50" example:"groceries"`
}

func (r TransactionRequest) input() (store.TransactionInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return store.TransactionInput{}, err
	}
	return store.TransactionInput{
		Amount:      r.Amount,
		Description: r.Description,
		Date:        date,
		Category:    r.Category,
	}, nil
}

func (h *TransactionHandler) publish(action, id string) {
	if h.events != nil {
		h.events.Publish(events.Event{Topic: events.TopicTransactions, Action: action, ID: id})
	}
}

// bindTransaction 绑定并转换请求，失败时已写入 400
func bindTransaction(c *gin.Context) (TransactionRequest, store.TransactionInput, bool) {
	var req TransactionRequest
	if !bindJSON(c, &req) {
		return req, store.TransactionInput{}, false
	}
	in, err := req.input()
	if err != nil {
		BadRequest(c, err.Error())
		return req, in, false
	}
	return req, in, true
}

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 创建一条收入或支出记录，金额为负表示支出
// @Tags 交易记录
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "交易信息"
// @Success 201 {object} models.Transaction "创建成功"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 500 {object} MessageResponse "服务器错误"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	_, in, ok := bindTransaction(c)
	if !ok {
		return
	}

	tx, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		StoreFailure(c, err, "Transaction not found")
		return
	}

	h.publish(events.ActionCreated, tx.ID)
	c.JSON(http.StatusCreated, tx)
}

// List 获取交易记录列表
// @Summary 获取交易记录列表
// @Description 按日期倒序返回全部交易记录
// @Tags 交易记录
// @Produce json
// @Success 200 {array} models.Transaction "获取成功"
// @Failure 500 {object} MessageResponse "服务器错误"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.store.List(c.Request.Context(), true)
	if err != nil {
		InternalError(c, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	c.JSON(http.StatusOK, txs)
}

// Update 更新交易记录
// @Summary 更新交易记录
// @Description 按请求体中的 id 整体替换金额、描述、日期和类别
// @Tags 交易记录
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "交易信息（包含 id）"
// @Success 200 {object} models.Transaction "更新成功"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 404 {object} MessageResponse "记录不存在"
// @Failure 500 {object} MessageResponse "服务器错误"
// @Router /api/transactions [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	req, in, ok := bindTransaction(c)
	if !ok {
		return
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		BadRequest(c, "Missing transaction ID")
		return
	}

	tx, err := h.store.Update(c.Request.Context(), id, in)
	if err != nil {
		StoreFailure(c, err, "Transaction not found")
		return
	}

	h.publish(events.ActionUpdated, tx.ID)
	c.JSON(http.StatusOK, tx)
}

// Delete 删除交易记录
// @Summary 删除交易记录
// @Description 按请求体中的 id 删除交易记录
// @Tags 交易记录
// @Accept json
// @Produce json
// @Param request body IDRequest true "交易 ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 400 {object} MessageResponse "缺少 ID"
// @Failure 404 {object} MessageResponse "记录不存在"
// @Failure 500 {object} MessageResponse "服务器错误"
// @Router /api/transactions [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := bindID(c, "Missing transaction ID")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		StoreFailure(c, err, "Transaction not found")
		return
	}

	h.publish(events.ActionDeleted, id)
	Message(c, http.StatusOK, "Transaction deleted successfully")
}
