package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"fintrack/insights"
	"fintrack/models"
	"fintrack/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// ExportHandler 导出处理器
type ExportHandler struct {
	store store.TransactionStore
}

// NewExportHandler 创建导出处理器
func NewExportHandler(s store.TransactionStore) *ExportHandler {
	return &ExportHandler{store: s}
}

// load 按可选的 month 查询交易，日期升序。失败时已写入响应。
func (h *ExportHandler) load(c *gin.Context) ([]models.Transaction, string, bool) {
	month := strings.TrimSpace(c.Query("month"))
	if month != "" && !models.ValidMonth(month) {
		BadRequest(c, "invalid field month: expected YYYY-MM")
		return nil, "", false
	}

	txs, err := h.store.List(c.Request.Context(), false)
	if err != nil {
		InternalError(c, err)
		return nil, "", false
	}
	if month != "" {
		txs = insights.FilterMonth(txs, month)
	}
	return txs, month, true
}

func exportName(month, ext string) string {
	if month == "" {
		return "transactions." + ext
	}
	return fmt.Sprintf("transactions_%s.%s", month, ext)
}

func exportHeaders() []string {
	return []string{"ID", "Date", "Description", "Category", "Amount", "Created At"}
}

func exportRow(tx models.Transaction) []string {
	cat := models.LookupCategory(tx.Category)
	return []string{
		tx.ID,
		tx.Day(),
		tx.Description,
		cat.Name,
		tx.Amount.StringFixed(2),
		tx.CreatedAt.Format(exportTimeLayout),
	}
}

// ExportCSV 导出交易记录为 CSV
// @Summary 导出交易记录
// @Description 导出交易记录为 CSV 文件，可按月份筛选
// @Tags 导出
// @Produce text/csv
// @Param month query string false "月份 (YYYY-MM)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} MessageResponse "月份格式错误"
// @Failure 500 {object} MessageResponse "服务器错误"
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	txs, month, ok := h.load(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 打开
	buf.WriteString("\xEF\xBB\xBF")
	writer := csv.NewWriter(buf)

	if err := writer.Write(exportHeaders()); err != nil {
		InternalError(c, err)
		return
	}
	for _, tx := range txs {
		if err := writer.Write(exportRow(tx)); err != nil {
			InternalError(c, err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportName(month, "csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出交易记录为 Excel
// @Summary 导出交易记录为 Excel
// @Description 导出交易记录为 xlsx 文件，末行为收入、支出和结余合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string false "月份 (YYYY-MM)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} MessageResponse "月份格式错误"
// @Failure 500 {object} MessageResponse "服务器错误"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	txs, month, ok := h.load(c)
	if !ok {
		return
	}

	f, err := buildWorkbook(txs)
	if err != nil {
		InternalError(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportName(month, "xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

const sheetName = "Transactions"

func buildWorkbook(txs []models.Transaction) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return nil, err
	}

	widths := map[string]float64{"A": 38, "B": 12, "C": 30, "D": 16, "E": 12, "F": 20}
	for col, w := range widths {
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, err
		}
	}

	for i, header := range exportHeaders() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := 2
	for _, tx := range txs {
		values := exportRow(tx)
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if i == 4 {
				f.SetCellValue(sheetName, cell, tx.Amount.InexactFloat64())
				continue
			}
			f.SetCellValue(sheetName, cell, v)
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
		row++
	}

	summary := insights.IncomeExpenseNet(txs)
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%d transactions", len(txs)))
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "Income "+summary.Income.StringFixed(2))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), "Expenses "+summary.Expenses.StringFixed(2))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), "Net")
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), summary.Net.InexactFloat64())
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), summaryStyle)

	return f, nil
}
