package insights

import (
	"sort"
	"time"

	"fintrack/models"

	"github.com/shopspring/decimal"
)

// MonthOf 返回 t 在其自身时区下的月份 YYYY-MM，用于墙上时钟 now。
// 交易日期请用 Transaction.Month，按 UTC 日历日计算。
func MonthOf(t time.Time) string {
	return t.Format(models.MonthLayout)
}

// ParseMonth 解析 YYYY-MM，返回该月第一天（UTC）
func ParseMonth(month string) (time.Time, error) {
	return time.Parse(models.MonthLayout, month)
}

// PreviousMonth 上一个月，格式错误时返回空串
func PreviousMonth(month string) string {
	t, err := ParseMonth(month)
	if err != nil {
		return ""
	}
	return MonthOf(t.AddDate(0, -1, 0))
}

// FilterMonth 筛选日期落在指定月份的交易
func FilterMonth(txs []models.Transaction, month string) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, tx := range txs {
		if tx.Month() == month {
			out = append(out, tx)
		}
	}
	return out
}

// FilterBudgets 筛选指定月份的预算
func FilterBudgets(budgets []models.Budget, month string) []models.Budget {
	out := make([]models.Budget, 0)
	for _, b := range budgets {
		if b.Month == month {
			out = append(out, b)
		}
	}
	return out
}

// MonthTotal 单月净额
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyTotals 按月汇总带符号金额，月份升序
func MonthlyTotals(txs []models.Transaction) []MonthTotal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		m := tx.Month()
		sums[m] = sums[m].Add(tx.Amount)
	}

	out := make([]MonthTotal, 0, len(sums))
	for m, total := range sums {
		out = append(out, MonthTotal{Month: m, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
