// Package insights 从交易和预算快照计算汇总、对比和洞察。
// 所有函数均为纯函数：不做 I/O，不修改入参，不返回错误。
package insights

import (
	"sort"

	"fintrack/models"

	"github.com/shopspring/decimal"
)

// Sign 金额方向筛选
type Sign int

const (
	// SignAll 全部记录
	SignAll Sign = iota
	// SignExpense 金额 < 0
	SignExpense
	// SignIncome 金额 > 0
	SignIncome
)

var hundred = decimal.NewFromInt(100)

func (s Sign) match(amount decimal.Decimal) bool {
	switch s {
	case SignExpense:
		return amount.IsNegative()
	case SignIncome:
		return amount.IsPositive()
	default:
		return true
	}
}

// percent 计算 num / den * 100，分母为 0 时返回 0
func percent(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	return num.Div(den).Mul(hundred).InexactFloat64()
}

// TotalsByCategory 按类别汇总匹配方向的金额绝对值，缺省类别计入 other
func TotalsByCategory(txs []models.Transaction, sign Sign) *Totals {
	totals := NewTotals()
	for _, tx := range txs {
		if !sign.match(tx.Amount) {
			continue
		}
		totals.Add(tx.CategoryID(), tx.Amount.Abs())
	}
	return totals
}

// Summary 收入、支出与结余
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// IncomeExpenseNet 汇总收入（正数之和）与支出（负数绝对值之和）
func IncomeExpenseNet(txs []models.Transaction) Summary {
	income, expenses := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch {
		case tx.Amount.IsPositive():
			income = income.Add(tx.Amount)
		case tx.Amount.IsNegative():
			expenses = expenses.Add(tx.Amount.Abs())
		}
	}
	return Summary{Income: income, Expenses: expenses, Net: income.Sub(expenses)}
}

// CategoryTotal 类别合计
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// TopCategories 收支绝对值合计最高的 n 个类别，金额相同按首次出现顺序
func TopCategories(txs []models.Transaction, n int) []CategoryTotal {
	totals := TotalsByCategory(txs, SignAll)
	list := make([]CategoryTotal, 0, totals.Len())
	for _, c := range totals.Categories() {
		list = append(list, CategoryTotal{Category: c, Total: totals.Get(c)})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Total.GreaterThan(list[j].Total)
	})
	if n < 0 {
		n = 0
	}
	if len(list) > n {
		list = list[:n]
	}
	return list
}

// ComparisonRow 预算与实际支出对比
type ComparisonRow struct {
	Category string          `json:"category"`
	Budgeted decimal.Decimal `json:"budgeted"`
	Actual   decimal.Decimal `json:"actual"`
}

// BudgetComparison 先按输入顺序输出每条预算，再追加有支出但无预算的类别
func BudgetComparison(budgets []models.Budget, txs []models.Transaction) []ComparisonRow {
	spent := TotalsByCategory(txs, SignExpense)
	rows := make([]ComparisonRow, 0, len(budgets)+spent.Len())
	budgeted := make(map[string]struct{}, len(budgets))
	for _, b := range budgets {
		budgeted[b.Category] = struct{}{}
		rows = append(rows, ComparisonRow{
			Category: b.Category,
			Budgeted: b.Amount,
			Actual:   spent.Get(b.Category),
		})
	}
	for _, c := range spent.Categories() {
		if _, ok := budgeted[c]; ok {
			continue
		}
		rows = append(rows, ComparisonRow{Category: c, Budgeted: decimal.Zero, Actual: spent.Get(c)})
	}
	return rows
}

// MonthlyChangePercent 本月相对上月的变化百分比，上月为 0 时返回 0
func MonthlyChangePercent(current, last decimal.Decimal) float64 {
	return percent(current.Sub(last), last)
}

// CategoryDelta 类别在两个月之间的变化
type CategoryDelta struct {
	Category string          `json:"category"`
	Current  decimal.Decimal `json:"current"`
	Last     decimal.Decimal `json:"last"`
	Change   decimal.Decimal `json:"change"`
}

// Deltas 增幅最大与降幅最大的类别，可能为空
type Deltas struct {
	TopIncrease *CategoryDelta `json:"top_increase"`
	TopDecrease *CategoryDelta `json:"top_decrease"`
}

// CategoryDeltas 计算 current - last。
// 增幅只在上月有支出的类别中选取，降幅只在本月仍有支出的类别中选取。
func CategoryDeltas(current, last *Totals) Deltas {
	var out Deltas
	seen := make(map[string]struct{})
	keys := make([]string, 0, current.Len()+last.Len())
	for _, c := range append(current.Categories(), last.Categories()...) {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		keys = append(keys, c)
	}

	for _, c := range keys {
		cur, prev := current.Get(c), last.Get(c)
		d := CategoryDelta{Category: c, Current: cur, Last: prev, Change: cur.Sub(prev)}
		if prev.IsPositive() && (out.TopIncrease == nil || d.Change.GreaterThan(out.TopIncrease.Change)) {
			inc := d
			out.TopIncrease = &inc
		}
		if cur.IsPositive() && (out.TopDecrease == nil || d.Change.LessThan(out.TopDecrease.Change)) {
			dec := d
			out.TopDecrease = &dec
		}
	}
	return out
}

// OverBudget 超支信息
type OverBudget struct {
	Category    string          `json:"category"`
	Budgeted    decimal.Decimal `json:"budgeted"`
	Actual      decimal.Decimal `json:"actual"`
	OverAmount  decimal.Decimal `json:"over_amount"`
	PercentOver float64         `json:"percent_over"`
}

// MostOverBudget 超支比例最高的预算，没有超支时返回 nil
func MostOverBudget(budgets []models.Budget, actual *Totals) *OverBudget {
	var best *OverBudget
	for _, b := range budgets {
		spent := actual.Get(b.Category)
		if !spent.GreaterThan(b.Amount) {
			continue
		}
		over := spent.Sub(b.Amount)
		pct := percent(over, b.Amount)
		if best == nil || pct > best.PercentOver {
			best = &OverBudget{
				Category:    b.Category,
				Budgeted:    b.Amount,
				Actual:      spent,
				OverAmount:  over,
				PercentOver: pct,
			}
		}
	}
	return best
}

// CategoryShare 类别金额及其占比
type CategoryShare struct {
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	PercentOfTotal float64         `json:"percent_of_total"`
}

// BiggestExpenseCategory 金额最大的类别，没有支出时返回 nil
func BiggestExpenseCategory(current *Totals, monthTotal decimal.Decimal) *CategoryShare {
	var best *CategoryShare
	for _, c := range current.Categories() {
		amount := current.Get(c)
		if best == nil || amount.GreaterThan(best.Amount) {
			best = &CategoryShare{Category: c, Amount: amount}
		}
	}
	if best != nil {
		best.PercentOfTotal = percent(best.Amount, monthTotal)
	}
	return best
}
