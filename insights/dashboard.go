package insights

import (
	"time"

	"fintrack/models"

	"github.com/shopspring/decimal"
)

// TopCategoryCount 概览卡片展示的类别数
const TopCategoryCount = 3

// BudgetStatus 单条预算的使用情况
type BudgetStatus struct {
	models.Budget
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	OverAmount  decimal.Decimal `json:"over_amount"`
	PercentUsed float64         `json:"percent_used"`
	OverBudget  bool            `json:"over_budget"`
}

// BudgetStatuses 计算每条预算的已用、剩余和超支金额，使用比例封顶 100
func BudgetStatuses(budgets []models.Budget, txs []models.Transaction) []BudgetStatus {
	spent := TotalsByCategory(txs, SignExpense)
	out := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		cat := models.LookupCategory(b.Category)
		s := spent.Get(b.Category)
		status := BudgetStatus{
			Budget:     b,
			Name:       cat.Name,
			Color:      cat.Color,
			Spent:      s,
			Remaining:  decimal.Zero,
			OverAmount: decimal.Zero,
			OverBudget: s.GreaterThan(b.Amount),
		}
		if status.OverBudget {
			status.OverAmount = s.Sub(b.Amount)
		} else {
			status.Remaining = b.Amount.Sub(s)
		}
		status.PercentUsed = percent(s, b.Amount)
		if status.PercentUsed > 100 {
			status.PercentUsed = 100
		}
		out = append(out, status)
	}
	return out
}

// CategorySlice 饼图扇区
type CategorySlice struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Color    string          `json:"color"`
	Total    decimal.Decimal `json:"total"`
	Percent  float64         `json:"percent"`
}

// CategoryBreakdown 全部交易按类别的绝对值占比，未知类别以原始 ID 展示
func CategoryBreakdown(txs []models.Transaction) []CategorySlice {
	totals := TotalsByCategory(txs, SignAll)
	sum := totals.Sum()
	out := make([]CategorySlice, 0, totals.Len())
	for _, c := range totals.Categories() {
		cat := models.ResolveCategory(c)
		out = append(out, CategorySlice{
			Category: c,
			Name:     cat.Name,
			Color:    cat.Color,
			Total:    totals.Get(c),
			Percent:  percent(totals.Get(c), sum),
		})
	}
	return out
}

// SpendingInsights 本月与上月的支出洞察
type SpendingInsights struct {
	Month          string          `json:"month"`
	PreviousMonth  string          `json:"previous_month"`
	CurrentTotal   decimal.Decimal `json:"current_total"`
	LastTotal      decimal.Decimal `json:"last_total"`
	MonthlyChange  float64         `json:"monthly_change"`
	TopIncrease    *CategoryDelta  `json:"top_increase"`
	TopDecrease    *CategoryDelta  `json:"top_decrease"`
	MostOverBudget *OverBudget     `json:"most_over_budget"`
	BiggestExpense *CategoryShare  `json:"biggest_expense"`
}

// Spending 以 now 所在月份为本月生成洞察，预算仅取本月
func Spending(txs []models.Transaction, budgets []models.Budget, now time.Time) SpendingInsights {
	month := MonthOf(now)
	prev := PreviousMonth(month)

	current := TotalsByCategory(FilterMonth(txs, month), SignExpense)
	last := TotalsByCategory(FilterMonth(txs, prev), SignExpense)
	currentTotal, lastTotal := current.Sum(), last.Sum()
	deltas := CategoryDeltas(current, last)

	return SpendingInsights{
		Month:          month,
		PreviousMonth:  prev,
		CurrentTotal:   currentTotal,
		LastTotal:      lastTotal,
		MonthlyChange:  MonthlyChangePercent(currentTotal, lastTotal),
		TopIncrease:    deltas.TopIncrease,
		TopDecrease:    deltas.TopDecrease,
		MostOverBudget: MostOverBudget(FilterBudgets(budgets, month), current),
		BiggestExpense: BiggestExpenseCategory(current, currentTotal),
	}
}

// TopCategoryCard 概览卡片中的类别
type TopCategoryCard struct {
	CategoryTotal
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ComparisonBar 预算对比柱状图数据
type ComparisonBar struct {
	ComparisonRow
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Dashboard 仪表盘视图模型
type Dashboard struct {
	Month         string            `json:"month"`
	Summary       Summary           `json:"summary"`
	TopCategories []TopCategoryCard `json:"top_categories"`
	Breakdown     []CategorySlice   `json:"breakdown"`
	Monthly       []MonthTotal      `json:"monthly"`
	Comparison    []ComparisonBar   `json:"comparison"`
	Budgets       []BudgetStatus    `json:"budgets"`
	Insights      SpendingInsights  `json:"insights"`
}

// BuildDashboard 组装仪表盘。month 决定预算对比与预算列表，洞察始终基于 now 所在月份。
func BuildDashboard(txs []models.Transaction, budgets []models.Budget, month string, now time.Time) Dashboard {
	monthTxs := FilterMonth(txs, month)
	monthBudgets := FilterBudgets(budgets, month)

	top := TopCategories(txs, TopCategoryCount)
	cards := make([]TopCategoryCard, 0, len(top))
	for _, t := range top {
		cat := models.LookupCategory(t.Category)
		cards = append(cards, TopCategoryCard{CategoryTotal: t, Name: cat.Name, Color: cat.Color})
	}

	rows := BudgetComparison(monthBudgets, monthTxs)
	bars := make([]ComparisonBar, 0, len(rows))
	for _, r := range rows {
		cat := models.LookupCategory(r.Category)
		bars = append(bars, ComparisonBar{ComparisonRow: r, Name: cat.Name, Color: cat.Color})
	}

	return Dashboard{
		Month:         month,
		Summary:       IncomeExpenseNet(txs),
		TopCategories: cards,
		Breakdown:     CategoryBreakdown(txs),
		Monthly:       MonthlyTotals(txs),
		Comparison:    bars,
		Budgets:       BudgetStatuses(monthBudgets, monthTxs),
		Insights:      Spending(txs, budgets, now),
	}
}
