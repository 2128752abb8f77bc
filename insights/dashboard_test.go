package insights

import (
	"testing"
	"time"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 2, 20, 9, 30, 0, 0, time.UTC)

func TestMonthHelpers(t *testing.T) {
	assert.Equal(t, "2024-02", MonthOf(fixedNow))
	assert.Equal(t, "2024-01", PreviousMonth("2024-02"))
	assert.Equal(t, "2023-12", PreviousMonth("2024-01"))
	assert.Equal(t, "", PreviousMonth("2024/01"))

	m, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), m)
	_, err = ParseMonth("March")
	assert.Error(t, err)
}

func TestFilterMonth(t *testing.T) {
	txs, budgets := scenario()
	assert.Len(t, FilterMonth(txs, "2024-01"), 1)
	assert.Empty(t, FilterMonth(txs, "2023-12"))
	assert.NotNil(t, FilterMonth(nil, "2024-01"))
	assert.Len(t, FilterBudgets(budgets, "2024-02"), 1)
	assert.Empty(t, FilterBudgets(budgets, "2024-01"))
}

func TestMonthlyTotals(t *testing.T) {
	txs, _ := scenario()
	totals := MonthlyTotals(txs)
	require.Len(t, totals, 2)
	assert.Equal(t, "2024-01", totals[0].Month)
	assertDec(t, "-50", totals[0].Total)
	assert.Equal(t, "2024-02", totals[1].Month)
	assertDec(t, "1970", totals[1].Total)
}

func TestBudgetStatuses(t *testing.T) {
	budgets := []models.Budget{
		budget("dining", "40", "2024-02"),
		budget("groceries", "100", "2024-02"),
		budget("mystery", "10", "2024-02"),
	}
	txs := []models.Transaction{
		tx("-30", "dining", "2024-02-10"),
		tx("-130", "groceries", "2024-02-11"),
		tx("500", "groceries", "2024-02-12"),
	}

	statuses := BudgetStatuses(budgets, txs)
	require.Len(t, statuses, 3)

	dining := statuses[0]
	assert.Equal(t, "Dining Out", dining.Name)
	assertDec(t, "30", dining.Spent)
	assertDec(t, "10", dining.Remaining)
	assertDec(t, "0", dining.OverAmount)
	assert.Equal(t, 75.0, dining.PercentUsed)
	assert.False(t, dining.OverBudget)

	groceries := statuses[1]
	assert.True(t, groceries.OverBudget)
	assertDec(t, "30", groceries.OverAmount)
	assertDec(t, "0", groceries.Remaining)
	assert.Equal(t, 100.0, groceries.PercentUsed)

	// 未登记类别退回 other
	mystery := statuses[2]
	assert.Equal(t, "mystery", mystery.Category)
	assert.Equal(t, "Other", mystery.Name)
	assert.Equal(t, models.NeutralColor, mystery.Color)
	assert.Equal(t, 0.0, mystery.PercentUsed)
}

func TestCategoryBreakdown(t *testing.T) {
	txs := []models.Transaction{
		tx("-25", "dining", "2024-02-01"),
		tx("75", "freelance", "2024-02-02"),
	}
	slices := CategoryBreakdown(txs)
	require.Len(t, slices, 2)

	assert.Equal(t, "Dining Out", slices[0].Name)
	assert.Equal(t, 25.0, slices[0].Percent)

	// 未登记类别直接使用原始 ID
	assert.Equal(t, "freelance", slices[1].Name)
	assert.Equal(t, models.NeutralColor, slices[1].Color)
	assert.Equal(t, 75.0, slices[1].Percent)

	assert.Empty(t, CategoryBreakdown(nil))
}

func TestSpending(t *testing.T) {
	txs, budgets := scenario()
	s := Spending(txs, budgets, fixedNow)

	assert.Equal(t, "2024-02", s.Month)
	assert.Equal(t, "2024-01", s.PreviousMonth)
	assertDec(t, "30", s.CurrentTotal)
	assertDec(t, "50", s.LastTotal)
	assert.Equal(t, -40.0, s.MonthlyChange)

	require.NotNil(t, s.TopIncrease)
	assert.Equal(t, "dining", s.TopIncrease.Category)
	assertDec(t, "-20", s.TopIncrease.Change)
	require.NotNil(t, s.TopDecrease)
	assert.Equal(t, "dining", s.TopDecrease.Category)

	assert.Nil(t, s.MostOverBudget)
	require.NotNil(t, s.BiggestExpense)
	assert.Equal(t, "dining", s.BiggestExpense.Category)
	assert.Equal(t, 100.0, s.BiggestExpense.PercentOfTotal)
}

func TestSpending_OverBudgetUsesCurrentMonthOnly(t *testing.T) {
	txs := []models.Transaction{
		tx("-60", "dining", "2024-02-03"),
		tx("-500", "dining", "2024-01-03"),
	}
	budgets := []models.Budget{
		budget("dining", "100", "2024-01"),
		budget("dining", "50", "2024-02"),
	}
	s := Spending(txs, budgets, fixedNow)
	require.NotNil(t, s.MostOverBudget)
	assertDec(t, "50", s.MostOverBudget.Budgeted)
	assertDec(t, "10", s.MostOverBudget.OverAmount)
	assert.Equal(t, 20.0, s.MostOverBudget.PercentOver)
}

func TestSpending_Empty(t *testing.T) {
	s := Spending(nil, nil, fixedNow)
	assert.Equal(t, 0.0, s.MonthlyChange)
	assert.Nil(t, s.TopIncrease)
	assert.Nil(t, s.TopDecrease)
	assert.Nil(t, s.MostOverBudget)
	assert.Nil(t, s.BiggestExpense)
}

func TestBuildDashboard(t *testing.T) {
	txs, budgets := scenario()
	d := BuildDashboard(txs, budgets, "2024-02", fixedNow)

	assert.Equal(t, "2024-02", d.Month)
	assertDec(t, "2000", d.Summary.Income)
	assertDec(t, "80", d.Summary.Expenses)
	assertDec(t, "1920", d.Summary.Net)

	require.Len(t, d.TopCategories, 2)
	assert.Equal(t, "other", d.TopCategories[0].Category)
	assert.Equal(t, "Other", d.TopCategories[0].Name)
	assert.Equal(t, "dining", d.TopCategories[1].Category)
	assertDec(t, "80", d.TopCategories[1].Total)

	require.Len(t, d.Comparison, 1)
	assert.Equal(t, "Dining Out", d.Comparison[0].Name)
	assertDec(t, "40", d.Comparison[0].Budgeted)
	assertDec(t, "30", d.Comparison[0].Actual)

	require.Len(t, d.Budgets, 1)
	assertDec(t, "10", d.Budgets[0].Remaining)

	assert.Len(t, d.Monthly, 2)
	assert.Len(t, d.Breakdown, 2)
	assert.Equal(t, "2024-02", d.Insights.Month)
}

func TestBuildDashboard_OtherMonth(t *testing.T) {
	txs, budgets := scenario()
	d := BuildDashboard(txs, budgets, "2024-01", fixedNow)

	require.Len(t, d.Comparison, 1)
	assert.Equal(t, "dining", d.Comparison[0].Category)
	assertDec(t, "0", d.Comparison[0].Budgeted)
	assertDec(t, "50", d.Comparison[0].Actual)
	assert.Empty(t, d.Budgets)
	// 洞察始终基于当前月份
	assert.Equal(t, "2024-02", d.Insights.Month)
}

// 日期以非 UTC 时区读出、now 处于西半球月末时，月份归属不变
func TestSpending_NegativeOffsetAcrossMonthBoundary(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	inEST := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d.In(est)
	}
	txs := []models.Transaction{
		{Amount: dec("-50"), Category: "dining", Date: inEST("2024-01-01"), Description: "t"},
		{Amount: dec("-30"), Category: "dining", Date: inEST("2024-02-01"), Description: "t"},
		{Amount: dec("2000"), Date: inEST("2024-03-01"), Description: "t"},
	}
	budgets := []models.Budget{budget("dining", "20", "2024-02")}
	// UTC 已是 3 月 1 日
	now := time.Date(2024, 2, 29, 21, 0, 0, 0, est)

	s := Spending(txs, budgets, now)
	assert.Equal(t, "2024-02", s.Month)
	assert.Equal(t, "2024-01", s.PreviousMonth)
	assertDec(t, "30", s.CurrentTotal)
	assertDec(t, "50", s.LastTotal)
	require.NotNil(t, s.MostOverBudget)
	assertDec(t, "10", s.MostOverBudget.OverAmount)

	d := BuildDashboard(txs, budgets, "2024-02", now)
	require.Len(t, d.Comparison, 1)
	assertDec(t, "30", d.Comparison[0].Actual)
	require.Len(t, d.Monthly, 3)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"},
		[]string{d.Monthly[0].Month, d.Monthly[1].Month, d.Monthly[2].Month})
	assert.Len(t, FilterMonth(txs, "2024-01"), 1)
}
