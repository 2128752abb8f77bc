package insights

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Totals 类别 -> 金额，保留类别首次出现的顺序
type Totals struct {
	order []string
	sums  map[string]decimal.Decimal
}

// NewTotals 创建空的类别汇总
func NewTotals() *Totals {
	return &Totals{sums: make(map[string]decimal.Decimal)}
}

// Add 累加类别金额，零值不会产生新的类别
func (t *Totals) Add(category string, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	if t.sums == nil {
		t.sums = make(map[string]decimal.Decimal)
	}
	cur, ok := t.sums[category]
	if !ok {
		t.order = append(t.order, category)
	}
	t.sums[category] = cur.Add(amount)
}

// Get 获取类别金额，不存在时为 0
func (t *Totals) Get(category string) decimal.Decimal {
	if t == nil {
		return decimal.Zero
	}
	return t.sums[category]
}

// Has 类别是否存在
func (t *Totals) Has(category string) bool {
	if t == nil {
		return false
	}
	_, ok := t.sums[category]
	return ok
}

// Categories 按首次出现顺序返回类别
func (t *Totals) Categories() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.order...)
}

// Len 类别数量
func (t *Totals) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Sum 所有类别合计
func (t *Totals) Sum() decimal.Decimal {
	total := decimal.Zero
	if t == nil {
		return total
	}
	for _, c := range t.order {
		total = total.Add(t.sums[c])
	}
	return total
}

// Map 返回副本
func (t *Totals) Map() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, t.Len())
	if t == nil {
		return out
	}
	for k, v := range t.sums {
		out[k] = v
	}
	return out
}

// MarshalJSON 以对象形式输出
func (t *Totals) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Map())
}
