package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// 金额以 JSON 数字输出，与前端 Number 保持一致
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction 收支记录模型，金额为负表示支出，为正表示收入
type Transaction struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Description string          `json:"description" gorm:"size:255;not null"`
	Date        time.Time       `json:"date" gorm:"index;not null"`
	Category    string          `json:"category,omitempty" gorm:"size:50"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate 创建前生成 UUID
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// AfterFind 驱动按连接时区返回 DATETIME，统一转回 UTC
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	t.Date = t.Date.UTC()
	return nil
}

// Day 交易日期（YYYY-MM-DD），按 UTC 日历日计算
func (t Transaction) Day() string {
	return t.Date.UTC().Format("2006-01-02")
}

// IsExpense 是否为支出
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome 是否为收入
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// CategoryID 返回归一化后的类别，缺省为 other
func (t Transaction) CategoryID() string {
	return NormalizeCategory(t.Category)
}

// Month 返回交易所属月份（YYYY-MM），日期按 UTC 日历日存储
func (t Transaction) Month() string {
	return t.Date.UTC().Format(MonthLayout)
}
