package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthLayout 月份格式 YYYY-MM
const MonthLayout = "2006-01"

// Budget 月度类别预算，同一类别同一月份仅一条
type Budget struct {
	ID        string          `json:"id" gorm:"primaryKey;size:36"`
	Category  string          `json:"category" gorm:"size:50;not null;uniqueIndex:idx_budget_category_month"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Month     string          `json:"month" gorm:"size:7;not null;uniqueIndex:idx_budget_category_month;index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}

// BeforeCreate 创建前生成 UUID
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Replaced 是否为替换已有预算；新建时 CreatedAt 与 UpdatedAt 相同
func (b Budget) Replaced() bool {
	return b.UpdatedAt.After(b.CreatedAt)
}

// ValidMonth 校验月份格式是否为 YYYY-MM
func ValidMonth(month string) bool {
	if len(month) != len(MonthLayout) {
		return false
	}
	_, err := time.Parse(MonthLayout, month)
	return err == nil
}
