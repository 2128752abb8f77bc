package store

import (
	"context"
	"fmt"
	"strings"

	"fintrack/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetStore 月度预算存取接口
type BudgetStore interface {
	Upsert(ctx context.Context, category string, amount decimal.Decimal, month string) (*models.Budget, error)
	ListByMonth(ctx context.Context, month string) ([]models.Budget, error)
	Delete(ctx context.Context, id string) error
}

// GormBudgetStore 基于 gorm 的实现
type GormBudgetStore struct {
	db *gorm.DB
}

// NewBudgetStore 创建预算存储
func NewBudgetStore(db *gorm.DB) *GormBudgetStore {
	return &GormBudgetStore{db: db}
}

// Upsert 按 (category, month) 创建或替换预算金额，已存在时保留原 ID
func (s *GormBudgetStore) Upsert(ctx context.Context, category string, amount decimal.Decimal, month string) (*models.Budget, error) {
	category, month, err := validateBudget(category, amount, month)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	budget := models.Budget{Category: category, Amount: amount, Month: month}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return nil, storeErr("upsert budget", err)
	}

	// 冲突时数据库保留原记录 ID，需要重新读取
	var saved models.Budget
	if err := db.Where("category = ? AND month = ?", category, month).First(&saved).Error; err != nil {
		return nil, storeErr("reload budget", err)
	}
	return &saved, nil
}

// ListByMonth 获取预算列表，month 为空时返回全部月份
func (s *GormBudgetStore) ListByMonth(ctx context.Context, month string) ([]models.Budget, error) {
	query := s.db.WithContext(ctx).Model(&models.Budget{})
	if month != "" {
		query = query.Where("month = ?", month)
	}

	list := make([]models.Budget, 0)
	if err := query.Order("month ASC, created_at ASC").Find(&list).Error; err != nil {
		return nil, storeErr("list budgets", err)
	}
	return list, nil
}

// Delete 删除预算
func (s *GormBudgetStore) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return missing("id")
	}

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Budget{})
	if result.Error != nil {
		return storeErr("delete budget", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("budget %s: %w", id, ErrNotFound)
	}
	return nil
}

func validateBudget(category string, amount decimal.Decimal, month string) (string, string, error) {
	category = strings.TrimSpace(category)
	month = strings.TrimSpace(month)
	switch {
	case category == "":
		return "", "", missing("category")
	case amount.IsZero():
		return "", "", missing("amount")
	case amount.IsNegative():
		return "", "", invalid("amount", "must be positive")
	case month == "":
		return "", "", missing("month")
	case !models.ValidMonth(month):
		return "", "", invalid("month", "expected YYYY-MM")
	}
	return category, month, nil
}
