package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fintrack/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionInput 创建/更新交易的字段（更新为整体替换）
type TransactionInput struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
}

// TransactionStore 交易记录存取接口
type TransactionStore interface {
	Create(ctx context.Context, in TransactionInput) (*models.Transaction, error)
	List(ctx context.Context, descending bool) ([]models.Transaction, error)
	Update(ctx context.Context, id string, in TransactionInput) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// GormTransactionStore 基于 gorm 的实现
type GormTransactionStore struct {
	db *gorm.DB
}

// NewTransactionStore 创建交易存储
func NewTransactionStore(db *gorm.DB) *GormTransactionStore {
	return &GormTransactionStore{db: db}
}

func (in *TransactionInput) normalize() error {
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	if in.Amount.IsZero() {
		return missing("amount")
	}
	if in.Description == "" {
		return missing("description")
	}
	if in.Date.IsZero() {
		return missing("date")
	}
	// 日期只保留年月日
	in.Date = time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

// Create 创建交易记录
func (s *GormTransactionStore) Create(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	tx := models.Transaction{
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		Category:    in.Category,
	}
	if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return nil, storeErr("create transaction", err)
	}
	return &tx, nil
}

// List 获取全部交易记录，按日期排序
func (s *GormTransactionStore) List(ctx context.Context, descending bool) ([]models.Transaction, error) {
	order := "date ASC"
	if descending {
		order = "date DESC"
	}

	list := make([]models.Transaction, 0)
	if err := s.db.WithContext(ctx).Order(order).Find(&list).Error; err != nil {
		return nil, storeErr("list transactions", err)
	}
	return list, nil
}

// Update 整体替换交易的金额、描述、日期和类别
func (s *GormTransactionStore) Update(ctx context.Context, id string, in TransactionInput) (*models.Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, missing("id")
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var tx models.Transaction
	if err := db.Where("id = ?", id).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
		}
		return nil, storeErr("find transaction", err)
	}

	updates := map[string]interface{}{
		"amount":      in.Amount,
		"description": in.Description,
		"date":        in.Date,
		"category":    in.Category,
	}
	if err := db.Model(&tx).Updates(updates).Error; err != nil {
		return nil, storeErr("update transaction", err)
	}

	tx.Amount = in.Amount
	tx.Description = in.Description
	tx.Date = in.Date
	tx.Category = in.Category
	return &tx, nil
}

// Delete 删除交易记录
func (s *GormTransactionStore) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return missing("id")
	}

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return storeErr("delete transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return nil
}
