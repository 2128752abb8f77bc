package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fintrack/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemoryTransactionStore 进程内交易存储，用于本地演示和测试
type MemoryTransactionStore struct {
	mu    sync.Mutex
	items []models.Transaction
}

// NewMemoryTransactionStore 创建内存交易存储
func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{}
}

// Create 创建交易记录
func (s *MemoryTransactionStore) Create(_ context.Context, in TransactionInput) (*models.Transaction, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	now := time.Now()
	tx := models.Transaction{
		ID:          uuid.NewString(),
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, tx)
	return &tx, nil
}

// List 获取全部交易，按日期排序
func (s *MemoryTransactionStore) List(_ context.Context, descending bool) ([]models.Transaction, error) {
	s.mu.Lock()
	out := append([]models.Transaction{}, s.items...)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// Update 覆盖更新交易记录
func (s *MemoryTransactionStore) Update(_ context.Context, id string, in TransactionInput) (*models.Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, missing("id")
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items[i].Amount = in.Amount
		s.items[i].Description = in.Description
		s.items[i].Date = in.Date
		s.items[i].Category = in.Category
		s.items[i].UpdatedAt = time.Now()
		tx := s.items[i]
		return &tx, nil
	}
	return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
}

// Delete 删除交易记录
func (s *MemoryTransactionStore) Delete(_ context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return missing("id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
}

// MemoryBudgetStore 进程内预算存储
type MemoryBudgetStore struct {
	mu    sync.Mutex
	items []models.Budget
}

// NewMemoryBudgetStore 创建内存预算存储
func NewMemoryBudgetStore() *MemoryBudgetStore {
	return &MemoryBudgetStore{}
}

// Upsert 按 (category, month) 创建或替换预算金额
func (s *MemoryBudgetStore) Upsert(_ context.Context, category string, amount decimal.Decimal, month string) (*models.Budget, error) {
	category, month, err := validateBudget(category, amount, month)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for i := range s.items {
		if s.items[i].Category == category && s.items[i].Month == month {
			s.items[i].Amount = amount
			s.items[i].UpdatedAt = now
			b := s.items[i]
			return &b, nil
		}
	}
	b := models.Budget{
		ID:        uuid.NewString(),
		Category:  category,
		Amount:    amount,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.items = append(s.items, b)
	return &b, nil
}

// ListByMonth 获取预算列表，month 为空时返回全部月份
func (s *MemoryBudgetStore) ListByMonth(_ context.Context, month string) ([]models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Budget, 0, len(s.items))
	for _, b := range s.items {
		if month == "" || b.Month == month {
			out = append(out, b)
		}
	}
	return out, nil
}

// Delete 删除预算
func (s *MemoryBudgetStore) Delete(_ context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return missing("id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("budget %s: %w", id, ErrNotFound)
}
