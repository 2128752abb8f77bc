package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() {
		sqlDB.Close()
	}
}

var transactionColumns = []string{"id", "amount", "description", "date", "category", "created_at", "updated_at"}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestErrors(t *testing.T) {
	err := missing("amount")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "missing required field: amount", err.Error())
	assert.Equal(t, "invalid field month: expected YYYY-MM", invalid("month", "expected YYYY-MM").Error())

	wrapped := storeErr("list budgets", errors.New("connection refused"))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsNotFound(wrapped))
	var se *StoreError
	require.True(t, errors.As(wrapped, &se))
	assert.Equal(t, "list budgets", se.Op)
}

func TestGormTransactionStore_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := NewTransactionStore(db).Create(context.Background(), TransactionInput{
		Amount:      decimal.NewFromInt(-50),
		Description: "  Dinner  ",
		Date:        time.Date(2024, 1, 5, 19, 30, 0, 0, time.UTC),
		Category:    "dining",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "Dinner", tx.Description)
	// 时分秒被截断
	assert.Equal(t, day(2024, 1, 5), tx.Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionStore_Create_Validation(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	s := NewTransactionStore(db)

	cases := []struct {
		name  string
		in    TransactionInput
		field string
	}{
		{"missing amount", TransactionInput{Description: "x", Date: day(2024, 1, 1)}, "amount"},
		{"blank description", TransactionInput{Amount: decimal.NewFromInt(1), Description: "   ", Date: day(2024, 1, 1)}, "description"},
		{"missing date", TransactionInput{Amount: decimal.NewFromInt(1), Description: "x"}, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), tc.in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
	// 校验失败不访问数据库
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionStore_List(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `transactions` ORDER BY date DESC").
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow("b", "-30.00", "Lunch", day(2024, 2, 10), "dining", now, now).
			AddRow("a", "2000.00", "Salary", day(2024, 2, 1), "", now, now))

	list, err := NewTransactionStore(db).List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.True(t, list[0].Amount.Equal(decimal.NewFromInt(-30)))
	assert.Equal(t, "other", list[1].CategoryID())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionStore_List_Empty(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `transactions` ORDER BY date ASC").
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	list, err := NewTransactionStore(db).List(context.Background(), false)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGormTransactionStore_List_Error(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnError(errors.New("connection reset"))

	_, err := NewTransactionStore(db).List(context.Background(), true)
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list transactions", se.Op)
}

func TestGormTransactionStore_Update(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow("t1", "-30.00", "Lunch", day(2024, 2, 10), "dining", now, now))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `transactions` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := NewTransactionStore(db).Update(context.Background(), "t1", TransactionInput{
		Amount:      decimal.NewFromInt(-45),
		Description: "Team lunch",
		Date:        day(2024, 2, 11),
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", tx.ID)
	assert.Equal(t, "Team lunch", tx.Description)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(-45)))
	// 整体替换：类别被清空
	assert.Equal(t, "", tx.Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionStore_Update_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	_, err := NewTransactionStore(db).Update(context.Background(), "missing", TransactionInput{
		Amount:      decimal.NewFromInt(1),
		Description: "x",
		Date:        day(2024, 1, 1),
	})
	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionStore_Delete(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `transactions`").
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewTransactionStore(db).Delete(context.Background(), "t1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionStore_Delete_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `transactions`").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := NewTransactionStore(db).Delete(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionStore_Delete_MissingID(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	err := NewTransactionStore(db).Delete(context.Background(), "")
	assert.True(t, IsValidation(err))
}

var budgetColumns = []string{"id", "category", "amount", "month", "created_at", "updated_at"}

func TestGormBudgetStore_Upsert(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `budgets` .* ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(sqlmock.NewRows(budgetColumns).
			AddRow("existing-id", "dining", "60.00", "2024-02", now, now))

	b, err := NewBudgetStore(db).Upsert(context.Background(), "dining", decimal.NewFromInt(60), "2024-02")
	require.NoError(t, err)
	// 冲突时保留原有 ID
	assert.Equal(t, "existing-id", b.ID)
	assert.True(t, b.Amount.Equal(decimal.NewFromInt(60)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBudgetStore_Upsert_Validation(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	s := NewBudgetStore(db)
	ctx := context.Background()

	_, err := s.Upsert(ctx, "", decimal.NewFromInt(10), "2024-02")
	assert.True(t, IsValidation(err))
	_, err = s.Upsert(ctx, "dining", decimal.Zero, "2024-02")
	assert.True(t, IsValidation(err))
	_, err = s.Upsert(ctx, "dining", decimal.NewFromInt(-1), "2024-02")
	assert.True(t, IsValidation(err))
	_, err = s.Upsert(ctx, "dining", decimal.NewFromInt(10), "")
	assert.True(t, IsValidation(err))
	_, err = s.Upsert(ctx, "dining", decimal.NewFromInt(10), "Feb 2024")
	assert.True(t, IsValidation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBudgetStore_ListByMonth(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `budgets` WHERE month = \\?").
		WithArgs("2024-02").
		WillReturnRows(sqlmock.NewRows(budgetColumns).
			AddRow("b1", "dining", "40.00", "2024-02", now, now))

	list, err := NewBudgetStore(db).ListByMonth(context.Background(), "2024-02")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "dining", list[0].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBudgetStore_ListByMonth_All(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `budgets` ORDER BY").
		WillReturnRows(sqlmock.NewRows(budgetColumns))

	list, err := NewBudgetStore(db).ListByMonth(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBudgetStore_Delete_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `budgets`").
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := NewBudgetStore(db).Delete(context.Background(), "nope")
	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
