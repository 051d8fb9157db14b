package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwrites/ledgerbot/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLiteStorageEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "12345")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "12345", user.TelegramID)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateUserIdempotent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first, err := store.CreateUser(ctx, "12345")
	require.NoError(t, err)

	second, err := store.CreateUser(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestCreateUserEmptyID(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.CreateUser(context.Background(), "   ")
	assert.Error(t, err)
}

func TestUserByTelegramIDUnknown(t *testing.T) {
	store := newTestStorage(t)

	user, err := store.UserByTelegramID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSaveExpense(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "12345")
	require.NoError(t, err)

	expense := &model.Expense{
		UserID:      user.ID,
		Description: "Pizza",
		Amount:      2000,
		Category:    model.CategoryFood,
	}
	require.NoError(t, store.SaveExpense(ctx, expense))
	assert.NotZero(t, expense.ID)
	assert.False(t, expense.AddedAt.IsZero())
}

func TestSaveExpenseValidation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "12345")
	require.NoError(t, err)

	tests := []struct {
		expense *model.Expense
		name    string
	}{
		{name: "nil expense", expense: nil},
		{
			name:    "empty description",
			expense: &model.Expense{UserID: user.ID, Description: " ", Amount: 100, Category: model.CategoryFood},
		},
		{
			name:    "non-positive amount",
			expense: &model.Expense{UserID: user.ID, Description: "Pizza", Amount: 0, Category: model.CategoryFood},
		},
		{
			name:    "invalid category",
			expense: &model.Expense{UserID: user.ID, Description: "Pizza", Amount: 100, Category: "Shopping"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.SaveExpense(ctx, tt.expense))
		})
	}
}

func TestSaveExpenseUnknownUser(t *testing.T) {
	store := newTestStorage(t)

	err := store.SaveExpense(context.Background(), &model.Expense{
		UserID:      999,
		Description: "Pizza",
		Amount:      2000,
		Category:    model.CategoryFood,
	})
	assert.Error(t, err, "foreign key constraint should reject unknown user")
}

func TestExpensesByUser(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "12345")
	require.NoError(t, err)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := &model.Expense{
		UserID: user.ID, Description: "Rent", Amount: 120000,
		Category: model.CategoryHousing, AddedAt: base,
	}
	newer := &model.Expense{
		UserID: user.ID, Description: "Pizza", Amount: 2000,
		Category: model.CategoryFood, AddedAt: base.Add(time.Hour),
	}
	require.NoError(t, store.SaveExpense(ctx, older))
	require.NoError(t, store.SaveExpense(ctx, newer))

	expenses, err := store.ExpensesByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	// Newest first, with amounts and categories surviving the round trip.
	assert.Equal(t, "Pizza", expenses[0].Description)
	assert.Equal(t, model.Amount(2000), expenses[0].Amount)
	assert.Equal(t, model.CategoryFood, expenses[0].Category)
	assert.Equal(t, "Rent", expenses[1].Description)
	assert.Equal(t, model.CategoryHousing, expenses[1].Category)
}

func TestExpensesByUserEmpty(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "12345")
	require.NoError(t, err)

	expenses, err := store.ExpensesByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestMigrateIdempotent(t *testing.T) {
	store := newTestStorage(t)

	// Running migrations again on a migrated database is a no-op.
	require.NoError(t, store.Migrate(context.Background()))
}
