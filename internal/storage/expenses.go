package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mwrites/ledgerbot/internal/common"
	"github.com/mwrites/ledgerbot/internal/model"
)

// SaveExpense inserts one expense row and fills in ID and AddedAt.
// There is no deduplication: repeated identical messages create
// repeated rows.
func (s *SQLiteStorage) SaveExpense(ctx context.Context, expense *model.Expense) error {
	if expense == nil {
		return fmt.Errorf("expense cannot be nil")
	}
	if strings.TrimSpace(expense.Description) == "" {
		return fmt.Errorf("expense description cannot be empty")
	}
	if expense.Amount <= 0 {
		return fmt.Errorf("expense amount must be positive, got %s", expense.Amount)
	}
	if !expense.Category.Valid() {
		return fmt.Errorf("invalid category %q", expense.Category)
	}

	addedAt := expense.AddedAt
	if addedAt.IsZero() {
		addedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (user_id, description, amount_cents, category, added_at)
		 VALUES (?, ?, ?, ?, ?)`,
		expense.UserID, expense.Description, int64(expense.Amount), string(expense.Category), addedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to insert expense: %v", common.ErrStorage, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted expense id: %w", err)
	}

	expense.ID = id
	expense.AddedAt = addedAt
	return nil
}

// ExpensesByUser returns a user's expenses, newest first.
func (s *SQLiteStorage) ExpensesByUser(ctx context.Context, userID int64) ([]model.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, description, amount_cents, category, added_at
		 FROM expenses WHERE user_id = ? ORDER BY added_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		var cents int64
		var category string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &cents, &category, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Amount = model.Amount(cents)
		e.Category = model.ParseCategory(category)
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}
