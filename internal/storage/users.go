package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mwrites/ledgerbot/internal/common"
	"github.com/mwrites/ledgerbot/internal/model"
)

// CreateUser adds a user to the whitelist. Adding an already-present
// telegram id returns the existing row unchanged.
func (s *SQLiteStorage) CreateUser(ctx context.Context, telegramID string) (*model.User, error) {
	telegramID = strings.TrimSpace(telegramID)
	if telegramID == "" {
		return nil, fmt.Errorf("telegram id cannot be empty")
	}

	existing, err := s.UserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (telegram_id) VALUES (?)`, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted user id: %w", err)
	}

	return s.userByID(ctx, id)
}

// UserByTelegramID looks up a whitelisted user. An unknown sender is
// (nil, nil), not an error.
func (s *SQLiteStorage) UserByTelegramID(ctx context.Context, telegramID string) (*model.User, error) {
	var user model.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, telegram_id, created_at FROM users WHERE telegram_id = ?`,
		telegramID,
	).Scan(&user.ID, &user.TelegramID, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query user: %v", common.ErrStorage, err)
	}

	return &user, nil
}

func (s *SQLiteStorage) userByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, telegram_id, created_at FROM users WHERE id = ?`,
		id,
	).Scan(&user.ID, &user.TelegramID, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to query user by id: %w", err)
	}
	return &user, nil
}
