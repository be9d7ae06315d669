package availabilities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
	"github.com/Zetpete/Vaccine-Scheduler/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, username, date string) error {
	query := `INSERT INTO availabilities (username, time) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, username, date); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) FindEarliest(ctx context.Context, date string) (string, error) {
	query :=
		`SELECT username FROM availabilities
		 WHERE time = ? ORDER BY username ASC LIMIT 1`

	var username string
	err := r.db.QueryRowContext(ctx, query, date).Scan(&username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return username, nil
}

func (r *SQLiteRepository) ListByDate(ctx context.Context, date string) ([]string, error) {
	query :=
		`SELECT username FROM availabilities
		 WHERE time = ? ORDER BY username ASC`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		result = append(result, username)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, username, date string) error {
	query := `DELETE FROM availabilities WHERE username = ? AND time = ?`

	if _, err := r.db.ExecContext(ctx, query, username, date); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
