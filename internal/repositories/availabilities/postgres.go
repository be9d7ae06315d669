package availabilities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
	"github.com/Zetpete/Vaccine-Scheduler/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, username, date string) error {
	query := `INSERT INTO availabilities (username, time) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, username, date); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindEarliest(ctx context.Context, date string) (string, error) {
	query :=
		`SELECT username FROM availabilities
		 WHERE time = $1 ORDER BY username ASC LIMIT 1`

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

func (r *PostgresRepository) ListByDate(ctx context.Context, date string) ([]string, error) {
	query :=
		`SELECT username FROM availabilities
		 WHERE time = $1 ORDER BY username ASC`

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

func (r *PostgresRepository) Delete(ctx context.Context, username, date string) error {
	query := `DELETE FROM availabilities WHERE username = $1 AND time = $2`

	if _, err := r.db.ExecContext(ctx, query, username, date); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
