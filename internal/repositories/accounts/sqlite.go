package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
	"github.com/Zetpete/Vaccine-Scheduler/internal/dbx"
	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
)

type SQLiteRepository struct {
	db    dbx.DBTX
	table string
}

// NewSQLiteRepository returns a repository over the given account table
// (TablePatients or TableCaregivers).
func NewSQLiteRepository(db dbx.DBTX, table string) *SQLiteRepository {
	return &SQLiteRepository{db: db, table: table}
}

func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (username, salt, hash) VALUES (?, ?, ?)`, r.table)

	_, err := r.db.ExecContext(ctx, query, account.Username, account.Salt, account.Hash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := fmt.Sprintf(
		`SELECT username, salt, hash FROM %s WHERE username = ?`, r.table)

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&account.Username, &account.Salt, &account.Hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, username string) (bool, error) {
	query := fmt.Sprintf(
		`SELECT 1 FROM %s WHERE username = ?`, r.table)

	var one int
	err := r.db.QueryRowContext(ctx, query, username).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}
