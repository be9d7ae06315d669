package vaccines

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
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) (*models.Vaccine, error) {
	query := `SELECT name, doses FROM vaccines WHERE name = ?`

	v := &models.Vaccine{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&v.Name, &v.Doses)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, name string, delta int) error {
	query :=
		`INSERT INTO vaccines (name, doses) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET doses = doses + excluded.doses`

	if _, err := r.db.ExecContext(ctx, query, name, delta); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) AdjustDoses(ctx context.Context, name string, delta int) error {
	query :=
		`UPDATE vaccines SET doses = doses + ?
		 WHERE name = ? AND doses + ? >= 0`

	res, err := r.db.ExecContext(ctx, query, delta, name, delta)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if ra == 0 {
		return common.ErrInsufficientDoses
	}
	return nil
}

func (r *SQLiteRepository) ListInStock(ctx context.Context) ([]models.Vaccine, error) {
	query := `SELECT name, doses FROM vaccines WHERE doses > 0 ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Vaccine
	for rows.Next() {
		var v models.Vaccine
		if err := rows.Scan(&v.Name, &v.Doses); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
