package appointments

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

func (r *SQLiteRepository) NextID(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(appointment_id), 0) + 1 FROM appointments`

	var id int
	if err := r.db.QueryRowContext(ctx, query).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, a *models.Appointment) error {
	query :=
		`INSERT INTO appointments (appointment_id, patient_name, caregiver_name, vaccine_name, date, time)
		 VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.PatientName, a.CaregiverName, a.VaccineName, a.Date, a.Time)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int) (*models.Appointment, error) {
	query :=
		`SELECT appointment_id, patient_name, caregiver_name, vaccine_name, date, time
		 FROM appointments WHERE appointment_id = ?`

	a := &models.Appointment{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.PatientName, &a.CaregiverName, &a.VaccineName, &a.Date, &a.Time)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int) error {
	query := `DELETE FROM appointments WHERE appointment_id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByPatient(ctx context.Context, username string) ([]models.Appointment, error) {
	query :=
		`SELECT appointment_id, patient_name, caregiver_name, vaccine_name, date, time
		 FROM appointments WHERE patient_name = ? ORDER BY appointment_id ASC`

	return r.list(ctx, query, username)
}

func (r *SQLiteRepository) ListByCaregiver(ctx context.Context, username string) ([]models.Appointment, error) {
	query :=
		`SELECT appointment_id, patient_name, caregiver_name, vaccine_name, date, time
		 FROM appointments WHERE caregiver_name = ? ORDER BY appointment_id ASC`

	return r.list(ctx, query, username)
}

func (r *SQLiteRepository) list(ctx context.Context, query, username string) ([]models.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.PatientName, &a.CaregiverName, &a.VaccineName, &a.Date, &a.Time); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
