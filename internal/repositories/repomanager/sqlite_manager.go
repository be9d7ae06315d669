package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/Zetpete/Vaccine-Scheduler/internal/dbx"
	"github.com/Zetpete/Vaccine-Scheduler/internal/migrations"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/accounts"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/appointments"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/availabilities"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/vaccines"
)

type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Patients(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLiteRepository(db, accounts.TablePatients)
}

func (m *SQLiteRepositoryManager) Caregivers(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLiteRepository(db, accounts.TableCaregivers)
}

func (m *SQLiteRepositoryManager) Vaccines(db dbx.DBTX) vaccines.Repository {
	return vaccines.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Availabilities(db dbx.DBTX) availabilities.Repository {
	return availabilities.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Appointments(db dbx.DBTX) appointments.Repository {
	return appointments.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.SQLite())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
