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

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Patients(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db, accounts.TablePatients)
}

func (m *PostgresRepositoryManager) Caregivers(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db, accounts.TableCaregivers)
}

func (m *PostgresRepositoryManager) Vaccines(db dbx.DBTX) vaccines.Repository {
	return vaccines.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Availabilities(db dbx.DBTX) availabilities.Repository {
	return availabilities.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Appointments(db dbx.DBTX) appointments.Repository {
	return appointments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Postgres())
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
