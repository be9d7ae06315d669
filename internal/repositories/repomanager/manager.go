// Package repomanager wires the per-entity repositories to a concrete SQL
// backend and runs the embedded schema migrations for it.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/Zetpete/Vaccine-Scheduler/internal/dbx"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/accounts"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/appointments"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/availabilities"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/vaccines"
)

// RepositoryManager hands out repositories bound to the given handle, which
// may be a *sql.DB or an open transaction.
type RepositoryManager interface {
	Patients(db dbx.DBTX) accounts.Repository
	Caregivers(db dbx.DBTX) accounts.Repository
	Vaccines(db dbx.DBTX) vaccines.Repository
	Availabilities(db dbx.DBTX) availabilities.Repository
	Appointments(db dbx.DBTX) appointments.Repository

	RunMigrations(ctx context.Context, db *sql.DB) error
}
