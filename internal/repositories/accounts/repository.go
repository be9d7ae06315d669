// Package accounts persists credential records. The same implementation
// serves both account kinds; the backing table (patients or caregivers) is
// chosen at construction time.
package accounts

import (
	"context"

	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
)

// Valid table names for the repository constructors.
const (
	TablePatients   = "patients"
	TableCaregivers = "caregivers"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	Exists(ctx context.Context, username string) (bool, error)
}
