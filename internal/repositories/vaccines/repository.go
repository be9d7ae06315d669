// Package vaccines persists the per-vaccine dose inventory.
package vaccines

import (
	"context"

	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
)

type Repository interface {
	// Get returns the inventory row for name, or common.ErrNotFound.
	Get(ctx context.Context, name string) (*models.Vaccine, error)

	// Upsert creates the vaccine with delta doses, or adds delta to an
	// existing count.
	Upsert(ctx context.Context, name string, delta int) error

	// AdjustDoses adds delta to an existing count, refusing any change that
	// would take the count below zero. Returns common.ErrInsufficientDoses
	// when the vaccine is missing or the guard rejects the change.
	AdjustDoses(ctx context.Context, name string, delta int) error

	// ListInStock returns every vaccine with a positive dose count,
	// ascending by name.
	ListInStock(ctx context.Context) ([]models.Vaccine, error)
}
