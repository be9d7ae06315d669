// Package availabilities persists caregiver availability slots.
package availabilities

import "context"

type Repository interface {
	// Add inserts a slot. Duplicates for the same caregiver and date are
	// allowed; cancellation restores consumed slots through the same call.
	Add(ctx context.Context, username, date string) error

	// FindEarliest returns the lexicographically smallest caregiver username
	// with a slot on date, or common.ErrNotFound.
	FindEarliest(ctx context.Context, date string) (string, error)

	// ListByDate returns every caregiver with a slot on date, ascending by
	// username, duplicates included.
	ListByDate(ctx context.Context, date string) ([]string, error)

	// Delete removes the slot(s) matching the caregiver and date.
	Delete(ctx context.Context, username, date string) error
}
