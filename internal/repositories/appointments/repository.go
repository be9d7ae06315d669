// Package appointments persists booked appointments.
package appointments

import (
	"context"

	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
)

type Repository interface {
	// NextID returns max(appointment_id)+1, or 1 when the table is empty.
	NextID(ctx context.Context) (int, error)

	Create(ctx context.Context, appointment *models.Appointment) error

	// GetByID returns the appointment or common.ErrNotFound.
	GetByID(ctx context.Context, id int) (*models.Appointment, error)

	DeleteByID(ctx context.Context, id int) error

	// ListByPatient and ListByCaregiver return the user's appointments
	// ascending by id.
	ListByPatient(ctx context.Context, username string) ([]models.Appointment, error)
	ListByCaregiver(ctx context.Context, username string) ([]models.Appointment, error)
}
