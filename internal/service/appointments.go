package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
	"github.com/Zetpete/Vaccine-Scheduler/internal/dbx"
	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/repomanager"
)

// Appointments implements the reservation/cancellation workflow.
type Appointments interface {
	// Reserve books the lexicographically first caregiver available on date
	// for one dose of vaccine, consuming the slot and a dose. Returns
	// common.ErrNoCaregiverAvailable when no slot matches, and
	// common.ErrInsufficientDoses when the vaccine is unknown or out of
	// stock.
	Reserve(ctx context.Context, patient, date, vaccine string) (*models.Appointment, error)

	// Cancel deletes the appointment, returns its dose to inventory, and
	// restores the caregiver's slot. Exactly one of patient/caregiver is
	// non-empty; an appointment owned by someone else is reported as
	// common.ErrNotFound, indistinguishable from a missing one.
	Cancel(ctx context.Context, patient, caregiver string, id int) error

	// ListForPatient and ListForCaregiver return the user's appointments
	// ascending by id.
	ListForPatient(ctx context.Context, username string) ([]models.Appointment, error)
	ListForCaregiver(ctx context.Context, username string) ([]models.Appointment, error)
}

type appointmentService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewAppointments(db *sql.DB, repos repomanager.RepositoryManager) Appointments {
	return &appointmentService{db: db, repos: repos}
}

func (s *appointmentService) Reserve(ctx context.Context, patient, date, vaccine string) (*models.Appointment, error) {
	var appointment *models.Appointment

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		caregiver, err := s.repos.Availabilities(tx).FindEarliest(ctx, date)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrNoCaregiverAvailable
			}
			return fmt.Errorf("error searching availability: %w", err)
		}

		v, err := s.repos.Vaccines(tx).Get(ctx, vaccine)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrInsufficientDoses
			}
			return fmt.Errorf("error fetching vaccine: %w", err)
		}
		if v.Doses <= 0 {
			return common.ErrInsufficientDoses
		}

		id, err := s.repos.Appointments(tx).NextID(ctx)
		if err != nil {
			return fmt.Errorf("error assigning appointment id: %w", err)
		}

		appointment = &models.Appointment{
			ID:            id,
			PatientName:   patient,
			CaregiverName: caregiver,
			VaccineName:   vaccine,
			Date:          date,
			Time:          models.AppointmentTime,
		}
		if err := s.repos.Appointments(tx).Create(ctx, appointment); err != nil {
			return fmt.Errorf("error recording appointment: %w", err)
		}

		if err := s.repos.Vaccines(tx).AdjustDoses(ctx, vaccine, -1); err != nil {
			return fmt.Errorf("error consuming dose: %w", err)
		}

		if err := s.repos.Availabilities(tx).Delete(ctx, caregiver, date); err != nil {
			return fmt.Errorf("error consuming availability: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return appointment, nil
}

func (s *appointmentService) Cancel(ctx context.Context, patient, caregiver string, id int) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		appointment, err := s.repos.Appointments(tx).GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrNotFound
			}
			return fmt.Errorf("error fetching appointment: %w", err)
		}

		// Ownership mismatches are masked as not-found so a user cannot
		// probe other users' appointment ids.
		if patient != "" && appointment.PatientName != patient {
			return common.ErrNotFound
		}
		if caregiver != "" && appointment.CaregiverName != caregiver {
			return common.ErrNotFound
		}

		if err := s.repos.Appointments(tx).DeleteByID(ctx, id); err != nil {
			return fmt.Errorf("error deleting appointment: %w", err)
		}

		if err := s.repos.Vaccines(tx).Upsert(ctx, appointment.VaccineName, 1); err != nil {
			return fmt.Errorf("error returning dose: %w", err)
		}

		if err := s.repos.Availabilities(tx).Add(ctx, appointment.CaregiverName, appointment.Date); err != nil {
			return fmt.Errorf("error restoring availability: %w", err)
		}

		return nil
	})
}

func (s *appointmentService) ListForPatient(ctx context.Context, username string) ([]models.Appointment, error) {
	return s.repos.Appointments(s.db).ListByPatient(ctx, username)
}

func (s *appointmentService) ListForCaregiver(ctx context.Context, username string) ([]models.Appointment, error) {
	return s.repos.Appointments(s.db).ListByCaregiver(ctx, username)
}
