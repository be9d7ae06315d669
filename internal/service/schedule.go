package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/repomanager"
)

// Schedule exposes caregiver availability and vaccine inventory operations.
type Schedule interface {
	// Search returns the caregivers available on date (ascending by
	// username, duplicates included) and every vaccine with positive stock,
	// ascending by name.
	Search(ctx context.Context, date string) ([]string, []models.Vaccine, error)

	// UploadAvailability records an open slot for the caregiver on date.
	UploadAvailability(ctx context.Context, caregiver, date string) error

	// AddDoses creates the vaccine with count doses or adds count to the
	// existing inventory.
	AddDoses(ctx context.Context, name string, count int) error
}

type scheduleService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewSchedule(db *sql.DB, repos repomanager.RepositoryManager) Schedule {
	return &scheduleService{db: db, repos: repos}
}

func (s *scheduleService) Search(ctx context.Context, date string) ([]string, []models.Vaccine, error) {
	caregivers, err := s.repos.Availabilities(s.db).ListByDate(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing availabilities: %w", err)
	}

	stock, err := s.repos.Vaccines(s.db).ListInStock(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing vaccines: %w", err)
	}

	return caregivers, stock, nil
}

func (s *scheduleService) UploadAvailability(ctx context.Context, caregiver, date string) error {
	if err := s.repos.Availabilities(s.db).Add(ctx, caregiver, date); err != nil {
		return fmt.Errorf("error uploading availability: %w", err)
	}
	return nil
}

func (s *scheduleService) AddDoses(ctx context.Context, name string, count int) error {
	if err := s.repos.Vaccines(s.db).Upsert(ctx, name, count); err != nil {
		return fmt.Errorf("error adding doses: %w", err)
	}
	return nil
}
