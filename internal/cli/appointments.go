package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
)

func (a *App) reserve(ctx context.Context, tokens []string) {
	if a.currentPatient == "" {
		if a.currentCaregiver == "" {
			a.println("Please login first")
		} else {
			a.println("Please login as a patient")
		}
		return
	}
	if len(tokens) != 3 || !validDate(tokens[1]) {
		a.println("Please try again")
		return
	}
	date, vaccine := tokens[1], tokens[2]

	appointment, err := a.appointments.Reserve(ctx, a.currentPatient, date, vaccine)
	switch {
	case err == nil:
		a.printf("Appointment ID %d, Caregiver username %s\n", appointment.ID, appointment.CaregiverName)
	case errors.Is(err, common.ErrNoCaregiverAvailable):
		a.println("No caregiver is available")
	case errors.Is(err, common.ErrInsufficientDoses):
		a.println("Not enough available doses")
	default:
		a.log.Debug(ctx, "reserve failed", "date", date, "vaccine", vaccine, "error", err)
		a.println("Please try again")
	}
}

func (a *App) cancel(ctx context.Context, tokens []string) {
	if !a.loggedIn() {
		a.println("Please login first")
		return
	}
	if len(tokens) != 2 {
		a.println("Please try again")
		return
	}
	id, err := strconv.Atoi(tokens[1])
	if err != nil {
		a.println("Please try again")
		return
	}

	err = a.appointments.Cancel(ctx, a.currentPatient, a.currentCaregiver, id)
	switch {
	case err == nil:
		a.printf("Appointment ID %d has been successfully canceled\n", id)
	case errors.Is(err, common.ErrNotFound):
		a.printf("Appointment ID %d does not exist\n", id)
	default:
		a.log.Debug(ctx, "cancel failed", "id", id, "error", err)
		a.println("Please try again")
	}
}

func (a *App) showAppointments(ctx context.Context, tokens []string) {
	if len(tokens) != 1 {
		a.println("Please try again")
		return
	}
	if !a.loggedIn() {
		a.println("Please login first")
		return
	}

	var appointments []models.Appointment
	var err error
	caregiverView := a.currentCaregiver != ""
	if caregiverView {
		appointments, err = a.appointments.ListForCaregiver(ctx, a.currentCaregiver)
	} else {
		appointments, err = a.appointments.ListForPatient(ctx, a.currentPatient)
	}
	if err != nil {
		a.log.Debug(ctx, "show appointments failed", "error", err)
		a.println("Please try again")
		return
	}

	if len(appointments) == 0 {
		a.println("No appointments scheduled")
		return
	}
	for _, appt := range appointments {
		counterpart := appt.CaregiverName
		if caregiverView {
			counterpart = appt.PatientName
		}
		a.printf("%d %s %s %s\n", appt.ID, appt.VaccineName, appt.Date, counterpart)
	}
}
