package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
)

func TestReserve_NoCaregiverAvailable(t *testing.T) {
	db, m := newStore(t)
	svc := NewAppointments(db, m)
	ctx := context.Background()

	require.NoError(t, NewSchedule(db, m).AddDoses(ctx, "pfizer", 5))

	_, err := svc.Reserve(ctx, "pat1", "2024-01-01", "pfizer")
	require.ErrorIs(t, err, common.ErrNoCaregiverAvailable)

	// nothing was mutated
	v, err := m.Vaccines(db).Get(ctx, "pfizer")
	require.NoError(t, err)
	require.Equal(t, 5, v.Doses)
	id, err := m.Appointments(db).NextID(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, id)
}

func TestReserve_InsufficientDoses(t *testing.T) {
	db, m := newStore(t)
	svc := NewAppointments(db, m)
	sched := NewSchedule(db, m)
	ctx := context.Background()

	require.NoError(t, sched.UploadAvailability(ctx, "cg1", "2024-01-01"))

	// unknown vaccine
	_, err := svc.Reserve(ctx, "pat1", "2024-01-01", "pfizer")
	require.ErrorIs(t, err, common.ErrInsufficientDoses)

	// known vaccine with zero stock
	require.NoError(t, sched.AddDoses(ctx, "pfizer", 1))
	require.NoError(t, m.Vaccines(db).AdjustDoses(ctx, "pfizer", -1))
	_, err = svc.Reserve(ctx, "pat1", "2024-01-01", "pfizer")
	require.ErrorIs(t, err, common.ErrInsufficientDoses)

	// the slot was not consumed by the failed attempts
	slots, err := m.Availabilities(db).ListByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Equal(t, []string{"cg1"}, slots)
}

func TestReserveAndCancel_RoundTrip(t *testing.T) {
	db, m := newStore(t)
	svc := NewAppointments(db, m)
	sched := NewSchedule(db, m)
	ctx := context.Background()

	require.NoError(t, sched.UploadAvailability(ctx, "cg1", "2024-01-01"))
	require.NoError(t, sched.AddDoses(ctx, "pfizer", 5))

	appt, err := svc.Reserve(ctx, "pat1", "2024-01-01", "pfizer")
	require.NoError(t, err)
	require.Equal(t, 1, appt.ID)
	require.Equal(t, "cg1", appt.CaregiverName)
	require.Equal(t, "09:00", appt.Time)

	// dose consumed, slot consumed
	v, err := m.Vaccines(db).Get(ctx, "pfizer")
	require.NoError(t, err)
	require.Equal(t, 4, v.Doses)
	slots, err := m.Availabilities(db).ListByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Empty(t, slots)

	// cancellation is the exact inverse
	require.NoError(t, svc.Cancel(ctx, "pat1", "", 1))

	v, err = m.Vaccines(db).Get(ctx, "pfizer")
	require.NoError(t, err)
	require.Equal(t, 5, v.Doses)
	slots, err = m.Availabilities(db).ListByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Equal(t, []string{"cg1"}, slots)
	_, err = m.Appointments(db).GetByID(ctx, 1)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestReserve_PicksEarliestCaregiverAndIncrementsID(t *testing.T) {
	db, m := newStore(t)
	svc := NewAppointments(db, m)
	sched := NewSchedule(db, m)
	ctx := context.Background()

	require.NoError(t, sched.UploadAvailability(ctx, "cg2", "2024-01-01"))
	require.NoError(t, sched.UploadAvailability(ctx, "cg1", "2024-01-01"))
	require.NoError(t, sched.AddDoses(ctx, "pfizer", 5))

	first, err := svc.Reserve(ctx, "pat1", "2024-01-01", "pfizer")
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)
	require.Equal(t, "cg1", first.CaregiverName)

	second, err := svc.Reserve(ctx, "pat1", "2024-01-01", "pfizer")
	require.NoError(t, err)
	require.Equal(t, 2, second.ID)
	require.Equal(t, "cg2", second.CaregiverName)
}

func TestCancel_OwnershipMaskedAsNotFound(t *testing.T) {
	db, m := newStore(t)
	svc := NewAppointments(db, m)
	sched := NewSchedule(db, m)
	ctx := context.Background()

	require.NoError(t, sched.UploadAvailability(ctx, "cg1", "2024-01-01"))
	require.NoError(t, sched.AddDoses(ctx, "pfizer", 1))

	_, err := svc.Reserve(ctx, "pat1", "2024-01-01", "pfizer")
	require.NoError(t, err)

	// another patient, the wrong caregiver, and a bogus id all look the same
	require.ErrorIs(t, svc.Cancel(ctx, "pat2", "", 1), common.ErrNotFound)
	require.ErrorIs(t, svc.Cancel(ctx, "", "cg2", 1), common.ErrNotFound)
	require.ErrorIs(t, svc.Cancel(ctx, "pat1", "", 42), common.ErrNotFound)

	// the appointment's own caregiver may cancel it
	require.NoError(t, svc.Cancel(ctx, "", "cg1", 1))
}

func TestListForPatientAndCaregiver(t *testing.T) {
	db, m := newStore(t)
	svc := NewAppointments(db, m)
	sched := NewSchedule(db, m)
	ctx := context.Background()

	require.NoError(t, sched.UploadAvailability(ctx, "cg1", "2024-01-01"))
	require.NoError(t, sched.UploadAvailability(ctx, "cg1", "2024-01-02"))
	require.NoError(t, sched.AddDoses(ctx, "pfizer", 5))

	_, err := svc.Reserve(ctx, "pat1", "2024-01-01", "pfizer")
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, "pat2", "2024-01-02", "pfizer")
	require.NoError(t, err)

	mine, err := svc.ListForPatient(ctx, "pat1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, 1, mine[0].ID)

	all, err := svc.ListForCaregiver(ctx, "cg1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, 1, all[0].ID)
	require.Equal(t, 2, all[1].ID)
}
