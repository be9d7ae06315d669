//go:build integration

package repomanager_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/repomanager"
	"github.com/Zetpete/Vaccine-Scheduler/internal/service"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "scheduler_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/scheduler_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

// TestPostgres_BookingLifecycle exercises migrations and every repository
// against a real postgres through the service layer: register, stock up,
// reserve, then cancel and verify the inventory is back where it started.
func TestPostgres_BookingLifecycle(t *testing.T) {
	ctx := context.Background()
	db, repos, err := repomanager.Open(ctx, repomanager.DriverPostgres, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	accounts := service.NewAccounts(db, repos)
	schedule := service.NewSchedule(db, repos)
	appointments := service.NewAppointments(db, repos)

	require.NoError(t, accounts.Register(ctx, models.RolePatient, "pat1", "Abcdef1?"))
	require.NoError(t, accounts.Register(ctx, models.RoleCaregiver, "cg1", "Abcdef1?"))
	require.ErrorIs(t, accounts.Register(ctx, models.RolePatient, "pat1", "Abcdef1?"), common.ErrUsernameTaken)

	require.NoError(t, accounts.Authenticate(ctx, models.RolePatient, "pat1", "Abcdef1?"))
	require.ErrorIs(t, accounts.Authenticate(ctx, models.RolePatient, "pat1", "wrongpass"), common.ErrInvalidCredentials)

	require.NoError(t, schedule.UploadAvailability(ctx, "cg1", "2024-01-01"))
	require.NoError(t, schedule.AddDoses(ctx, "pfizer", 5))
	require.NoError(t, schedule.AddDoses(ctx, "pfizer", 2))

	caregivers, stock, err := schedule.Search(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Equal(t, []string{"cg1"}, caregivers)
	require.Equal(t, []models.Vaccine{{Name: "pfizer", Doses: 7}}, stock)

	appt, err := appointments.Reserve(ctx, "pat1", "2024-01-01", "pfizer")
	require.NoError(t, err)
	require.Equal(t, 1, appt.ID)
	require.Equal(t, "cg1", appt.CaregiverName)
	require.Equal(t, models.AppointmentTime, appt.Time)

	caregivers, stock, err = schedule.Search(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Empty(t, caregivers)
	require.Equal(t, []models.Vaccine{{Name: "pfizer", Doses: 6}}, stock)

	_, err = appointments.Reserve(ctx, "pat1", "2024-01-01", "pfizer")
	require.ErrorIs(t, err, common.ErrNoCaregiverAvailable)

	booked, err := appointments.ListForPatient(ctx, "pat1")
	require.NoError(t, err)
	require.Len(t, booked, 1)

	require.ErrorIs(t, appointments.Cancel(ctx, "pat2", "", appt.ID), common.ErrNotFound)
	require.NoError(t, appointments.Cancel(ctx, "pat1", "", appt.ID))

	caregivers, stock, err = schedule.Search(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Equal(t, []string{"cg1"}, caregivers)
	require.Equal(t, []models.Vaccine{{Name: "pfizer", Doses: 7}}, stock)

	booked, err = appointments.ListForPatient(ctx, "pat1")
	require.NoError(t, err)
	require.Empty(t, booked)
}
