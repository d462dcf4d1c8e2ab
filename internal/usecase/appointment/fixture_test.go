package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

var fixedNow = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2030, 6, 2, hour, min, 0, 0, time.UTC)
}

type fixture struct {
	store  *memory.Store
	barber *models.Barber
	cut    *models.Service
	beard  *models.Service
	create *CreateAppointment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	barber := &models.Barber{UserID: "barber-user", ShopName: "Fade Factory", Location: "Kreuzberg"}
	require.NoError(t, store.CreateBarber(ctx, barber))

	cut := &models.Service{
		BarberID:        barber.ID,
		Name:            "Classic Cut",
		DurationMinutes: 30,
		Price:           models.MustMoney("25.00"),
		IsActive:        true,
	}
	require.NoError(t, store.CreateService(ctx, cut))

	beard := &models.Service{
		BarberID:        barber.ID,
		Name:            "Beard Trim",
		DurationMinutes: 15,
		Price:           models.MustMoney("15.00"),
		IsActive:        true,
	}
	require.NoError(t, store.CreateService(ctx, beard))

	create := NewCreateAppointment(store, nil)
	create.now = func() time.Time { return fixedNow }

	return &fixture{store: store, barber: barber, cut: cut, beard: beard, create: create}
}

func (f *fixture) book(t *testing.T, customer string, svc *models.Service, start time.Time) *models.Appointment {
	t.Helper()
	ap, err := f.create.Execute(context.Background(), CreateCommand{
		CustomerID: customer,
		BarberID:   f.barber.ID,
		ServiceID:  svc.ID,
		StartTime:  start,
	})
	require.NoError(t, err)
	return ap
}

// force moves an appointment to status without going through the lifecycle.
func (f *fixture) force(t *testing.T, ap *models.Appointment, status string) {
	t.Helper()
	ap.Status = status
	require.NoError(t, f.store.UpdateAppointmentStatus(context.Background(), ap))
}
