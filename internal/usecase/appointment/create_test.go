package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	appt "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

func TestCreateAppointment_DerivesEndTimeFromService(t *testing.T) {
	f := newFixture(t)

	ap := f.book(t, "customer-1", f.cut, at(14, 0))

	assert.NotZero(t, ap.ID)
	assert.Equal(t, "customer-1", ap.CustomerID)
	assert.Equal(t, string(appt.StatusPending), ap.Status)
	assert.True(t, ap.StartTime.Equal(at(14, 0)))
	assert.True(t, ap.EndTime.Equal(at(14, 30)))
}

func TestCreateAppointment_ConvertsStartToUTC(t *testing.T) {
	f := newFixture(t)
	berlin := time.FixedZone("CEST", 2*60*60)

	ap := f.book(t, "customer-1", f.cut, time.Date(2030, 6, 2, 16, 0, 0, 0, berlin))

	assert.Equal(t, time.UTC, ap.StartTime.Location())
	assert.True(t, ap.StartTime.Equal(at(14, 0)))
}

func TestCreateAppointment_ClassicCutScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.book(t, "customer-1", f.cut, at(14, 0))
	assert.True(t, first.EndTime.Equal(at(14, 30)))

	_, err := f.create.Execute(ctx, CreateCommand{
		CustomerID: "customer-2",
		BarberID:   f.barber.ID,
		ServiceID:  f.cut.ID,
		StartTime:  at(14, 15),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.True(t, httperr.IsCode(err, "time_conflict"))

	// touching ranges are fine
	f.book(t, "customer-2", f.cut, at(14, 30))
	f.book(t, "customer-3", f.beard, at(13, 45))
}

func TestCreateAppointment_OverlapAppliesAcrossServices(t *testing.T) {
	f := newFixture(t)

	f.book(t, "customer-1", f.cut, at(14, 0))

	_, err := f.create.Execute(context.Background(), CreateCommand{
		CustomerID: "customer-2",
		BarberID:   f.barber.ID,
		ServiceID:  f.beard.ID,
		StartTime:  at(14, 10),
	})
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestCreateAppointment_ReleasedSlotsCanBeRebooked(t *testing.T) {
	for _, status := range []string{string(appt.StatusCancelled), string(appt.StatusCompleted)} {
		t.Run(status, func(t *testing.T) {
			f := newFixture(t)
			ap := f.book(t, "customer-1", f.cut, at(14, 0))
			f.force(t, ap, status)

			again := f.book(t, "customer-2", f.cut, at(14, 0))
			assert.NotEqual(t, ap.ID, again.ID)
		})
	}
}

func TestCreateAppointment_ConfirmedStillBlocks(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "customer-1", f.cut, at(14, 0))
	f.force(t, ap, string(appt.StatusConfirmed))

	_, err := f.create.Execute(context.Background(), CreateCommand{
		CustomerID: "customer-2",
		BarberID:   f.barber.ID,
		ServiceID:  f.cut.ID,
		StartTime:  at(14, 20),
	})
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestCreateAppointment_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := &models.Barber{UserID: "other-barber", ShopName: "Other", Location: "Mitte"}
	require.NoError(t, f.store.CreateBarber(ctx, other))
	foreign := &models.Service{BarberID: other.ID, Name: "Shave", DurationMinutes: 20, Price: models.MustMoney("10"), IsActive: true}
	require.NoError(t, f.store.CreateService(ctx, foreign))
	retired := &models.Service{BarberID: f.barber.ID, Name: "Perm", DurationMinutes: 90, Price: models.MustMoney("80"), IsActive: false}
	require.NoError(t, f.store.CreateService(ctx, retired))

	tests := []struct {
		name  string
		cmd   CreateCommand
		kind  httperr.Kind
		code  string
		field string
	}{
		{
			name: "anonymous",
			cmd:  CreateCommand{BarberID: f.barber.ID, ServiceID: f.cut.ID, StartTime: at(14, 0)},
			kind: httperr.KindAuth,
			code: "unauthenticated",
		},
		{
			name:  "start in the past",
			cmd:   CreateCommand{CustomerID: "c", BarberID: f.barber.ID, ServiceID: f.cut.ID, StartTime: fixedNow.Add(-time.Hour)},
			kind:  httperr.KindValidation,
			code:  "validation_error",
			field: "startTime",
		},
		{
			name:  "start exactly now",
			cmd:   CreateCommand{CustomerID: "c", BarberID: f.barber.ID, ServiceID: f.cut.ID, StartTime: fixedNow},
			kind:  httperr.KindValidation,
			code:  "validation_error",
			field: "startTime",
		},
		{
			name: "unknown barber",
			cmd:  CreateCommand{CustomerID: "c", BarberID: 999, ServiceID: f.cut.ID, StartTime: at(14, 0)},
			kind: httperr.KindNotFound,
			code: "barber_not_found",
		},
		{
			name: "unknown service",
			cmd:  CreateCommand{CustomerID: "c", BarberID: f.barber.ID, ServiceID: 999, StartTime: at(14, 0)},
			kind: httperr.KindNotFound,
			code: "service_not_found",
		},
		{
			name: "service of another barber",
			cmd:  CreateCommand{CustomerID: "c", BarberID: f.barber.ID, ServiceID: foreign.ID, StartTime: at(14, 0)},
			kind: httperr.KindNotFound,
			code: "service_not_found",
		},
		{
			name:  "inactive service",
			cmd:   CreateCommand{CustomerID: "c", BarberID: f.barber.ID, ServiceID: retired.ID, StartTime: at(14, 0)},
			kind:  httperr.KindValidation,
			code:  "validation_error",
			field: "serviceId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(ctx, tt.cmd)
			require.Error(t, err)

			ae := httperr.As(err)
			assert.Equal(t, tt.kind, ae.Kind)
			assert.Equal(t, tt.code, ae.Code)
			assert.Equal(t, tt.field, ae.Field)
		})
	}

	apps, err := f.store.ListAppointments(ctx, appt.ListFilter{BarberID: f.barber.ID})
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestCreateAppointment_ConcurrentBookingsNeverOverlap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 24; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc := f.cut
			if i%3 == 0 {
				svc = f.beard
			}
			_, _ = f.create.Execute(ctx, CreateCommand{
				CustomerID: "customer",
				BarberID:   f.barber.ID,
				ServiceID:  svc.ID,
				StartTime:  at(14, 0).Add(time.Duration(i%12) * 5 * time.Minute),
			})
		}(i)
	}
	wg.Wait()

	apps, err := f.store.ListAppointments(ctx, appt.ListFilter{BarberID: f.barber.ID})
	require.NoError(t, err)
	require.NotEmpty(t, apps)

	for i := range apps {
		for j := i + 1; j < len(apps); j++ {
			a, b := apps[i], apps[j]
			assert.False(t,
				appt.Overlaps(a.StartTime, a.EndTime, b.StartTime, b.EndTime),
				"appointments %d and %d overlap", a.ID, b.ID,
			)
		}
	}
}

func TestCreateAppointment_EmitsAuditEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	dispatcher := audit.NewDispatcher(audit.New(f.store), discardLogger(), 10)
	f.create.audit = dispatcher

	ap := f.book(t, "customer-1", f.cut, at(14, 0))
	_, err := f.create.Execute(ctx, CreateCommand{
		CustomerID: "customer-2",
		BarberID:   f.barber.ID,
		ServiceID:  f.cut.ID,
		StartTime:  at(14, 10),
	})
	require.Error(t, err)

	dispatcher.Close()

	logs, total, err := f.store.ListAuditLogs(ctx, audit.Filter{BarberID: f.barber.ID})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	actions := []string{logs[0].Action, logs[1].Action}
	assert.ElementsMatch(t, []string{audit.ActionAppointmentCreated, audit.ActionAppointmentConflict}, actions)

	for _, l := range logs {
		if l.Action == audit.ActionAppointmentCreated {
			require.NotNil(t, l.EntityID)
			assert.Equal(t, ap.ID, *l.EntityID)
		}
	}
}
