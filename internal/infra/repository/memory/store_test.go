package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

func strPtr(s string) *string { return &s }

func at(h, m int) time.Time {
	return time.Date(2030, 6, 2, h, m, 0, 0, time.UTC)
}

func seedBarber(t *testing.T, s *Store, userID string) *models.Barber {
	t.Helper()
	b := &models.Barber{UserID: userID, ShopName: "Shop " + userID, Location: "Mitte"}
	require.NoError(t, s.CreateBarber(context.Background(), b))
	return b
}

func TestLockBarber_OutsideTransaction(t *testing.T) {
	s := New()
	b := seedBarber(t, s, "u1")
	assert.ErrorIs(t, s.LockBarber(context.Background(), b.ID), errNoTransaction)
}

func TestTransaction_SerializesPerBarber(t *testing.T) {
	s := New()
	b := seedBarber(t, s, "u1")
	other := seedBarber(t, s, "u2")

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- s.Transaction(context.Background(), func(tx appointment.Repository) error {
			if err := tx.LockBarber(context.Background(), b.ID); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := s.Transaction(ctx, func(tx appointment.Repository) error {
		return tx.LockBarber(ctx, b.ID)
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// A different barber is not blocked.
	require.NoError(t, s.Transaction(context.Background(), func(tx appointment.Repository) error {
		return tx.LockBarber(context.Background(), other.ID)
	}))

	close(release)
	require.NoError(t, <-done)

	require.NoError(t, s.Transaction(context.Background(), func(tx appointment.Repository) error {
		if err := tx.LockBarber(context.Background(), b.ID); err != nil {
			return err
		}
		// Re-locking inside the same transaction is a no-op.
		return tx.LockBarber(context.Background(), b.ID)
	}))
}

func TestLockBarber_UnknownBarber(t *testing.T) {
	s := New()
	err := s.Transaction(context.Background(), func(tx appointment.Repository) error {
		return tx.LockBarber(context.Background(), 99)
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateAppointment_RejectsBlockingOverlap(t *testing.T) {
	ctx := context.Background()
	s := New()
	b := seedBarber(t, s, "u1")

	first := &models.Appointment{BarberID: b.ID, ServiceID: 1, CustomerID: "c", StartTime: at(14, 0), EndTime: at(14, 30), Status: "pending"}
	require.NoError(t, s.CreateAppointment(ctx, first))

	clash := &models.Appointment{BarberID: b.ID, ServiceID: 2, CustomerID: "c", StartTime: at(14, 15), EndTime: at(14, 45), Status: "pending"}
	assert.ErrorIs(t, s.CreateAppointment(ctx, clash), domain.ErrOverlap)

	adjacent := &models.Appointment{BarberID: b.ID, ServiceID: 1, CustomerID: "c", StartTime: at(14, 30), EndTime: at(15, 0), Status: "pending"}
	require.NoError(t, s.CreateAppointment(ctx, adjacent))

	first.Status = "cancelled"
	require.NoError(t, s.UpdateAppointmentStatus(ctx, first))

	taken, err := s.HasOverlap(ctx, b.ID, at(14, 0), at(14, 30))
	require.NoError(t, err)
	assert.False(t, taken)

	rebook := &models.Appointment{BarberID: b.ID, ServiceID: 1, CustomerID: "d", StartTime: at(14, 0), EndTime: at(14, 30), Status: "pending"}
	require.NoError(t, s.CreateAppointment(ctx, rebook))
}

func TestListAppointments_OrderAndEmbeds(t *testing.T) {
	ctx := context.Background()
	s := New()
	b := seedBarber(t, s, "u1")
	svc := &models.Service{BarberID: b.ID, Name: "Cut", DurationMinutes: 30, Price: models.MustMoney("20"), IsActive: true}
	require.NoError(t, s.CreateService(ctx, svc))

	for _, h := range []int{9, 15, 11} {
		require.NoError(t, s.CreateAppointment(ctx, &models.Appointment{
			BarberID: b.ID, ServiceID: svc.ID, CustomerID: "c",
			StartTime: at(h, 0), EndTime: at(h, 30), Status: "pending",
		}))
	}

	from := at(10, 0)
	rows, err := s.ListAppointments(ctx, appointment.ListFilter{CustomerID: "c", From: &from})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 15, rows[0].StartTime.Hour())
	assert.Equal(t, 11, rows[1].StartTime.Hour())
	require.NotNil(t, rows[0].Service)
	require.NotNil(t, rows[0].Barber)
	assert.Equal(t, "Cut", rows[0].Service.Name)
}

func TestCatalog_Barbers(t *testing.T) {
	ctx := context.Background()
	s := New()

	b := &models.Barber{UserID: "u1", ShopName: "Fade Room", Location: "Mitte", City: strPtr("Berlin"), Bio: strPtr("Skin fades")}
	require.NoError(t, s.CreateBarber(ctx, b))
	assert.Equal(t, "Germany", b.Country)

	assert.ErrorIs(t, s.CreateBarber(ctx, &models.Barber{UserID: "u1", ShopName: "Again", Location: "X"}), domain.ErrDuplicate)

	require.NoError(t, s.CreateBarber(ctx, &models.Barber{UserID: "u2", ShopName: "Cuts", Location: "Altona", City: strPtr("Hamburg")}))

	got, err := s.ListBarbers(ctx, catalog.BarberFilter{City: "berlin"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Fade Room", got[0].ShopName)

	got, err = s.ListBarbers(ctx, catalog.BarberFilter{Search: "FADES"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	mine, err := s.GetBarberByUserID(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Cuts", mine.ShopName)

	_, err = s.GetBarberByUserID(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_BarberHoursAreCopied(t *testing.T) {
	ctx := context.Background()
	s := New()
	b := &models.Barber{UserID: "u1", ShopName: "A", Location: "B"}
	b.SetHours(models.WorkingHours{"monday": {Start: "09:00", End: "17:00", IsOpen: true}})
	require.NoError(t, s.CreateBarber(ctx, b))

	got, err := s.GetBarber(ctx, b.ID)
	require.NoError(t, err)
	hours := got.Hours()
	hours["monday"] = models.DayHours{}

	again, err := s.GetBarber(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, again.Hours()["monday"].IsOpen)
}

func TestCatalog_ServicesInactiveFilter(t *testing.T) {
	ctx := context.Background()
	s := New()
	b := seedBarber(t, s, "u1")

	require.NoError(t, s.CreateService(ctx, &models.Service{BarberID: b.ID, Name: "On", DurationMinutes: 30, Price: models.MustMoney("10"), IsActive: true}))
	require.NoError(t, s.CreateService(ctx, &models.Service{BarberID: b.ID, Name: "Off", DurationMinutes: 30, Price: models.MustMoney("10"), IsActive: false}))

	active, err := s.ListServices(ctx, b.ID, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := s.ListServices(ctx, b.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubscriptions_UpsertByName(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.UpsertSubscription(ctx, &models.Subscription{Name: "Gold Pass", Price: models.MustMoney("29.99")}))
	require.NoError(t, s.UpsertSubscription(ctx, &models.Subscription{Name: "Basic", Price: models.MustMoney("0")}))
	require.NoError(t, s.UpsertSubscription(ctx, &models.Subscription{Name: "Gold Pass", Price: models.MustMoney("24.99")}))

	subs, err := s.ListSubscriptions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "Basic", subs[0].Name)
	assert.Equal(t, "24.99", subs[1].Price.String())
}

func TestAuditLogs_FilterAndPage(t *testing.T) {
	ctx := context.Background()
	s := New()
	clock := at(8, 0)
	s.now = func() time.Time { return clock }

	for i := range 5 {
		clock = clock.Add(time.Minute)
		action := audit.ActionAppointmentCreated
		if i%2 == 1 {
			action = audit.ActionStatusChanged
		}
		require.NoError(t, s.CreateAuditLog(ctx, &models.AuditLog{BarberID: 1, Action: action}))
	}
	require.NoError(t, s.CreateAuditLog(ctx, &models.AuditLog{BarberID: 2, Action: audit.ActionAppointmentCreated}))

	page, total, err := s.ListAuditLogs(ctx, audit.Filter{BarberID: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, uint(5), page[0].ID)
	assert.Equal(t, uint(4), page[1].ID)

	created, total, err := s.ListAuditLogs(ctx, audit.Filter{BarberID: 1, Action: audit.ActionAppointmentCreated})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, created, 3)

	empty, total, err := s.ListAuditLogs(ctx, audit.Filter{BarberID: 1, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, empty)
}
