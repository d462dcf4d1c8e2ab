// Package memory is an in-process implementation of the repositories. It
// backs STORE_DRIVER=memory and the test suites.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type Store struct {
	mu sync.RWMutex

	seq           map[string]uint
	barbers       map[uint]models.Barber
	services      map[uint]models.Service
	appointments  map[uint]models.Appointment
	subscriptions map[uint]models.Subscription
	photos        map[uint]models.PortfolioPhoto
	auditLogs     []models.AuditLog

	locks *barberLocks
	now   func() time.Time
}

func New() *Store {
	return &Store{
		seq:           make(map[string]uint),
		barbers:       make(map[uint]models.Barber),
		services:      make(map[uint]models.Service),
		appointments:  make(map[uint]models.Appointment),
		subscriptions: make(map[uint]models.Subscription),
		photos:        make(map[uint]models.PortfolioPhoto),
		locks:         &barberLocks{m: make(map[uint]chan struct{})},
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// nextID must be called with mu held for writing.
func (s *Store) nextID(table string) uint {
	s.seq[table]++
	return s.seq[table]
}

func cloneBarber(b models.Barber) *models.Barber {
	if hours := b.Hours(); hours != nil {
		b.SetHours(maps.Clone(hours))
	}
	return &b
}

// ===============================
// Per-barber locks
// ===============================

type barberLocks struct {
	mu sync.Mutex
	m  map[uint]chan struct{}
}

func (l *barberLocks) acquire(ctx context.Context, id uint) error {
	l.mu.Lock()
	ch, ok := l.m[id]
	if !ok {
		ch = make(chan struct{}, 1)
		l.m[id] = ch
	}
	l.mu.Unlock()

	select {
	case ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *barberLocks) release(id uint) {
	l.mu.Lock()
	ch := l.m[id]
	l.mu.Unlock()
	<-ch
}

// tx is the view handed to Transaction callbacks. Barber locks it takes are
// released when the callback returns. Writes are not rolled back; callers
// write last.
type tx struct {
	*Store
	held map[uint]struct{}
}

func (s *Store) Transaction(
	ctx context.Context,
	fn func(tx appointment.Repository) error,
) error {
	t := &tx{Store: s, held: make(map[uint]struct{})}
	defer t.releaseAll()
	return fn(t)
}

func (t *tx) Transaction(
	ctx context.Context,
	fn func(tx appointment.Repository) error,
) error {
	return fn(t)
}

func (t *tx) LockBarber(ctx context.Context, barberID uint) error {
	if _, err := t.GetBarber(ctx, barberID); err != nil {
		return err
	}
	if _, ok := t.held[barberID]; ok {
		return nil
	}
	if err := t.locks.acquire(ctx, barberID); err != nil {
		return err
	}
	t.held[barberID] = struct{}{}
	return nil
}

// GetAppointmentForUpdate locks the appointment's barber, which serializes
// it against bookings and other status changes for that barber.
func (t *tx) GetAppointmentForUpdate(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, err := t.Store.GetAppointmentForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.LockBarber(ctx, ap.BarberID); err != nil {
		return nil, err
	}
	return t.Store.GetAppointmentForUpdate(ctx, id)
}

func (t *tx) releaseAll() {
	for id := range t.held {
		t.locks.release(id)
	}
	clear(t.held)
}

var (
	_ appointment.Repository = (*Store)(nil)
	_ appointment.Repository = (*tx)(nil)
	_ catalog.Repository     = (*Store)(nil)
	_ audit.Store            = (*Store)(nil)
)
