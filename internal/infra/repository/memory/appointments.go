package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

var errNoTransaction = errors.New("memory: LockBarber called outside a transaction")

func (s *Store) LockBarber(ctx context.Context, barberID uint) error {
	return errNoTransaction
}

func (s *Store) HasOverlap(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overlapsLocked(barberID, start, end), nil
}

func (s *Store) overlapsLocked(barberID uint, start, end time.Time) bool {
	for _, ap := range s.appointments {
		if ap.BarberID != barberID || !appointment.Status(ap.Status).Blocking() {
			continue
		}
		if appointment.Overlaps(ap.StartTime, ap.EndTime, start, end) {
			return true
		}
	}
	return false
}

// CreateAppointment refuses overlapping blocking rows the same way the
// Postgres exclusion constraint does.
func (s *Store) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if appointment.Status(ap.Status).Blocking() && s.overlapsLocked(ap.BarberID, ap.StartTime, ap.EndTime) {
		return domain.ErrOverlap
	}

	now := s.now()
	ap.ID = s.nextID("appointments")
	ap.CreatedAt = now
	ap.UpdatedAt = now

	row := *ap
	row.Barber = nil
	row.Service = nil
	s.appointments[row.ID] = row
	return nil
}

func (s *Store) GetAppointmentForUpdate(ctx context.Context, id uint) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.appointments[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}
	row.Status = ap.Status
	row.UpdatedAt = s.now()
	s.appointments[ap.ID] = row

	ap.UpdatedAt = row.UpdatedAt
	return nil
}

func (s *Store) ListAppointments(
	ctx context.Context,
	filter appointment.ListFilter,
) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, ap := range s.appointments {
		if filter.CustomerID != "" && ap.CustomerID != filter.CustomerID {
			continue
		}
		if filter.BarberID != 0 && ap.BarberID != filter.BarberID {
			continue
		}
		if filter.From != nil && ap.StartTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !ap.StartTime.Before(*filter.To) {
			continue
		}

		if svc, ok := s.services[ap.ServiceID]; ok {
			ap.Service = &svc
		}
		if b, ok := s.barbers[ap.BarberID]; ok {
			ap.Barber = cloneBarber(b)
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.After(out[j].StartTime)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) CompletedServiceCounts(
	ctx context.Context,
	barberID uint,
) ([]appointment.ServiceCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byService := make(map[uint]*appointment.ServiceCount)
	for _, ap := range s.appointments {
		if ap.BarberID != barberID || ap.Status != string(appointment.StatusCompleted) {
			continue
		}
		row, ok := byService[ap.ServiceID]
		if !ok {
			svc := s.services[ap.ServiceID]
			row = &appointment.ServiceCount{ServiceID: ap.ServiceID, Name: svc.Name, Price: svc.Price}
			byService[ap.ServiceID] = row
		}
		row.Count++
	}

	out := make([]appointment.ServiceCount, 0, len(byService))
	for _, row := range byService {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ServiceID < out[j].ServiceID
	})
	return out, nil
}
