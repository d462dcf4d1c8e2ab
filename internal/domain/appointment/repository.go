package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type ListFilter struct {
	CustomerID string
	BarberID   uint
	From       *time.Time
	To         *time.Time
}

// ServiceCount is one row of the completed-appointments aggregate.
type ServiceCount struct {
	ServiceID uint
	Name      string
	Price     models.Money
	Count     int64
}

// Repository is the booking store. Lookups return domain.ErrNotFound when
// the row is missing.
type Repository interface {
	// Transaction runs fn atomically; locks taken through tx are held until it returns.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Barber / Service --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetBarberByUserID(
		ctx context.Context,
		userID string,
	) (*models.Barber, error)

	// LockBarber serializes bookings for one barber until the transaction ends.
	LockBarber(
		ctx context.Context,
		barberID uint,
	) error

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	HasOverlap(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Queries --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	CompletedServiceCounts(
		ctx context.Context,
		barberID uint,
	) ([]ServiceCount, error)
}
