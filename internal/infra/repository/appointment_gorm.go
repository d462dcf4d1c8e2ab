package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Barber / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, translate(err, "get barber")
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetBarberByUserID(
	ctx context.Context,
	userID string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&barber).Error; err != nil {
		return nil, translate(err, "get barber by user")
	}
	return &barber, nil
}

// LockBarber takes a row lock on the barber. Every booking for the barber
// goes through it, so overlap check and insert cannot interleave.
func (r *AppointmentGormRepository) LockBarber(
	ctx context.Context,
	barberID uint,
) error {

	var barber models.Barber
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&barber, barberID).Error

	return translate(err, "lock barber")
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, translate(err, "get service")
	}
	return &svc, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) HasOverlap(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			barberID,
			domain.BlockingStatuses(),
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return false, translate(err, "check overlap")
	}

	return count > 0, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error

	return translate(err, "create appointment")
}

func (r *AppointmentGormRepository) GetAppointmentForUpdate(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ap, id).Error; err != nil {
		return nil, translate(err, "get appointment")
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {
	ap.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).
		Model(ap).
		Select("status", "updated_at").
		Updates(map[string]any{
			"status":     ap.Status,
			"updated_at": ap.UpdatedAt,
		}).Error

	return translate(err, "update appointment status")
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber")

	if filter.CustomerID != "" {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.BarberID != 0 {
		q = q.Where("barber_id = ?", filter.BarberID)
	}
	if filter.From != nil {
		q = q.Where("start_time >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("start_time < ?", *filter.To)
	}

	var apps []models.Appointment
	if err := q.
		Order("start_time DESC").
		Order("id DESC").
		Find(&apps).Error; err != nil {
		return nil, translate(err, "list appointments")
	}

	return apps, nil
}

func (r *AppointmentGormRepository) CompletedServiceCounts(
	ctx context.Context,
	barberID uint,
) ([]domain.ServiceCount, error) {

	var rows []domain.ServiceCount
	err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select("s.id AS service_id, s.name AS name, s.price AS price, COUNT(*) AS count").
		Joins("JOIN services s ON s.id = a.service_id").
		Where("a.barber_id = ? AND a.status = ?", barberID, string(domain.StatusCompleted)).
		Group("s.id, s.name, s.price").
		Order("count DESC, s.id ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, translate(err, "completed service counts")
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
