package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type BarberFilter struct {
	City   string
	Search string
}

// Repository stores profiles, services, plans and portfolio photos.
// Lookups return domain.ErrNotFound; CreateBarber returns domain.ErrDuplicate
// when the user already owns a profile.
type Repository interface {
	// -------- Barber --------
	ListBarbers(ctx context.Context, filter BarberFilter) ([]models.Barber, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	GetBarberByUserID(ctx context.Context, userID string) (*models.Barber, error)
	CreateBarber(ctx context.Context, b *models.Barber) error
	UpdateBarber(ctx context.Context, b *models.Barber) error

	// -------- Service --------
	ListServices(ctx context.Context, barberID uint, includeInactive bool) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error

	// -------- Subscription --------
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	UpsertSubscription(ctx context.Context, s *models.Subscription) error

	// -------- Portfolio --------
	CreatePortfolioPhoto(ctx context.Context, p *models.PortfolioPhoto) error
	ListPortfolioPhotos(ctx context.Context, barberID uint) ([]models.PortfolioPhoto, error)
}
