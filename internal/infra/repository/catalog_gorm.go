package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *CatalogGormRepository) ListBarbers(
	ctx context.Context,
	filter catalog.BarberFilter,
) ([]models.Barber, error) {

	q := r.db.WithContext(ctx).Model(&models.Barber{})

	if city := strings.TrimSpace(filter.City); city != "" {
		q = q.Where("LOWER(city) = ?", strings.ToLower(city))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"(LOWER(shop_name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(COALESCE(bio, '')) LIKE ?)",
			like, like, like,
		)
	}

	var barbers []models.Barber
	if err := q.Order("id ASC").Find(&barbers).Error; err != nil {
		return nil, translate(err, "list barbers")
	}
	return barbers, nil
}

func (r *CatalogGormRepository) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err, "get barber")
	}
	return &b, nil
}

func (r *CatalogGormRepository) GetBarberByUserID(ctx context.Context, userID string) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&b).Error; err != nil {
		return nil, translate(err, "get barber by user")
	}
	return &b, nil
}

func (r *CatalogGormRepository) CreateBarber(ctx context.Context, b *models.Barber) error {
	return translate(r.db.WithContext(ctx).Create(b).Error, "create barber")
}

func (r *CatalogGormRepository) UpdateBarber(ctx context.Context, b *models.Barber) error {
	return translate(r.db.WithContext(ctx).Save(b).Error, "update barber")
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	barberID uint,
	includeInactive bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Where("barber_id = ?", barberID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, translate(err, "list services")
	}
	return services, nil
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err, "get service")
	}
	return &s, nil
}

// CreateService writes IsActive explicitly; a plain Create would let the
// column default turn an inactive service active.
func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(s).Error
	if err != nil {
		return translate(err, "create service")
	}
	if !s.IsActive {
		err = r.db.WithContext(ctx).
			Model(s).
			Update("is_active", false).Error
	}
	return translate(err, "create service")
}

func (r *CatalogGormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(s).Error
	return translate(err, "update service")
}

// --------------------------------------------------
// Subscription
// --------------------------------------------------

func (r *CatalogGormRepository) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := r.db.WithContext(ctx).
		Order("price ASC").
		Order("id ASC").
		Find(&subs).Error; err != nil {
		return nil, translate(err, "list subscriptions")
	}
	return subs, nil
}

func (r *CatalogGormRepository) UpsertSubscription(ctx context.Context, s *models.Subscription) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "price", "max_barbers"}),
		}).
		Create(s).Error
	return translate(err, "upsert subscription")
}

// --------------------------------------------------
// Portfolio
// --------------------------------------------------

func (r *CatalogGormRepository) CreatePortfolioPhoto(ctx context.Context, p *models.PortfolioPhoto) error {
	return translate(r.db.WithContext(ctx).Create(p).Error, "create portfolio photo")
}

func (r *CatalogGormRepository) ListPortfolioPhotos(ctx context.Context, barberID uint) ([]models.PortfolioPhoto, error) {
	var photos []models.PortfolioPhoto
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("id ASC").
		Find(&photos).Error; err != nil {
		return nil, translate(err, "list portfolio photos")
	}
	return photos, nil
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)
