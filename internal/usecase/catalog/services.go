package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/cache"
	domaincat "github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// Services manages the services a barber offers.
type Services struct {
	repo  domaincat.Repository
	rt    *readThrough
	audit *audit.Dispatcher
}

func NewServices(
	repo domaincat.Repository,
	c cache.Cache,
	ttl time.Duration,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *Services {
	return &Services{
		repo:  repo,
		rt:    newReadThrough(c, ttl, log),
		audit: audit,
	}
}

// List returns the barber's services ordered by id. Inactive services are
// only included for the owning barber.
func (uc *Services) List(ctx context.Context, barberID uint, userID string) ([]models.Service, error) {
	if userID != "" {
		if b, err := uc.repo.GetBarber(ctx, barberID); err == nil && b.UserID == userID {
			all, err := uc.repo.ListServices(ctx, barberID, true)
			if err != nil {
				return nil, httperr.Internal(err)
			}
			return nonNil(all), nil
		}
	}

	services, err := load(ctx, uc.rt, keyServices(barberID), func() ([]models.Service, error) {
		return uc.repo.ListServices(ctx, barberID, false)
	})
	if err != nil {
		return nil, httperr.Internal(err)
	}
	return nonNil(services), nil
}

func (uc *Services) Create(
	ctx context.Context,
	barberID uint,
	userID string,
	in dto.InsertService,
) (*models.Service, error) {

	if _, err := uc.ownedBarber(ctx, barberID, userID); err != nil {
		return nil, err
	}

	svc := &models.Service{
		BarberID:        barberID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes.Int(),
		Price:           dto.Money(in.Price),
		IsActive:        true,
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := uc.repo.CreateService(ctx, svc); err != nil {
		return nil, httperr.Internal(err)
	}

	uc.rt.invalidate(ctx, keyServices(barberID))

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		UserID:   &userID,
		Action:   audit.ActionServiceCreated,
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: map[string]any{
			"name":            svc.Name,
			"durationMinutes": svc.DurationMinutes,
			"price":           svc.Price.String(),
		},
	})

	return svc, nil
}

func (uc *Services) Update(
	ctx context.Context,
	serviceID uint,
	userID string,
	in dto.UpdateService,
) (*models.Service, error) {

	if userID == "" {
		return nil, errUnauthenticated
	}

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, notFoundOr(err, "service_not_found", "Service not found.")
	}
	if _, err := uc.ownedBarber(ctx, svc.BarberID, userID); err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.Validation("name", "name is required")
		}
		svc.Name = name
	}
	if in.Description.Set {
		svc.Description = in.Description.Ptr()
	}
	if in.DurationMinutes != nil {
		svc.DurationMinutes = in.DurationMinutes.Int()
	}
	if in.Price != nil {
		svc.Price = dto.Money(*in.Price)
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := uc.repo.UpdateService(ctx, svc); err != nil {
		return nil, httperr.Internal(err)
	}

	uc.rt.invalidate(ctx, keyServices(svc.BarberID))
	return svc, nil
}

func (uc *Services) ownedBarber(ctx context.Context, barberID uint, userID string) (*models.Barber, error) {
	if userID == "" {
		return nil, errUnauthenticated
	}
	b, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, notFoundOr(err, "barber_not_found", "Barber not found.")
	}
	if b.UserID != userID {
		return nil, errNotOwner
	}
	return b, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
