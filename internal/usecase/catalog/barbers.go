package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/cache"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
	domaincat "github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

const defaultCountry = "Germany"

// Barbers manages barber profiles.
type Barbers struct {
	repo  domaincat.Repository
	rt    *readThrough
	audit *audit.Dispatcher
}

func NewBarbers(
	repo domaincat.Repository,
	c cache.Cache,
	ttl time.Duration,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *Barbers {
	return &Barbers{
		repo:  repo,
		rt:    newReadThrough(c, ttl, log),
		audit: audit,
	}
}

// ======================================================
// Queries
// ======================================================

func (uc *Barbers) List(ctx context.Context, filter domaincat.BarberFilter) ([]models.Barber, error) {
	filter.City = strings.TrimSpace(filter.City)
	filter.Search = strings.TrimSpace(filter.Search)

	fetch := func() ([]models.Barber, error) {
		return uc.repo.ListBarbers(ctx, filter)
	}

	var (
		barbers []models.Barber
		err     error
	)
	if filter.City == "" && filter.Search == "" {
		barbers, err = load(ctx, uc.rt, keyBarberList(), fetch)
	} else {
		barbers, err = fetch()
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}
	if barbers == nil {
		barbers = []models.Barber{}
	}
	return barbers, nil
}

func (uc *Barbers) Get(ctx context.Context, id uint) (*models.Barber, error) {
	b, err := load(ctx, uc.rt, keyBarber(id), func() (*models.Barber, error) {
		return uc.repo.GetBarber(ctx, id)
	})
	if err != nil {
		return nil, notFoundOr(err, "barber_not_found", "Barber not found.")
	}
	return b, nil
}

// GetMine returns the profile owned by userID.
func (uc *Barbers) GetMine(ctx context.Context, userID string) (*models.Barber, error) {
	if userID == "" {
		return nil, errUnauthenticated
	}
	b, err := uc.repo.GetBarberByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "barber_not_found", "You do not have a barber profile yet.")
	}
	return b, nil
}

// ======================================================
// Commands
// ======================================================

// Create registers the caller as a barber. isVerified always starts false.
func (uc *Barbers) Create(ctx context.Context, userID string, in dto.InsertBarber) (*models.Barber, error) {
	if userID == "" {
		return nil, errUnauthenticated
	}

	b := &models.Barber{
		UserID:   userID,
		ShopName: strings.TrimSpace(in.ShopName),
		Bio:      in.Bio,
		Location: strings.TrimSpace(in.Location),
		Address:  in.Address,
		City:     in.City,
		Country:  defaultCountry,
	}
	if in.Country != nil && strings.TrimSpace(*in.Country) != "" {
		b.Country = strings.TrimSpace(*in.Country)
	}
	b.SetHours(in.WorkingHours.Model())

	if err := uc.repo.CreateBarber(ctx, b); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.Conflict("barber_exists", "You already have a barber profile.")
		}
		return nil, httperr.Internal(err)
	}

	uc.rt.invalidate(ctx, keyBarberList())

	uc.audit.Dispatch(audit.Event{
		BarberID: b.ID,
		UserID:   &userID,
		Action:   audit.ActionBarberCreated,
		Entity:   "barber",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *Barbers) Update(ctx context.Context, id uint, userID string, in dto.UpdateBarber) (*models.Barber, error) {
	if userID == "" {
		return nil, errUnauthenticated
	}

	b, err := uc.repo.GetBarber(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "barber_not_found", "Barber not found.")
	}
	if b.UserID != userID {
		return nil, errNotOwner
	}

	if in.ShopName != nil {
		b.ShopName = strings.TrimSpace(*in.ShopName)
	}
	if in.Location != nil {
		b.Location = strings.TrimSpace(*in.Location)
	}
	if in.Country != nil {
		b.Country = strings.TrimSpace(*in.Country)
		if b.Country == "" {
			b.Country = defaultCountry
		}
	}
	if in.Bio.Set {
		b.Bio = in.Bio.Ptr()
	}
	if in.Address.Set {
		b.Address = in.Address.Ptr()
	}
	if in.City.Set {
		b.City = in.City.Ptr()
	}
	if in.WorkingHours.Set {
		if in.WorkingHours.Null {
			b.SetHours(nil)
		} else {
			b.SetHours(in.WorkingHours.Value.Model())
		}
	}

	if err := uc.repo.UpdateBarber(ctx, b); err != nil {
		return nil, httperr.Internal(err)
	}

	uc.rt.invalidate(ctx, keyBarberList(), keyBarber(b.ID))
	return b, nil
}
