package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/cache"
	domaincat "github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// Subscriptions serves the read-only plan catalog.
type Subscriptions struct {
	repo domaincat.Repository
	rt   *readThrough
}

func NewSubscriptions(repo domaincat.Repository, c cache.Cache, ttl time.Duration, log *slog.Logger) *Subscriptions {
	return &Subscriptions{repo: repo, rt: newReadThrough(c, ttl, log)}
}

func (uc *Subscriptions) List(ctx context.Context) ([]models.Subscription, error) {
	subs, err := load(ctx, uc.rt, keySubscriptions, func() ([]models.Subscription, error) {
		return uc.repo.ListSubscriptions(ctx)
	})
	if err != nil {
		return nil, httperr.Internal(err)
	}
	return nonNil(subs), nil
}

// Seed upserts plans by name.
func (uc *Subscriptions) Seed(ctx context.Context, plans []models.Subscription) error {
	for i := range plans {
		if err := uc.repo.UpsertSubscription(ctx, &plans[i]); err != nil {
			return httperr.Internal(err)
		}
	}
	uc.rt.invalidate(ctx, keySubscriptions)
	return nil
}
