package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/cache"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

// Cache keys. Filtered barber searches are not cached.
const keySubscriptions = "subscriptions"

func keyBarberList() string { return "barbers:all" }
func keyBarber(id uint) string { return fmt.Sprintf("barbers:%d", id) }
func keyServices(barberID uint) string { return fmt.Sprintf("services:%d", barberID) }

// readThrough wraps a cache so that its failures only ever cost a store
// round trip.
type readThrough struct {
	cache cache.Cache
	ttl   time.Duration
	log   *slog.Logger
}

func newReadThrough(c cache.Cache, ttl time.Duration, log *slog.Logger) *readThrough {
	if c == nil {
		c = cache.NewNoop()
	}
	if log == nil {
		log = slog.Default()
	}
	return &readThrough{cache: c, ttl: ttl, log: log}
}

func load[T any](ctx context.Context, rt *readThrough, key string, fetch func() (T, error)) (T, error) {
	if raw, ok, err := rt.cache.Get(ctx, key); err != nil {
		rt.log.Warn("cache get failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		rt.log.Warn("cache entry unreadable", slog.String("key", key))
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}

	if raw, err := json.Marshal(v); err == nil {
		if err := rt.cache.Set(ctx, key, raw, rt.ttl); err != nil {
			rt.log.Warn("cache set failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return v, nil
}

func (rt *readThrough) invalidate(ctx context.Context, keys ...string) {
	if err := rt.cache.Delete(ctx, keys...); err != nil {
		rt.log.Warn("cache invalidation failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}

func notFoundOr(err error, code, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFound(code, message)
	}
	return httperr.Internal(err)
}

var (
	errUnauthenticated = httperr.Auth("unauthenticated", "Authentication required.")
	errNotOwner        = httperr.Auth("not_barber_owner", "Only the barber can change this profile.")
)
