// Package app assembles the storage backends selected by configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/cache"
	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-marketplace/internal/db"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	infraRepo "github.com/BruksfildServices01/barber-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/barber-marketplace/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-marketplace/internal/infra/storage"
	"github.com/BruksfildServices01/barber-marketplace/internal/usecase/portfolio"
)

type Stores struct {
	Appointments appointment.Repository
	Catalog      catalog.Repository
	Audit        audit.Store
	close        func() error
}

func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func OpenStores(cfg *config.Config, log *slog.Logger) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn("using in-memory store; data is lost on restart")
		store := memory.New()
		return &Stores{Appointments: store, Catalog: store, Audit: store}, nil

	case config.StoreDriverPostgres:
		db, err := dbpkg.NewDB(cfg, log)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		return &Stores{
			Appointments: infraRepo.NewAppointmentGormRepository(db),
			Catalog:      infraRepo.NewCatalogGormRepository(db),
			Audit:        infraRepo.NewAuditGormRepository(db),
			close:        sqlDB.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// OpenCache returns Redis when configured and reachable, otherwise a no-op cache.
func OpenCache(ctx context.Context, cfg *config.Config, log *slog.Logger) cache.Cache {
	if !cfg.CacheEnabled() {
		log.Info("cache disabled")
		return cache.NewNoop()
	}

	redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn("redis unreachable, caching disabled", slog.String("error", err.Error()))
		_ = redisCache.Close()
		return cache.NewNoop()
	}
	log.Info("redis connected", slog.String("addr", cfg.RedisAddr))
	return redisCache
}

// OpenObjects returns nil when no bucket is configured.
func OpenObjects(cfg *config.Config, log *slog.Logger) portfolio.ObjectStore {
	if !cfg.PortfolioEnabled() {
		log.Info("portfolio uploads disabled")
		return nil
	}
	return storage.NewS3Store(storage.S3Config{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
}
