package db

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

func NewDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      newGormLogger(log, cfg.LogLevel == "debug"),
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// constraints are applied after AutoMigrate. Each statement is idempotent.
var constraints = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'appointments_time_order') THEN
			ALTER TABLE appointments
				ADD CONSTRAINT appointments_time_order CHECK (start_time < end_time);
		END IF;
	END $$`,
	`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap') THEN
			ALTER TABLE appointments
				ADD CONSTRAINT appointments_no_overlap
				EXCLUDE USING gist (
					barber_id WITH =,
					tstzrange(start_time, end_time, '[)') WITH &&
				) WHERE (status IN ('pending', 'confirmed'));
		END IF;
	END $$`,
	`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'services_duration_positive') THEN
			ALTER TABLE services
				ADD CONSTRAINT services_duration_positive CHECK (duration_minutes > 0);
		END IF;
	END $$`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.Subscription{},
		&models.PortfolioPhoto{},
		&models.AuditLog{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "apply constraint")
		}
	}
	return nil
}
