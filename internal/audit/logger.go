package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type Filter struct {
	BarberID uint
	Action   string
	Entity   string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

type Store interface {
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
	ListAuditLogs(ctx context.Context, filter Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		BarberID: ev.BarberID,
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.store.CreateAuditLog(ctx, &entry)
}

func (l *Logger) List(ctx context.Context, filter Filter) ([]models.AuditLog, int64, error) {
	return l.store.ListAuditLogs(ctx, filter)
}
