package repository

import (
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
)

// Postgres SQLSTATE codes the store reacts to.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translate maps driver errors onto domain sentinels and wraps everything
// else with the operation name.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	switch pgCode(err) {
	case pgUniqueViolation:
		return errors.Wrap(domain.ErrDuplicate, op)
	case pgExclusionViolation:
		return errors.Wrap(domain.ErrOverlap, op)
	}

	return errors.Wrap(err, op)
}
