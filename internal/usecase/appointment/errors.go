package appointment

import (
	"errors"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

var (
	errUnauthenticated = httperr.Auth("unauthenticated", "Authentication required.")
	errSlotTaken       = httperr.Conflict("time_conflict", "The barber already has an appointment at this time.")
)

func notFoundOr(err error, code, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFound(code, message)
	}
	return httperr.Internal(err)
}
