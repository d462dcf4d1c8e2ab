package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
	appt "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
)

type ListInput struct {
	UserID string
	Role   string
	From   *time.Time
	To     *time.Time
}

type ListAppointments struct {
	repo appt.Repository
}

func NewListAppointments(repo appt.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns the caller's appointments, newest first, each with its
// service and barber attached. A barber-role caller without a profile gets
// an empty list.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.Appointment, error) {

	if in.UserID == "" {
		return nil, errUnauthenticated
	}

	filter := appt.ListFilter{From: in.From, To: in.To}

	switch in.Role {
	case RoleCustomer:
		filter.CustomerID = in.UserID

	case RoleBarber:
		barber, err := uc.repo.GetBarberByUserID(ctx, in.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return []models.Appointment{}, nil
		}
		if err != nil {
			return nil, httperr.Internal(err)
		}
		filter.BarberID = barber.ID

	default:
		return nil, httperr.Validation("role", "role must be one of: customer, barber")
	}

	if in.From != nil && in.To != nil && !in.From.Before(*in.To) {
		return nil, httperr.Validation("to", "to must be after from")
	}

	apps, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, httperr.Internal(err)
	}
	return apps, nil
}
