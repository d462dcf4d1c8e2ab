package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	appt "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type UpdateStatusInput struct {
	UserID        string
	AppointmentID uint
	Status        string
}

type UpdateStatus struct {
	repo  appt.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo appt.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	if in.UserID == "" {
		return nil, errUnauthenticated
	}

	to, err := appt.ParseStatus(in.Status)
	if err != nil {
		return nil, httperr.Validation("status", "status must be one of: pending, confirmed, cancelled, completed")
	}

	var (
		ap   *models.Appointment
		from string
	)

	err = uc.repo.Transaction(ctx, func(tx appt.Repository) error {
		var err error

		ap, err = tx.GetAppointmentForUpdate(ctx, in.AppointmentID)
		if err != nil {
			return notFoundOr(err, "appointment_not_found", "Appointment not found.")
		}

		barber, err := tx.GetBarber(ctx, ap.BarberID)
		if err != nil {
			return httperr.Internal(err)
		}

		from = ap.Status
		if err := appt.Transition(ap, to, appt.ActorFor(ap, barber, in.UserID)); err != nil {
			return err
		}

		if err := tx.UpdateAppointmentStatus(ctx, ap); err != nil {
			return httperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: ap.BarberID,
		UserID:   &in.UserID,
		Action:   audit.ActionStatusChanged,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"from": from,
			"to":   ap.Status,
		},
	})

	return ap, nil
}
