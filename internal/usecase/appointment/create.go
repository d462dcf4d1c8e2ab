package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
	appt "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// CreateCommand is a booking request the server trusts: CustomerID comes
// from the verified session, never from the request body.
type CreateCommand struct {
	CustomerID string
	BarberID   uint
	ServiceID  uint
	StartTime  time.Time
	Notes      *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  appt.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateAppointment(
	repo appt.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	cmd CreateCommand,
) (*models.Appointment, error) {

	if cmd.CustomerID == "" {
		return nil, errUnauthenticated
	}

	// --------------------------------------------------
	// Start time
	// --------------------------------------------------
	start := cmd.StartTime.UTC()
	if !start.After(uc.now()) {
		return nil, httperr.Validation("startTime", "startTime must be in the future")
	}

	// --------------------------------------------------
	// Barber + service
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, cmd.BarberID)
	if err != nil {
		return nil, notFoundOr(err, "barber_not_found", "Barber not found.")
	}

	svc, err := uc.repo.GetService(ctx, cmd.ServiceID)
	if err != nil {
		return nil, notFoundOr(err, "service_not_found", "Service not found.")
	}
	if svc.BarberID != barber.ID {
		return nil, httperr.NotFound("service_not_found", "Service not found for this barber.")
	}
	if !svc.IsActive {
		return nil, httperr.Validation("serviceId", "service is not currently offered")
	}

	end := appt.EndFor(start, svc)

	ap := &models.Appointment{
		CustomerID: cmd.CustomerID,
		BarberID:   barber.ID,
		ServiceID:  svc.ID,
		StartTime:  start,
		EndTime:    end,
		Status:     string(appt.InitialStatus()),
		Notes:      cmd.Notes,
	}

	// --------------------------------------------------
	// Conflict check + insert under the barber lock
	// --------------------------------------------------
	err = uc.repo.Transaction(ctx, func(tx appt.Repository) error {
		if err := tx.LockBarber(ctx, barber.ID); err != nil {
			return err
		}

		busy, err := tx.HasOverlap(ctx, barber.ID, start, end)
		if err != nil {
			return err
		}
		if busy {
			return errSlotTaken
		}

		return tx.CreateAppointment(ctx, ap)
	})

	if errors.Is(err, errSlotTaken) || errors.Is(err, domain.ErrOverlap) {
		uc.audit.Dispatch(audit.Event{
			BarberID: barber.ID,
			UserID:   &cmd.CustomerID,
			Action:   audit.ActionAppointmentConflict,
			Entity:   "appointment",
			Metadata: map[string]any{
				"serviceId": svc.ID,
				"startTime": start,
				"endTime":   end,
			},
		})
		return nil, errSlotTaken
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarberID: barber.ID,
		UserID:   &cmd.CustomerID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"serviceId": svc.ID,
			"startTime": start,
		},
	})

	return ap, nil
}
