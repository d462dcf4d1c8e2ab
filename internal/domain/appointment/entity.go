package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// Actor is the requester's relation to an appointment.
type Actor int

const (
	ActorStranger Actor = iota
	ActorCustomer
	ActorBarber
)

// ActorFor resolves how userID relates to ap. barber is the appointment's barber.
func ActorFor(ap *models.Appointment, barber *models.Barber, userID string) Actor {
	switch {
	case barber != nil && barber.ID == ap.BarberID && barber.UserID == userID:
		return ActorBarber
	case ap.CustomerID == userID:
		return ActorCustomer
	default:
		return ActorStranger
	}
}

// EndFor derives the end of a booking from the service duration.
func EndFor(start time.Time, svc *models.Service) time.Time {
	return start.Add(svc.Duration())
}

// Overlaps treats both ranges as half-open, so back-to-back bookings do not collide.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to the target status on behalf of actor. The barber may
// take any legal step; the customer may only cancel.
func Transition(ap *models.Appointment, to Status, actor Actor) error {
	switch actor {
	case ActorStranger:
		return httperr.Auth("not_appointment_participant", "You cannot change this appointment.")
	case ActorCustomer:
		if to != StatusCancelled {
			return httperr.Auth("customer_can_only_cancel", "Customers can only cancel their appointments.")
		}
	}

	from, err := ParseStatus(ap.Status)
	if err != nil {
		return httperr.Internal(err)
	}
	if err := CheckTransition(from, to); err != nil {
		return err
	}

	ap.Status = string(to)
	return nil
}
