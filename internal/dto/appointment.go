package dto

import (
	"github.com/BruksfildServices01/barber-marketplace/internal/validation"
)

// InsertAppointment is untrusted client input. customerId, endTime and
// status are tolerated but never read: the server derives all three.
type InsertAppointment struct {
	CustomerID *string          `json:"customerId"`
	BarberID   validation.Int   `json:"barberId" validate:"required,min=1"`
	ServiceID  validation.Int   `json:"serviceId" validate:"required,min=1"`
	StartTime  validation.Time  `json:"startTime" validate:"required"`
	EndTime    *validation.Time `json:"endTime"`
	Status     *string          `json:"status"`
	Notes      *string          `json:"notes" validate:"omitempty,max=500"`
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type ListAppointmentsQuery struct {
	Role string `form:"role" json:"role" validate:"required,oneof=customer barber"`
	From string `form:"from" json:"from"`
	To   string `form:"to" json:"to"`
}
