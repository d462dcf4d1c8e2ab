package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var transitions = map[Status]map[Status]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
	StatusCancelled: {},
	StatusCompleted: {},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := transitions[st]; !ok {
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
	return st, nil
}

func InitialStatus() Status {
	return StatusPending
}

// CanTransition reports whether from → to is an edge of the lifecycle.
// Same-state moves are never edges.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Blocking reports whether an appointment in this status holds its slot.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

func BlockingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

// ===============================
// Validations
// ===============================

func CheckTransition(from, to Status) error {
	if from == to {
		return httperr.Validationf("status", "appointment is already %s", to)
	}
	if from.IsTerminal() {
		return httperr.Validationf("status", "appointment is %s and can no longer change", from)
	}
	if !CanTransition(from, to) {
		return httperr.Validationf("status", "cannot change status from %s to %s", from, to)
	}
	return nil
}
