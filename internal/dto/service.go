package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/validation"
)

// InsertService takes barberId from the path; a body value is ignored.
type InsertService struct {
	BarberID        *validation.Int    `json:"barberId"`
	Name            string             `json:"name" validate:"required,max=100"`
	Description     *string            `json:"description" validate:"omitempty,max=255"`
	DurationMinutes validation.Int     `json:"durationMinutes" validate:"required,min=1,max=480"`
	Price           validation.Decimal `json:"price" validate:"required,price"`
	IsActive        *bool              `json:"isActive"`
}

type UpdateService struct {
	Name            *string                     `json:"name" validate:"omitempty,min=1,max=100"`
	Description     validation.Nullable[string] `json:"description"`
	DurationMinutes *validation.Int             `json:"durationMinutes" validate:"omitempty,min=1,max=480"`
	Price           *validation.Decimal         `json:"price" validate:"omitempty,price"`
	IsActive        *bool                       `json:"isActive"`
}

// Money converts a validated price.
func Money(d validation.Decimal) models.Money {
	return models.NewMoney(decimal.RequireFromString(string(d)))
}
