package dto

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/validation"
)

type DayHoursInput struct {
	Start  string `json:"start" validate:"required,clock"`
	End    string `json:"end" validate:"required,clock"`
	IsOpen bool   `json:"isOpen"`
}

type WorkingHoursInput map[string]DayHoursInput

// InsertBarber is the profile submission schema. userId and isVerified are
// accepted for compatibility but owned by the server.
type InsertBarber struct {
	UserID       *string           `json:"userId"`
	ShopName     string            `json:"shopName" validate:"required,max=120"`
	Bio          *string           `json:"bio" validate:"omitempty,max=2000"`
	Location     string            `json:"location" validate:"required,max=255"`
	Address      *string           `json:"address" validate:"omitempty,max=255"`
	City         *string           `json:"city" validate:"omitempty,max=100"`
	Country      *string           `json:"country" validate:"omitempty,max=100"`
	WorkingHours WorkingHoursInput `json:"workingHours" validate:"omitempty,dive,keys,dayname,endkeys"`
	IsVerified   *bool             `json:"isVerified"`
}

func (in *InsertBarber) Check() error {
	if strings.TrimSpace(in.ShopName) == "" {
		return httperr.Validation("shopName", "Shop name is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return httperr.Validation("location", "Location is required")
	}
	return checkHours(in.WorkingHours)
}

// UpdateBarber is the partial form of InsertBarber. Nullable columns take
// an explicit null to clear them.
type UpdateBarber struct {
	ShopName     *string                                `json:"shopName" validate:"omitempty,min=1,max=120"`
	Bio          validation.Nullable[string]            `json:"bio"`
	Location     *string                                `json:"location" validate:"omitempty,min=1,max=255"`
	Address      validation.Nullable[string]            `json:"address"`
	City         validation.Nullable[string]            `json:"city"`
	Country      *string                                `json:"country" validate:"omitempty,max=100"`
	WorkingHours validation.Nullable[WorkingHoursInput] `json:"workingHours"`
}

var hoursValidator = validation.New()

type hoursHolder struct {
	WorkingHours WorkingHoursInput `json:"workingHours" validate:"dive,keys,dayname,endkeys"`
}

func (in *UpdateBarber) Check() error {
	if in.ShopName != nil && strings.TrimSpace(*in.ShopName) == "" {
		return httperr.Validation("shopName", "Shop name is required")
	}
	if in.Location != nil && strings.TrimSpace(*in.Location) == "" {
		return httperr.Validation("location", "Location is required")
	}
	if in.WorkingHours.Set && !in.WorkingHours.Null {
		if err := hoursValidator.Struct(&hoursHolder{WorkingHours: in.WorkingHours.Value}); err != nil {
			return err
		}
		return checkHours(in.WorkingHours.Value)
	}
	return nil
}

func checkHours(wh WorkingHoursInput) error {
	days := make([]string, 0, len(wh))
	for day := range wh {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		h := wh[day]
		if !h.IsOpen {
			continue
		}
		start, _ := time.Parse("15:04", h.Start)
		end, _ := time.Parse("15:04", h.End)
		if !start.Before(end) {
			return httperr.Validation(
				fmt.Sprintf("workingHours[%s].end", day),
				"end must be after start on open days",
			)
		}
	}
	return nil
}

func (wh WorkingHoursInput) Model() models.WorkingHours {
	if wh == nil {
		return nil
	}
	out := make(models.WorkingHours, len(wh))
	for day, h := range wh {
		out[day] = models.DayHours{Start: h.Start, End: h.End, IsOpen: h.IsOpen}
	}
	return out
}
