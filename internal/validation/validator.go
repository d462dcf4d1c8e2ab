package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

var dayNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"mon": true, "tue": true, "wed": true, "thu": true, "fri": true, "sat": true, "sun": true,
}

// maxPrice is the first value a numeric(10,2) column cannot hold.
var maxPrice = decimal.New(1, 8)

// Checker is implemented by schemas with rules that tags cannot express.
type Checker interface {
	Check() error
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04", fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("dayname", func(fl validator.FieldLevel) bool {
		return dayNames[fl.Field().String()]
	})

	v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return !d.IsNegative() && d.LessThan(maxPrice) && d.Equal(d.Round(2))
	})

	return &Validator{v: v}
}

// Struct validates s and reports the first failing field as a validation error.
func (v *Validator) Struct(s any) error {
	if err := v.v.Struct(s); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return toAppError(errs[0])
		}
		return httperr.Validation("", "Invalid request.")
	}
	if c, ok := s.(Checker); ok {
		return c.Check()
	}
	return nil
}

func toAppError(fe validator.FieldError) error {
	field := fieldPath(fe.Namespace())
	return httperr.Validation(field, message(field, fe))
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "clock":
		return fmt.Sprintf("%s must be a time in HH:MM format", field)
	case "dayname":
		return fmt.Sprintf("%s must be a lowercase day name", field)
	case "price":
		return fmt.Sprintf("%s must be a non-negative amount below 100000000 with at most 2 decimal places", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
