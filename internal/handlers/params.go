package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/validation"
)

var validate = validation.New()

// bindJSON decodes the body into dst and validates it. Type mismatches are
// reported against the offending field.
func bindJSON(c *gin.Context, dst any) error {
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return httperr.Validationf(typeErr.Field, "%s has an invalid value", typeErr.Field)
		case errors.Is(err, io.EOF):
			return httperr.Validation("", "request body is required")
		default:
			return httperr.Validation("", "request body must be valid JSON")
		}
	}
	return validate.Struct(dst)
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, httperr.Validationf(name, "%s must be a positive integer", name)
	}
	return uint(id), nil
}

// queryTime reads an optional ISO-8601 bound. A bare date is midnight UTC,
// or the following midnight when endOfDay is set.
func queryTime(c *gin.Context, name string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		if endOfDay {
			t = t.Add(24 * time.Hour)
		}
		return &t, nil
	}
	return nil, httperr.Validationf(name, "%s must be an ISO-8601 date or timestamp", name)
}

func queryInt(c *gin.Context, name string, def, max int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil || n <= 0 {
		return def
	}
	if max > 0 && n > max {
		return def
	}
	return n
}
