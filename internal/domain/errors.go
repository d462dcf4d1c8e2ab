// Package domain holds the sentinel errors shared by every repository.
package domain

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	// ErrOverlap is returned when the store itself rejects an overlapping booking.
	ErrOverlap = errors.New("overlapping appointment")
)
