package repositories

import "errors"

var (
	// ErrNotFound is returned when a keyed lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrInsufficientCredits is returned when a deduction would overdraw the balance.
	ErrInsufficientCredits = errors.New("insufficient credits")
)
