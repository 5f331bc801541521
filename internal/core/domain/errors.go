package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidID        = errors.New("invalid id")
	ErrAlreadyCancelled = errors.New("appointment already cancelled")
	ErrNotFound         = errors.New("record not found")
)

// ValidationError names the account field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IDKind names the record type an InvalidIDError refers to.
type IDKind string

const (
	KindAccount     IDKind = "account"
	KindAppointment IDKind = "appointment"
)

// InvalidIDError reports an identity that does not resolve, or that
// resolves to an account holding the wrong role.
type InvalidIDError struct {
	Kind   IDKind
	ID     int
	Reason string
}

func (e *InvalidIDError) Error() string {
	msg := fmt.Sprintf("%s with id %d", e.Kind, e.ID)
	if e.Reason != "" {
		return msg + " " + e.Reason
	}
	return msg + " does not exist"
}

// Is lets errors.Is(err, ErrInvalidID) match any *InvalidIDError.
func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidID
}
