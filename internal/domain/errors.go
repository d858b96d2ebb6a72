package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every business failure returned by the services unwraps to one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

// Error is a business rule failure with a caller-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Sentinel failures for conditions without extra context.
var (
	ErrJobOfferNotFound       = &Error{Kind: ErrNotFound, Message: "No Job Offer found associated with the ID."}
	ErrJobApplicationNotFound = &Error{Kind: ErrNotFound, Message: "No Job Application found associated with the ID."}
	ErrNoVacancies            = &Error{Kind: ErrConflict, Message: "Job offer has no vacancies"}
	ErrDuplicateApplication   = &Error{Kind: ErrConflict, Message: "Job Application for the given email already exists."}
	ErrJobOfferExpired        = &Error{Kind: ErrConflict, Message: "Job offer is expired."}
	ErrInvalidStartDate       = &Error{Kind: ErrInvalidInput, Message: "The specified start Date is not valid."}
	ErrInvalidPagination      = &Error{Kind: ErrInvalidInput, Message: "limit and offset must not be negative."}
)

// InvalidInput wraps a validation failure so it reports as ErrInvalidInput.
func InvalidInput(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: ErrInvalidInput, Message: err.Error()}
}

// TitleConflictError is returned when a job offer title is already in use.
type TitleConflictError struct {
	Title string
}

func (e *TitleConflictError) Error() string {
	return fmt.Sprintf("Job offer with job title: %s already exists.", e.Title)
}

func (e *TitleConflictError) Unwrap() error {
	return ErrConflict
}

// TransitionError is returned when an offer status change is not allowed.
type TransitionError struct {
	Event   OfferEvent
	Current OfferStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("event %q is not valid from state %q", e.Event, e.Current)
}

func (e *TransitionError) Unwrap() error {
	return ErrConflict
}
