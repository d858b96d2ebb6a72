package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/CATIGERN/job-applications/internal/domain"
)

func TestTitleConflictError_Error(t *testing.T) {
	err := &domain.TitleConflictError{Title: "Backend Engineer"}
	want := "Job offer with job title: Backend Engineer already exists."
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Error("TitleConflictError should unwrap to ErrConflict")
	}
}

func TestTransitionError_Error(t *testing.T) {
	err := &domain.TransitionError{
		Event:   domain.OfferEvent("reopen"),
		Current: domain.OfferStatusInactive,
	}
	want := `event "reopen" is not valid from state "INACTIVE"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Error("TransitionError should unwrap to ErrConflict")
	}
}

func TestSentinels_Kinds(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{domain.ErrJobOfferNotFound, domain.ErrNotFound},
		{domain.ErrJobApplicationNotFound, domain.ErrNotFound},
		{domain.ErrNoVacancies, domain.ErrConflict},
		{domain.ErrDuplicateApplication, domain.ErrConflict},
		{domain.ErrJobOfferExpired, domain.ErrConflict},
		{domain.ErrInvalidStartDate, domain.ErrInvalidInput},
		{domain.ErrInvalidPagination, domain.ErrInvalidInput},
	}

	for _, tc := range cases {
		if !errors.Is(tc.err, tc.kind) {
			t.Errorf("%q should be %v", tc.err, tc.kind)
		}
		wrapped := fmt.Errorf("creating job offer: %w", tc.err)
		if !errors.Is(wrapped, tc.kind) {
			t.Errorf("wrapped %q lost its kind %v", tc.err, tc.kind)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	if domain.InvalidInput(nil) != nil {
		t.Error("InvalidInput(nil) should be nil")
	}

	err := domain.InvalidInput(errors.New("candidateEmail: must be a valid email address."))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != "candidateEmail: must be a valid email address." {
		t.Errorf("message = %q", err.Error())
	}
}
