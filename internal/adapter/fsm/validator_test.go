package fsm_test

import (
	"context"
	"errors"
	"testing"

	adapter "github.com/CATIGERN/job-applications/internal/adapter/fsm"
	"github.com/CATIGERN/job-applications/internal/domain"
)

func TestValidator_AllTransitions(t *testing.T) {
	v := adapter.New()
	ctx := context.Background()

	for _, tr := range domain.Transitions {
		dst, err := v.Apply(ctx, tr.Src, tr.Event)
		if err != nil {
			t.Errorf("Apply(%q, %q) unexpected error: %v", tr.Src, tr.Event, err)
			continue
		}
		if dst != tr.Dst {
			t.Errorf("Apply(%q, %q) = %q, want %q", tr.Src, tr.Event, dst, tr.Dst)
		}
	}
}

func TestValidator_DeactivateInactiveIsNoop(t *testing.T) {
	got, err := adapter.New().Apply(context.Background(), domain.OfferStatusInactive, domain.OfferEventDeactivate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != domain.OfferStatusInactive {
		t.Errorf("Apply = %q, want %q", got, domain.OfferStatusInactive)
	}
}

func TestValidator_UnknownEvent(t *testing.T) {
	_, err := adapter.New().Apply(context.Background(), domain.OfferStatusInactive, domain.OfferEvent("reactivate"))

	var trErr *domain.TransitionError
	if !errors.As(err, &trErr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if trErr.Event != "reactivate" {
		t.Errorf("event = %q, want %q", trErr.Event, "reactivate")
	}
	if trErr.Current != domain.OfferStatusInactive {
		t.Errorf("current = %q, want %q", trErr.Current, domain.OfferStatusInactive)
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Error("TransitionError should be a conflict")
	}
}

func TestValidator_UnknownState(t *testing.T) {
	_, err := adapter.New().Apply(context.Background(), domain.OfferStatus("ARCHIVED"), domain.OfferEventDeactivate)

	var trErr *domain.TransitionError
	if !errors.As(err, &trErr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
}

func TestValidator_Reusable(t *testing.T) {
	v := adapter.New()
	ctx := context.Background()

	// Each Apply starts from the given status, not from the previous result.
	for range 3 {
		got, err := v.Apply(ctx, domain.OfferStatusActive, domain.OfferEventDeactivate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != domain.OfferStatusInactive {
			t.Errorf("Apply = %q, want %q", got, domain.OfferStatusInactive)
		}
	}
}
