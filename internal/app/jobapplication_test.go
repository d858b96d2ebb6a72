package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/CATIGERN/job-applications/internal/domain"
)

func TestJobApplicationCreate_Success(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 2)

	a, err := f.apps.Create(context.Background(), offer.ID, applicant("ada@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("ID should not be nil")
	}
	if a.JobOfferID != offer.ID {
		t.Errorf("JobOfferID = %v, want %v", a.JobOfferID, offer.ID)
	}
	if a.Status != domain.ApplicationStatusApplied {
		t.Errorf("Status = %q, want %q", a.Status, domain.ApplicationStatusApplied)
	}

	last := f.notifier.events[len(f.notifier.events)-1]
	if last.Status != domain.PublishStatusCreated || last.EventType != domain.EventTypeJobApplication {
		t.Errorf("event = %s/%s, want CREATED/JOB_APPLICATION", last.Status, last.EventType)
	}
	if !last.TransactionTime.Equal(a.CreatedAt) {
		t.Error("TransactionTime should be the creation time")
	}
}

func TestJobApplicationCreate_UnknownOffer(t *testing.T) {
	f := newFixture()

	_, err := f.apps.Create(context.Background(), uuid.New(), applicant("ada@example.com"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "No Job Offer found associated with the ID." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestJobApplicationCreate_InactiveOfferWinsOverInvalidDraft(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 2)
	if _, err := f.offers.Deactivate(context.Background(), offer); err != nil {
		t.Fatal(err)
	}

	_, err := f.apps.Create(context.Background(), offer.ID, domain.JobApplicationDraft{CandidateEmail: "not-an-email"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err.Error() != "Job offer has no vacancies" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestJobApplicationCreate_InvalidDraft(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 2)

	_, err := f.apps.Create(context.Background(), offer.ID, domain.JobApplicationDraft{CandidateEmail: "not-an-email", ResumeText: "cv"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobApplicationCreate_DuplicateEmail(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 2)
	other := f.mustCreateOffer(t, "Frontend Engineer", 2)
	f.mustApply(t, offer.ID, "ada@example.com")

	_, err := f.apps.Create(context.Background(), offer.ID, applicant("ada@example.com"))
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err.Error() != "Job Application for the given email already exists." {
		t.Errorf("message = %q", err.Error())
	}

	// Email uniqueness is per offer and case-sensitive.
	f.mustApply(t, other.ID, "ada@example.com")
	f.mustApply(t, offer.ID, "ADA@example.com")
}

func TestJobApplicationGetByID(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 2)
	a := f.mustApply(t, offer.ID, "ada@example.com")

	got, err := f.apps.GetByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CandidateEmail != "ada@example.com" {
		t.Errorf("CandidateEmail = %q", got.CandidateEmail)
	}

	_, err = f.apps.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "No Job Application found associated with the ID." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestJobApplicationUpdateStatus_AnyStatus(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 2)
	a := f.mustApply(t, offer.ID, "ada@example.com")

	for _, s := range []domain.ApplicationStatus{
		domain.ApplicationStatusRejected,
		domain.ApplicationStatusInvited,
		domain.ApplicationStatusApplied,
	} {
		got, err := f.apps.UpdateStatus(context.Background(), a.ID, s)
		if err != nil {
			t.Fatalf("UpdateStatus(%s): %v", s, err)
		}
		if got.Status != s {
			t.Errorf("Status = %q, want %q", got.Status, s)
		}
	}

	last := f.notifier.events[len(f.notifier.events)-1]
	if last.Status != domain.PublishStatusUpdated || last.EventType != domain.EventTypeJobApplication {
		t.Errorf("event = %s/%s, want UPDATED/JOB_APPLICATION", last.Status, last.EventType)
	}
	if !last.TransactionTime.Equal(a.CreatedAt) {
		t.Error("TransactionTime should stay the creation time on updates")
	}
}

func TestJobApplicationUpdateStatus_UnknownStatus(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 2)
	a := f.mustApply(t, offer.ID, "ada@example.com")

	_, err := f.apps.UpdateStatus(context.Background(), a.ID, domain.ApplicationStatus("WITHDRAWN"))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobApplicationUpdateStatus_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.apps.UpdateStatus(context.Background(), uuid.New(), domain.ApplicationStatusHired)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobApplicationUpdateStatus_UnknownApplicationWinsOverUnknownStatus(t *testing.T) {
	f := newFixture()

	_, err := f.apps.UpdateStatus(context.Background(), uuid.New(), domain.ApplicationStatus("WITHDRAWN"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobApplicationUpdateStatus_ExpiredOffer(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 2)
	a := f.mustApply(t, offer.ID, "ada@example.com")
	if _, err := f.offers.Deactivate(context.Background(), offer); err != nil {
		t.Fatal(err)
	}

	_, err := f.apps.UpdateStatus(context.Background(), a.ID, domain.ApplicationStatusInvited)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err.Error() != "Job offer is expired." {
		t.Errorf("message = %q", err.Error())
	}
	if f.store.apps[a.ID].Status != domain.ApplicationStatusApplied {
		t.Error("application should be unchanged")
	}
}

func TestJobApplicationUpdateStatus_LastHireDeactivatesOffer(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 2)
	a := f.mustApply(t, offer.ID, "a@example.com")
	b := f.mustApply(t, offer.ID, "b@example.com")
	c := f.mustApply(t, offer.ID, "c@example.com")

	if _, err := f.apps.UpdateStatus(context.Background(), a.ID, domain.ApplicationStatusHired); err != nil {
		t.Fatal(err)
	}
	if f.store.offers[offer.ID].Status != domain.OfferStatusActive {
		t.Fatal("offer should stay active with one vacancy left")
	}

	before := f.txm.calls
	if _, err := f.apps.UpdateStatus(context.Background(), b.ID, domain.ApplicationStatusHired); err != nil {
		t.Fatal(err)
	}
	if f.store.offers[offer.ID].Status != domain.OfferStatusInactive {
		t.Fatal("offer should be INACTIVE once every vacancy is filled")
	}
	if f.txm.calls-before != 1 {
		t.Errorf("hire and deactivation should share one transaction, got %d", f.txm.calls-before)
	}

	events := f.notifier.events[len(f.notifier.events)-2:]
	if events[0].EventType != domain.EventTypeJobApplication || events[1].EventType != domain.EventTypeJobOffer {
		t.Errorf("events = %s, %s, want application update then offer update", events[0].EventType, events[1].EventType)
	}

	_, err := f.apps.Create(context.Background(), offer.ID, applicant("d@example.com"))
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected no vacancies conflict, got %v", err)
	}
	_, err = f.apps.UpdateStatus(context.Background(), c.ID, domain.ApplicationStatusRejected)
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected expired offer conflict, got %v", err)
	}
}

func TestJobApplicationUpdateStatus_NonHireNeverDeactivates(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 1)
	a := f.mustApply(t, offer.ID, "a@example.com")

	if _, err := f.apps.UpdateStatus(context.Background(), a.ID, domain.ApplicationStatusInvited); err != nil {
		t.Fatal(err)
	}
	if f.store.offers[offer.ID].Status != domain.OfferStatusActive {
		t.Error("only a HIRED update can deactivate the offer")
	}
}

func TestJobApplicationUpdateStatus_SaveErrorEmitsNothing(t *testing.T) {
	f := newFixture()
	offer := f.mustCreateOffer(t, "Backend Engineer", 1)
	a := f.mustApply(t, offer.ID, "a@example.com")
	emitted := len(f.notifier.events)

	f.store.saveErr = errBoom
	_, err := f.apps.UpdateStatus(context.Background(), a.ID, domain.ApplicationStatusHired)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if len(f.notifier.events) != emitted {
		t.Error("no event should be emitted when the write fails")
	}
}
