package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/CATIGERN/job-applications/internal/domain"
)

func TestNewJobOfferEvent(t *testing.T) {
	offer := offerWith(domain.ApplicationStatusApplied)
	offer.UpdatedAt = offer.CreatedAt.Add(time.Minute)

	event := domain.NewJobOfferEvent(offer, domain.PublishStatusUpdated)

	if event.ID != offer.ID {
		t.Errorf("ID = %v, want %v", event.ID, offer.ID)
	}
	if event.EventType != domain.EventTypeJobOffer {
		t.Errorf("EventType = %q, want %q", event.EventType, domain.EventTypeJobOffer)
	}
	if event.Status != domain.PublishStatusUpdated {
		t.Errorf("Status = %q, want %q", event.Status, domain.PublishStatusUpdated)
	}
	if !event.TransactionTime.Equal(offer.CreatedAt) {
		t.Errorf("TransactionTime = %v, want creation time %v", event.TransactionTime, offer.CreatedAt)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(event.EventData), &data); err != nil {
		t.Fatalf("EventData is not JSON: %v", err)
	}
	if data["jobTitle"] != offer.Title {
		t.Errorf("jobTitle = %v, want %q", data["jobTitle"], offer.Title)
	}
	if data["jobOfferStatus"] != "ACTIVE" {
		t.Errorf("jobOfferStatus = %v, want ACTIVE", data["jobOfferStatus"])
	}
	if _, ok := data["applications"]; ok {
		t.Error("offer snapshot should not include the applications association")
	}
}

func TestNewJobApplicationEvent(t *testing.T) {
	app := domain.NewJobApplication(uuid.New(), uuid.New(), domain.JobApplicationDraft{
		CandidateEmail: "ada@example.com",
		ResumeText:     "cv",
	})

	event := domain.NewJobApplicationEvent(app, domain.PublishStatusCreated)

	if event.ID != app.ID {
		t.Errorf("ID = %v, want %v", event.ID, app.ID)
	}
	if event.EventType != domain.EventTypeJobApplication {
		t.Errorf("EventType = %q, want %q", event.EventType, domain.EventTypeJobApplication)
	}
	if event.Status != domain.PublishStatusCreated {
		t.Errorf("Status = %q, want %q", event.Status, domain.PublishStatusCreated)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(event.EventData), &data); err != nil {
		t.Fatalf("EventData is not JSON: %v", err)
	}
	if data["candidateEmail"] != "ada@example.com" {
		t.Errorf("candidateEmail = %v", data["candidateEmail"])
	}
	if data["jobOfferId"] != app.JobOfferID.String() {
		t.Errorf("jobOfferId = %v, want %s", data["jobOfferId"], app.JobOfferID)
	}
	if data["applicationStatus"] != "APPLIED" {
		t.Errorf("applicationStatus = %v, want APPLIED", data["applicationStatus"])
	}
}
