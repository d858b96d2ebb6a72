package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PublishStatus tells whether the event follows a creation or an update.
type PublishStatus string

const (
	PublishStatusCreated PublishStatus = "CREATED"
	PublishStatusUpdated PublishStatus = "UPDATED"
)

// EventType names the kind of entity an event is about.
type EventType string

const (
	EventTypeJobOffer       EventType = "JOB_OFFER"
	EventTypeJobApplication EventType = "JOB_APPLICATION"
)

// PublishEvent is the lifecycle record handed to an EventNotifier after every
// successful mutation. It is never persisted by the services.
type PublishEvent struct {
	ID              uuid.UUID
	Status          PublishStatus
	EventType       EventType
	EventData       string
	TransactionTime time.Time
}

type offerSnapshot struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"jobTitle"`
	Description string      `json:"jobDescription"`
	Location    string      `json:"location"`
	StartDate   string      `json:"startDate"`
	Vacancies   int         `json:"vacancies"`
	Status      OfferStatus `json:"jobOfferStatus"`
	CreatedAt   time.Time   `json:"createdTime"`
	UpdatedAt   time.Time   `json:"updatedTime"`
}

type applicationSnapshot struct {
	ID             uuid.UUID         `json:"id"`
	JobOfferID     uuid.UUID         `json:"jobOfferId"`
	CandidateEmail string            `json:"candidateEmail"`
	ResumeText     string            `json:"resumeText"`
	Status         ApplicationStatus `json:"applicationStatus"`
	CreatedAt      time.Time         `json:"createdTime"`
	UpdatedAt      time.Time         `json:"updatedTime"`
}

// NewJobOfferEvent snapshots an offer, without its applications.
func NewJobOfferEvent(offer JobOffer, status PublishStatus) PublishEvent {
	data, _ := json.Marshal(offerSnapshot{
		ID:          offer.ID,
		Title:       offer.Title,
		Description: offer.Description,
		Location:    offer.Location,
		StartDate:   offer.StartDate,
		Vacancies:   offer.Vacancies,
		Status:      offer.Status,
		CreatedAt:   offer.CreatedAt,
		UpdatedAt:   offer.UpdatedAt,
	})
	return PublishEvent{
		ID:              offer.ID,
		Status:          status,
		EventType:       EventTypeJobOffer,
		EventData:       string(data),
		TransactionTime: offer.CreatedAt,
	}
}

// NewJobApplicationEvent snapshots an application. The transaction time is the
// creation time, for updates too.
func NewJobApplicationEvent(app JobApplication, status PublishStatus) PublishEvent {
	data, _ := json.Marshal(applicationSnapshot{
		ID:             app.ID,
		JobOfferID:     app.JobOfferID,
		CandidateEmail: app.CandidateEmail,
		ResumeText:     app.ResumeText,
		Status:         app.Status,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	})
	return PublishEvent{
		ID:              app.ID,
		Status:          status,
		EventType:       EventTypeJobApplication,
		EventData:       string(data),
		TransactionTime: app.CreatedAt,
	}
}
