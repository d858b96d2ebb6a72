package domain

import (
	"context"

	"github.com/google/uuid"
)

// JobOfferRepository defines the persistence contract for job offers.
// Offers are returned with their Applications association loaded in storage order.
type JobOfferRepository interface {
	Save(ctx context.Context, offer JobOffer) (JobOffer, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobOffer, error)
	GetByTitle(ctx context.Context, title string) (JobOffer, error)
	List(ctx context.Context, filter ListFilter) ([]JobOffer, error)
}

// JobApplicationRepository defines the persistence contract for job applications.
type JobApplicationRepository interface {
	Save(ctx context.Context, app JobApplication) (JobApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobApplication, error)
}

// ListFilter holds the criteria for listing job offers.
type ListFilter struct {
	Status OfferStatus
	Limit  int
	Offset int
}

// EventNotifier receives lifecycle events. Callers treat it as fire-and-forget.
type EventNotifier interface {
	Notify(ctx context.Context, event PublishEvent) error
}

// TransitionValidator resolves offer status transitions.
type TransitionValidator interface {
	Apply(ctx context.Context, current OfferStatus, event OfferEvent) (OfferStatus, error)
}
