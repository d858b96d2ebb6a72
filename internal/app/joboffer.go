package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/CATIGERN/job-applications/internal/database"
	"github.com/CATIGERN/job-applications/internal/domain"
)

// JobOfferService orchestrates job offer lifecycle operations.
type JobOfferService struct {
	repo      domain.JobOfferRepository
	notifier  domain.EventNotifier
	validator domain.TransitionValidator
	txm       database.TxManager
	logger    *slog.Logger
}

// NewJobOfferService creates a service with the given adapters.
func NewJobOfferService(
	repo domain.JobOfferRepository,
	notifier domain.EventNotifier,
	validator domain.TransitionValidator,
	txm database.TxManager,
	logger *slog.Logger,
) *JobOfferService {
	return &JobOfferService{
		repo:      repo,
		notifier:  notifier,
		validator: validator,
		txm:       txm,
		logger:    logger,
	}
}

// List returns offers with the given status in storage order.
func (s *JobOfferService) List(ctx context.Context, status domain.OfferStatus, limit, offset int) ([]domain.JobOffer, error) {
	if limit < 0 || offset < 0 {
		return nil, domain.ErrInvalidPagination
	}
	return s.repo.List(ctx, domain.ListFilter{Status: status, Limit: limit, Offset: offset})
}

// Create validates the draft, persists a new ACTIVE offer and emits a CREATED event.
func (s *JobOfferService) Create(ctx context.Context, draft domain.JobOfferDraft) (domain.JobOffer, error) {
	if err := draft.Validate(); err != nil {
		return domain.JobOffer{}, domain.InvalidInput(err)
	}
	if !domain.ValidStartDate(draft.StartDate) {
		return domain.JobOffer{}, domain.ErrInvalidStartDate
	}

	var offer domain.JobOffer
	err := s.txm.WithTx(ctx, func(ctx context.Context) error {
		// Check title uniqueness before creating.
		_, err := s.repo.GetByTitle(ctx, draft.Title)
		if err == nil {
			return &domain.TitleConflictError{Title: draft.Title}
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("looking up job offer by title: %w", err)
		}

		id, err := newID()
		if err != nil {
			return fmt.Errorf("generating job offer id: %w", err)
		}

		offer, err = s.repo.Save(ctx, domain.NewJobOffer(id, draft))
		if err != nil {
			return fmt.Errorf("saving job offer: %w", err)
		}

		publish(ctx, s.notifier, s.logger, domain.NewJobOfferEvent(offer, domain.PublishStatusCreated))
		return nil
	})
	if err != nil {
		return domain.JobOffer{}, err
	}
	return offer, nil
}

// GetByID returns an offer with its applications loaded.
func (s *JobOfferService) GetByID(ctx context.Context, id uuid.UUID) (domain.JobOffer, error) {
	return s.repo.GetByID(ctx, id)
}

// Deactivate moves the offer to INACTIVE and emits an UPDATED event.
// Deactivating an already inactive offer stamps and persists it again.
func (s *JobOfferService) Deactivate(ctx context.Context, offer domain.JobOffer) (domain.JobOffer, error) {
	next, err := s.validator.Apply(ctx, offer.Status, domain.OfferEventDeactivate)
	if err != nil {
		return domain.JobOffer{}, err
	}

	offer.Status = next
	offer.UpdatedAt = time.Now().UTC()

	err = s.txm.WithTx(ctx, func(ctx context.Context) error {
		saved, err := s.repo.Save(ctx, offer)
		if err != nil {
			return fmt.Errorf("saving job offer: %w", err)
		}
		offer = saved

		publish(ctx, s.notifier, s.logger, domain.NewJobOfferEvent(offer, domain.PublishStatusUpdated))
		return nil
	})
	if err != nil {
		return domain.JobOffer{}, err
	}

	s.logger.InfoContext(ctx, "job offer deactivated", "job_offer_id", offer.ID.String())
	return offer, nil
}

// ListApplications pages through the offer's applications with the given status.
// Filtering happens over the loaded association.
func (s *JobOfferService) ListApplications(
	ctx context.Context,
	offerID uuid.UUID,
	status domain.ApplicationStatus,
	limit, offset int,
) ([]domain.JobApplication, error) {
	if limit < 0 || offset < 0 {
		return nil, domain.ErrInvalidPagination
	}

	offer, err := s.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	return offer.ApplicationsWithStatus(status, limit, offset), nil
}
