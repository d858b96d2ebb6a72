package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/CATIGERN/job-applications/internal/database"
	"github.com/CATIGERN/job-applications/internal/domain"
)

// JobApplicationService orchestrates job application lifecycle operations.
type JobApplicationService struct {
	repo     domain.JobApplicationRepository
	offers   *JobOfferService
	notifier domain.EventNotifier
	txm      database.TxManager
	logger   *slog.Logger
}

// NewJobApplicationService creates a service with the given adapters.
func NewJobApplicationService(
	repo domain.JobApplicationRepository,
	offers *JobOfferService,
	notifier domain.EventNotifier,
	txm database.TxManager,
	logger *slog.Logger,
) *JobApplicationService {
	return &JobApplicationService{
		repo:     repo,
		offers:   offers,
		notifier: notifier,
		txm:      txm,
		logger:   logger,
	}
}

// Create submits a new APPLIED application against an active offer.
func (s *JobApplicationService) Create(ctx context.Context, offerID uuid.UUID, draft domain.JobApplicationDraft) (domain.JobApplication, error) {
	var app domain.JobApplication
	err := s.txm.WithTx(ctx, func(ctx context.Context) error {
		offer, err := s.offers.GetByID(ctx, offerID)
		if err != nil {
			return err
		}
		if offer.Status == domain.OfferStatusInactive {
			return domain.ErrNoVacancies
		}
		if err := draft.Validate(); err != nil {
			return domain.InvalidInput(err)
		}
		if offer.HasApplicant(draft.CandidateEmail) {
			return domain.ErrDuplicateApplication
		}

		id, err := newID()
		if err != nil {
			return fmt.Errorf("generating job application id: %w", err)
		}

		app, err = s.repo.Save(ctx, domain.NewJobApplication(id, offer.ID, draft))
		if err != nil {
			return fmt.Errorf("saving job application: %w", err)
		}

		publish(ctx, s.notifier, s.logger, domain.NewJobApplicationEvent(app, domain.PublishStatusCreated))
		return nil
	})
	if err != nil {
		return domain.JobApplication{}, err
	}
	return app, nil
}

// GetByID returns an application by its public identifier.
func (s *JobApplicationService) GetByID(ctx context.Context, id uuid.UUID) (domain.JobApplication, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus sets any known status on an application of an active offer.
// The application is resolved before the status is checked.
// Hiring the last vacancy deactivates the offer in the same transaction.
func (s *JobApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (domain.JobApplication, error) {
	var app domain.JobApplication
	err := s.txm.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !status.Valid() {
			return domain.InvalidInput(fmt.Errorf("unknown application status %q", status))
		}

		offer, err := s.offers.GetByID(ctx, current.JobOfferID)
		if err != nil {
			return fmt.Errorf("loading job offer of application: %w", err)
		}
		if offer.Status == domain.OfferStatusInactive {
			return domain.ErrJobOfferExpired
		}

		current.Status = status
		current.UpdatedAt = time.Now().UTC()

		app, err = s.repo.Save(ctx, current)
		if err != nil {
			return fmt.Errorf("saving job application: %w", err)
		}

		publish(ctx, s.notifier, s.logger, domain.NewJobApplicationEvent(app, domain.PublishStatusUpdated))

		offer.SyncApplication(app)
		if status == domain.ApplicationStatusHired && offer.HiredCount() == offer.Vacancies {
			if _, err := s.offers.Deactivate(ctx, offer); err != nil {
				return fmt.Errorf("deactivating job offer: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.JobApplication{}, err
	}
	return app, nil
}
