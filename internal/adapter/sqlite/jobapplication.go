package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/CATIGERN/job-applications/internal/database"
	"github.com/CATIGERN/job-applications/internal/domain"
)

// JobApplicationRepository implements domain.JobApplicationRepository using SQLite.
type JobApplicationRepository struct {
	db *sql.DB
}

var _ domain.JobApplicationRepository = (*JobApplicationRepository)(nil)

// NewJobApplicationRepository returns a repository over db.
func NewJobApplicationRepository(db *sql.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db: db}
}

const applicationColumns = `internal_id, id, job_offer_id, candidate_email, resume_text, status, created_at, updated_at`

// Save inserts the application or updates its status, keyed on the public id.
func (r *JobApplicationRepository) Save(ctx context.Context, a domain.JobApplication) (domain.JobApplication, error) {
	q := database.GetTx(ctx, r.db)

	err := q.QueryRowContext(ctx,
		`INSERT INTO job_applications (id, job_offer_id, candidate_email, resume_text, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		     status = excluded.status,
		     updated_at = excluded.updated_at
		 RETURNING internal_id`,
		a.ID, a.JobOfferID, a.CandidateEmail, a.ResumeText, string(a.Status),
		formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
	).Scan(&a.InternalID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.JobApplication{}, domain.ErrDuplicateApplication
		case isForeignKeyViolation(err):
			return domain.JobApplication{}, domain.ErrJobOfferNotFound
		}
		return domain.JobApplication{}, fmt.Errorf("upserting job application: %w", err)
	}

	return a, nil
}

func (r *JobApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.JobApplication, error) {
	q := database.GetTx(ctx, r.db)

	a, err := scanApplication(q.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE id = ?`, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.JobApplication{}, domain.ErrJobApplicationNotFound
		}
		return domain.JobApplication{}, err
	}
	return a, nil
}

// listApplications loads the applications of one offer in storage order.
func listApplications(ctx context.Context, q database.Querier, offerID uuid.UUID) ([]domain.JobApplication, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM job_applications
		 WHERE job_offer_id = ?
		 ORDER BY internal_id`, offerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing job applications: %w", err)
	}
	defer rows.Close()

	apps := make([]domain.JobApplication, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}

	return apps, rows.Err()
}

func scanApplication(s scanner) (domain.JobApplication, error) {
	var a domain.JobApplication
	var status, createdAt, updatedAt string

	err := s.Scan(&a.InternalID, &a.ID, &a.JobOfferID, &a.CandidateEmail, &a.ResumeText,
		&status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.JobApplication{}, err
		}
		return domain.JobApplication{}, fmt.Errorf("scanning job application: %w", err)
	}

	a.Status = domain.ApplicationStatus(status)
	a.CreatedAt, a.UpdatedAt, err = parseTimes(createdAt, updatedAt)
	if err != nil {
		return domain.JobApplication{}, fmt.Errorf("scanning job application %s: %w", a.ID, err)
	}

	return a, nil
}
