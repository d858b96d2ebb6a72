package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/CATIGERN/job-applications/internal/database"
	"github.com/CATIGERN/job-applications/internal/domain"
)

// JobOfferRepository implements domain.JobOfferRepository using SQLite.
type JobOfferRepository struct {
	db *sql.DB
}

var _ domain.JobOfferRepository = (*JobOfferRepository)(nil)

// NewJobOfferRepository returns a repository over db. Queries join the
// transaction carried by the context, if any.
func NewJobOfferRepository(db *sql.DB) *JobOfferRepository {
	return &JobOfferRepository{db: db}
}

const offerColumns = `internal_id, id, title, description, location, start_date, vacancies, status, created_at, updated_at`

// titleKey normalizes a title for the case-insensitive unique index.
func titleKey(title string) string {
	return strings.ToLower(title)
}

// Save inserts the offer or updates its mutable fields, keyed on the public id.
// Vacancies and creation time are never overwritten.
func (r *JobOfferRepository) Save(ctx context.Context, o domain.JobOffer) (domain.JobOffer, error) {
	q := database.GetTx(ctx, r.db)

	err := q.QueryRowContext(ctx,
		`INSERT INTO job_offers (id, title, title_key, description, location, start_date, vacancies, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		     title = excluded.title,
		     title_key = excluded.title_key,
		     description = excluded.description,
		     location = excluded.location,
		     start_date = excluded.start_date,
		     status = excluded.status,
		     updated_at = excluded.updated_at
		 RETURNING internal_id`,
		o.ID, o.Title, titleKey(o.Title), o.Description, o.Location, o.StartDate,
		o.Vacancies, string(o.Status), formatTime(o.CreatedAt), formatTime(o.UpdatedAt),
	).Scan(&o.InternalID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.JobOffer{}, &domain.TitleConflictError{Title: o.Title}
		}
		return domain.JobOffer{}, fmt.Errorf("upserting job offer: %w", err)
	}

	return o, nil
}

func (r *JobOfferRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.JobOffer, error) {
	q := database.GetTx(ctx, r.db)
	return r.getOne(ctx, q, `SELECT `+offerColumns+` FROM job_offers WHERE id = ?`, id)
}

// GetByTitle finds an offer by title ignoring case.
func (r *JobOfferRepository) GetByTitle(ctx context.Context, title string) (domain.JobOffer, error) {
	q := database.GetTx(ctx, r.db)
	return r.getOne(ctx, q, `SELECT `+offerColumns+` FROM job_offers WHERE title_key = ?`, titleKey(title))
}

func (r *JobOfferRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.JobOffer, error) {
	q := database.GetTx(ctx, r.db)

	rows, err := q.QueryContext(ctx,
		`SELECT `+offerColumns+` FROM job_offers
		 WHERE status = ?
		 ORDER BY internal_id
		 LIMIT ? OFFSET ?`,
		string(filter.Status), filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("listing job offers: %w", err)
	}

	offers := make([]domain.JobOffer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("listing job offers: %w", err)
	}
	_ = rows.Close()

	// The association is loaded once the cursor is closed, the connection is shared.
	for i := range offers {
		apps, err := listApplications(ctx, q, offers[i].ID)
		if err != nil {
			return nil, err
		}
		offers[i].Applications = apps
	}

	return offers, nil
}

func (r *JobOfferRepository) getOne(ctx context.Context, q database.Querier, query string, arg any) (domain.JobOffer, error) {
	o, err := scanOffer(q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.JobOffer{}, domain.ErrJobOfferNotFound
		}
		return domain.JobOffer{}, err
	}

	o.Applications, err = listApplications(ctx, q, o.ID)
	if err != nil {
		return domain.JobOffer{}, err
	}
	return o, nil
}

func scanOffer(s scanner) (domain.JobOffer, error) {
	var o domain.JobOffer
	var status, createdAt, updatedAt string

	err := s.Scan(&o.InternalID, &o.ID, &o.Title, &o.Description, &o.Location,
		&o.StartDate, &o.Vacancies, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.JobOffer{}, err
		}
		return domain.JobOffer{}, fmt.Errorf("scanning job offer: %w", err)
	}

	o.Status = domain.OfferStatus(status)
	o.CreatedAt, o.UpdatedAt, err = parseTimes(createdAt, updatedAt)
	if err != nil {
		return domain.JobOffer{}, fmt.Errorf("scanning job offer %s: %w", o.ID, err)
	}
	o.Applications = make([]domain.JobApplication, 0)

	return o, nil
}
