package otel

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/CATIGERN/job-applications/internal/domain"
)

const tracerName = "github.com/CATIGERN/job-applications/internal/adapter/otel"

// endSpan records err on the span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// TracingJobOfferRepository wraps a domain.JobOfferRepository with OpenTelemetry tracing.
type TracingJobOfferRepository struct {
	next   domain.JobOfferRepository
	tracer trace.Tracer
}

var _ domain.JobOfferRepository = (*TracingJobOfferRepository)(nil)

// NewTracingJobOfferRepository creates a tracing decorator around the given repository.
func NewTracingJobOfferRepository(next domain.JobOfferRepository) *TracingJobOfferRepository {
	return &TracingJobOfferRepository{next: next, tracer: otel.Tracer(tracerName)}
}

func (r *TracingJobOfferRepository) Save(ctx context.Context, offer domain.JobOffer) (domain.JobOffer, error) {
	ctx, span := r.tracer.Start(ctx, "JobOfferRepository.Save",
		trace.WithAttributes(
			attribute.String("job_offer.id", offer.ID.String()),
			attribute.String("job_offer.status", string(offer.Status)),
		),
	)

	saved, err := r.next.Save(ctx, offer)
	if err == nil {
		span.SetAttributes(attribute.Int64("job_offer.internal_id", saved.InternalID))
	}
	endSpan(span, err)
	return saved, err
}

func (r *TracingJobOfferRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.JobOffer, error) {
	ctx, span := r.tracer.Start(ctx, "JobOfferRepository.GetByID",
		trace.WithAttributes(attribute.String("job_offer.id", id.String())),
	)

	offer, err := r.next.GetByID(ctx, id)
	if err == nil {
		span.SetAttributes(attribute.Int("job_offer.applications", len(offer.Applications)))
	}
	endSpan(span, err)
	return offer, err
}

func (r *TracingJobOfferRepository) GetByTitle(ctx context.Context, title string) (domain.JobOffer, error) {
	ctx, span := r.tracer.Start(ctx, "JobOfferRepository.GetByTitle",
		trace.WithAttributes(attribute.String("job_offer.title", title)),
	)

	offer, err := r.next.GetByTitle(ctx, title)
	endSpan(span, err)
	return offer, err
}

func (r *TracingJobOfferRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.JobOffer, error) {
	ctx, span := r.tracer.Start(ctx, "JobOfferRepository.List",
		trace.WithAttributes(
			attribute.String("filter.status", string(filter.Status)),
			attribute.Int("filter.limit", filter.Limit),
			attribute.Int("filter.offset", filter.Offset),
		),
	)

	offers, err := r.next.List(ctx, filter)
	if err == nil {
		span.SetAttributes(attribute.Int("result.count", len(offers)))
	}
	endSpan(span, err)
	return offers, err
}

// TracingJobApplicationRepository wraps a domain.JobApplicationRepository with OpenTelemetry tracing.
type TracingJobApplicationRepository struct {
	next   domain.JobApplicationRepository
	tracer trace.Tracer
}

var _ domain.JobApplicationRepository = (*TracingJobApplicationRepository)(nil)

// NewTracingJobApplicationRepository creates a tracing decorator around the given repository.
func NewTracingJobApplicationRepository(next domain.JobApplicationRepository) *TracingJobApplicationRepository {
	return &TracingJobApplicationRepository{next: next, tracer: otel.Tracer(tracerName)}
}

func (r *TracingJobApplicationRepository) Save(ctx context.Context, app domain.JobApplication) (domain.JobApplication, error) {
	ctx, span := r.tracer.Start(ctx, "JobApplicationRepository.Save",
		trace.WithAttributes(
			attribute.String("job_application.id", app.ID.String()),
			attribute.String("job_application.job_offer_id", app.JobOfferID.String()),
			attribute.String("job_application.status", string(app.Status)),
		),
	)

	saved, err := r.next.Save(ctx, app)
	endSpan(span, err)
	return saved, err
}

func (r *TracingJobApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.JobApplication, error) {
	ctx, span := r.tracer.Start(ctx, "JobApplicationRepository.GetByID",
		trace.WithAttributes(attribute.String("job_application.id", id.String())),
	)

	app, err := r.next.GetByID(ctx, id)
	endSpan(span, err)
	return app, err
}
