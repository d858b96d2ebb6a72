package http

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/CATIGERN/job-applications/internal/domain"
)

// toHumaError translates domain errors to Huma HTTP errors.
func toHumaError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return huma.Error404NotFound(message(err))
	case errors.Is(err, domain.ErrConflict):
		return huma.Error409Conflict(message(err))
	case errors.Is(err, domain.ErrInvalidInput):
		return huma.Error400BadRequest(message(err))
	}
	return huma.Error500InternalServerError("internal server error")
}

// message returns the caller-facing text of a domain error, without the
// context added by wrapping.
func message(err error) string {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	var titleErr *domain.TitleConflictError
	if errors.As(err, &titleErr) {
		return titleErr.Error()
	}

	var trErr *domain.TransitionError
	if errors.As(err, &trErr) {
		return trErr.Error()
	}

	return err.Error()
}

// parseID parses a path identifier. A malformed id cannot address any
// entity, so it reports as notFound.
func parseID(raw string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, toHumaError(notFound)
	}
	return id, nil
}
