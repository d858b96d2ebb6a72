package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// ApplicationStatus represents where a candidate stands in the hiring process.
type ApplicationStatus string

const (
	ApplicationStatusApplied  ApplicationStatus = "APPLIED"
	ApplicationStatusInvited  ApplicationStatus = "INVITED"
	ApplicationStatusHired    ApplicationStatus = "HIRED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// ApplicationStatuses lists every accepted application status.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusInvited,
	ApplicationStatusHired,
	ApplicationStatusRejected,
}

// Valid reports whether s is one of ApplicationStatuses.
func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// JobApplication is a candidate's submission against one job offer.
type JobApplication struct {
	InternalID     int64
	ID             uuid.UUID
	JobOfferID     uuid.UUID
	CandidateEmail string
	ResumeText     string
	Status         ApplicationStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// JobApplicationDraft carries the caller-supplied fields of a new application.
type JobApplicationDraft struct {
	CandidateEmail string
	ResumeText     string
}

// Validate checks the field constraints of the draft. The email is checked
// for shape only, never for a resolvable domain.
func (d JobApplicationDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.CandidateEmail, validation.Required, is.EmailFormat, validation.RuneLength(0, 50)),
		validation.Field(&d.ResumeText, notBlank, validation.RuneLength(0, 1000)),
	)
}

// NewJobApplication creates an APPLIED application linked to the given offer.
func NewJobApplication(id uuid.UUID, offerID uuid.UUID, draft JobApplicationDraft) JobApplication {
	now := time.Now().UTC()
	return JobApplication{
		ID:             id,
		JobOfferID:     offerID,
		CandidateEmail: draft.CandidateEmail,
		ResumeText:     draft.ResumeText,
		Status:         ApplicationStatusApplied,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
