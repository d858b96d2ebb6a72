package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
)

// OfferStatus represents the lifecycle state of a job offer.
type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "ACTIVE"
	OfferStatusInactive OfferStatus = "INACTIVE"
)

// OfferEvent represents an action that triggers an offer state transition.
type OfferEvent string

const (
	OfferEventDeactivate OfferEvent = "deactivate"
)

// Transition defines a valid state change: an event moves an offer from Src to Dst.
type Transition struct {
	Event OfferEvent
	Src   OfferStatus
	Dst   OfferStatus
}

// Transitions defines all valid state changes in the job offer lifecycle.
// There is no way back to ACTIVE. Deactivating an inactive offer keeps it inactive.
var Transitions = []Transition{
	{Event: OfferEventDeactivate, Src: OfferStatusActive, Dst: OfferStatusInactive},
	{Event: OfferEventDeactivate, Src: OfferStatusInactive, Dst: OfferStatusInactive},
}

// JobOffer is a published position with a fixed number of vacancies.
type JobOffer struct {
	InternalID   int64
	ID           uuid.UUID
	Title        string
	Description  string
	Location     string
	StartDate    string
	Vacancies    int
	Status       OfferStatus
	Applications []JobApplication
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// JobOfferDraft carries the caller-supplied fields of a new job offer.
type JobOfferDraft struct {
	Title       string
	Description string
	Location    string
	StartDate   string
	Vacancies   int
}

// Validate checks the field constraints of the draft. The calendar validity of
// StartDate is checked separately by ValidStartDate.
func (d JobOfferDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, notBlank, validation.RuneLength(0, 50)),
		validation.Field(&d.Description, notBlank, validation.RuneLength(0, 1000)),
		validation.Field(&d.Location, notBlank, validation.RuneLength(0, 50)),
		validation.Field(&d.StartDate, validation.Required, validation.RuneLength(0, 10)),
		validation.Field(&d.Vacancies, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

var startDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidStartDate reports whether s is a YYYY-MM-DD string naming a real calendar date.
func ValidStartDate(s string) bool {
	if !startDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// NewJobOffer creates an ACTIVE offer from a draft.
func NewJobOffer(id uuid.UUID, draft JobOfferDraft) JobOffer {
	now := time.Now().UTC()
	return JobOffer{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Location:    draft.Location,
		StartDate:   draft.StartDate,
		Vacancies:   draft.Vacancies,
		Status:      OfferStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasApplicant reports whether an application with exactly this email exists
// in the loaded association. The comparison is case-sensitive.
func (o JobOffer) HasApplicant(email string) bool {
	for _, a := range o.Applications {
		if a.CandidateEmail == email {
			return true
		}
	}
	return false
}

// HiredCount returns the number of HIRED applications in the loaded association.
func (o JobOffer) HiredCount() int {
	n := 0
	for _, a := range o.Applications {
		if a.Status == ApplicationStatusHired {
			n++
		}
	}
	return n
}

// ApplicationsWithStatus filters the loaded association by status, then skips
// offset entries and keeps at most limit.
func (o JobOffer) ApplicationsWithStatus(status ApplicationStatus, limit, offset int) []JobApplication {
	out := make([]JobApplication, 0)
	skipped := 0
	for _, a := range o.Applications {
		if len(out) == limit {
			break
		}
		if a.Status != status {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, a)
	}
	return out
}

// SyncApplication replaces the association entry with the same ID, so that
// counts over Applications see the change without reloading.
func (o *JobOffer) SyncApplication(app JobApplication) {
	for i := range o.Applications {
		if o.Applications[i].ID == app.ID {
			o.Applications[i] = app
			return
		}
	}
	o.Applications = append(o.Applications, app)
}

var notBlank = validation.By(func(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
})
