package record

import (
	"time"

	"github.com/deespora/backoffice/internal/types"
)

// Record is the uniform view of one backend entity (event, user, venue,
// listing). Everything outside Raw is projected from Raw at ingestion time.
type Record struct {
	// ID comes from _id or id; empty when the backend sent neither
	ID string `json:"id"`

	// Kind is the resource kind the record was fetched under
	Kind types.Kind `json:"kind"`

	DisplayName string `json:"display_name"`

	// CreatedAt is nil when the backend did not send a parsable creation date
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// StartDate is the date the listing happens (events) and drives date filters
	StartDate *time.Time `json:"start_date,omitempty"`

	Status types.RecordStatus `json:"status"`

	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Location  string `json:"location,omitempty"`
	Category  string `json:"category,omitempty"`
	Organizer string `json:"organizer,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
	Promoted  bool   `json:"promoted,omitempty"`

	Price *PriceRange `json:"price,omitempty"`

	// Raw is the untouched backend object
	Raw map[string]any `json:"raw,omitempty"`
}

// WithStatus returns a copy of r with its status replaced. Raw is shared.
func (r Record) WithStatus(status types.RecordStatus) Record {
	r.Status = status
	return r
}

// EffectiveDate is the date used for sorting and date range filters: the
// start date when known, else the creation date.
func (r Record) EffectiveDate() *time.Time {
	if r.StartDate != nil {
		return r.StartDate
	}
	return r.CreatedAt
}

// DisplayLocation joins city and state, falling back to the free-form
// location and finally to "N/A".
func (r Record) DisplayLocation() string {
	switch {
	case r.City != "" && r.State != "":
		return r.City + ", " + r.State
	case r.City != "":
		return r.City
	case r.Location != "":
		return r.Location
	default:
		return NotAvailable
	}
}

// Phase classifies an event relative to now: ongoing on its start day,
// upcoming before, past after. Records without a start date are upcoming.
func (r Record) Phase(now time.Time, loc *time.Location) types.EventPhase {
	if r.StartDate == nil {
		return types.EventPhaseUpcoming
	}
	if loc == nil {
		loc = time.Local
	}
	day := types.StartOfDay(*r.StartDate, loc)
	today := types.StartOfDay(now, loc)
	switch {
	case day.After(today):
		return types.EventPhaseUpcoming
	case day.Equal(today):
		return types.EventPhaseOngoing
	default:
		return types.EventPhasePast
	}
}

// IsAdmin reports whether the record is a user with an administrative role.
// Users without a role fall back to the email/name heuristic the admin page
// has always used.
func (r Record) IsAdmin() bool {
	return isAdmin(r)
}

const NotAvailable = "N/A"
