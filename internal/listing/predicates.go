package listing

import (
	"strings"
	"time"

	"github.com/deespora/backoffice/internal/domain/record"
	"github.com/deespora/backoffice/internal/types"
)

// Predicates are ANDed together. A zero value dimension matches everything.
type Predicates struct {
	Status    types.RecordStatus `json:"status,omitempty"`
	Category  string             `json:"category,omitempty"`
	DateRange types.DateRange    `json:"date,omitempty"`
	Location  string             `json:"location,omitempty"`
	Role      string             `json:"role,omitempty"`
	Phase     types.EventPhase   `json:"phase,omitempty"`
}

func (p Predicates) IsZero() bool {
	return p == Predicates{}
}

// Match reports whether r satisfies every set predicate. Date ranges are
// evaluated against r.EffectiveDate; undated records never match a range.
// Phase only ever matches events.
func (p Predicates) Match(r record.Record, now time.Time, loc *time.Location) bool {
	if p.Status != "" && r.Status != p.Status {
		return false
	}
	if p.Category != "" && !matchCategory(r, p.Category) {
		return false
	}
	if p.DateRange != "" {
		date := r.EffectiveDate()
		if date == nil || !p.DateRange.Contains(*date, now, loc) {
			return false
		}
	}
	if p.Location != "" && !matchLocation(r, p.Location) {
		return false
	}
	if p.Role != "" && !strings.EqualFold(strings.TrimSpace(r.Role), strings.TrimSpace(p.Role)) {
		return false
	}
	if p.Phase != "" && (r.Kind != types.KindEvents || r.Phase(now, loc) != p.Phase) {
		return false
	}
	return true
}

// matchCategory accepts either the record's own category or its kind, so
// "restaurants" selects every restaurant in a combined listing view
func matchCategory(r record.Record, category string) bool {
	category = strings.TrimSpace(category)
	if strings.EqualFold(r.Category, category) {
		return true
	}
	if kind, err := types.ParseKind(category); err == nil {
		return r.Kind == kind
	}
	return false
}

func matchLocation(r record.Record, location string) bool {
	needle := strings.ToLower(strings.TrimSpace(location))
	for _, hay := range []string{r.City, r.State, r.Location} {
		if hay != "" && strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

// Filter returns the records of seq that match p, preserving order
func Filter(seq []record.Record, p Predicates, now time.Time, loc *time.Location) []record.Record {
	if p.IsZero() {
		return clone(seq)
	}
	out := make([]record.Record, 0, len(seq))
	for _, r := range seq {
		if p.Match(r, now, loc) {
			out = append(out, r)
		}
	}
	return out
}

// Search keeps the records where any of fields contains term, ignoring case.
// An empty or blank term keeps everything.
func Search(seq []record.Record, term string, fields ...SearchField) []record.Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return clone(seq)
	}
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}
	out := make([]record.Record, 0, len(seq))
	for _, r := range seq {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(r)), term) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func clone(seq []record.Record) []record.Record {
	out := make([]record.Record, len(seq))
	copy(out, seq)
	return out
}
