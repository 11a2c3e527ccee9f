package listing

import (
	"sort"

	"github.com/deespora/backoffice/internal/domain/record"
)

type SortOrder string

const (
	SortNone     SortOrder = ""
	SortDateAsc  SortOrder = "date-asc"
	SortDateDesc SortOrder = "date-desc"
)

// ParseSortOrder also accepts "asc", "desc", "oldest" and "newest"
func ParseSortOrder(s string) (SortOrder, bool) {
	switch s {
	case "":
		return SortNone, true
	case "date-asc", "asc", "oldest":
		return SortDateAsc, true
	case "date-desc", "desc", "newest":
		return SortDateDesc, true
	}
	return SortNone, false
}

// SortByDate returns a stably sorted copy of seq ordered by effective date.
// Undated records keep their relative order at the end in both directions.
func SortByDate(seq []record.Record, order SortOrder) []record.Record {
	out := clone(seq)
	if order == SortNone {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].EffectiveDate(), out[j].EffectiveDate()
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case order == SortDateDesc:
			return a.After(*b)
		default:
			return a.Before(*b)
		}
	})
	return out
}
