package record

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DisplayDateLayout is how dates are shown to operators and written to exports
const DisplayDateLayout = "Mon, Jan 2, 2006"

// zone-less layouts are interpreted in local time
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	DisplayDateLayout,
}

func parseTime(v gjson.Result) *time.Time {
	switch v.Type {
	case gjson.Number:
		// epoch milliseconds
		ms := v.Int()
		if ms <= 0 {
			return nil
		}
		t := time.UnixMilli(ms)
		return &t
	case gjson.String:
		return ParseTime(v.String())
	default:
		return nil
	}
}

// ParseTime accepts RFC 3339 timestamps and the handful of date-only formats
// the backend and CSV imports use. It returns nil for anything else.
func ParseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}
