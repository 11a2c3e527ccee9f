package types

import (
	"strings"
	"time"
)

// DateRange is a named calendar window used by listing filters
type DateRange string

const (
	DateRangeToday     DateRange = "today"
	DateRangeThisWeek  DateRange = "this-week"
	DateRangeThisMonth DateRange = "this-month"
	DateRangeNextMonth DateRange = "next-month"
	DateRangeUpcoming  DateRange = "upcoming"
	DateRangePast      DateRange = "past"
)

// ParseDateRange returns false for names it does not know. The empty string is
// valid and means no date filter.
func ParseDateRange(s string) (DateRange, bool) {
	r := DateRange(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case "", DateRangeToday, DateRangeThisWeek, DateRangeThisMonth,
		DateRangeNextMonth, DateRangeUpcoming, DateRangePast:
		return r, true
	}
	return "", false
}

// Contains reports whether t falls inside the range relative to now. Both are
// compared as calendar days in loc; this-week spans today through today+7
// inclusive and the month ranges are calendar months, not rolling windows.
func (r DateRange) Contains(t, now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	day := StartOfDay(t, loc)
	today := StartOfDay(now, loc)

	switch r {
	case "":
		return true
	case DateRangeToday:
		return day.Equal(today)
	case DateRangeThisWeek:
		weekFromNow := today.AddDate(0, 0, 7)
		return !day.Before(today) && !day.After(weekFromNow)
	case DateRangeThisMonth:
		return sameMonth(day, today)
	case DateRangeNextMonth:
		firstOfNext := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, loc)
		return sameMonth(day, firstOfNext)
	case DateRangeUpcoming:
		return !day.Before(today)
	case DateRangePast:
		return day.Before(today)
	default:
		return true
	}
}

// StartOfDay truncates t to local midnight in loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
