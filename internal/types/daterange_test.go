package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRangeContains(t *testing.T) {
	loc := time.FixedZone("WAT", 60*60)
	now := time.Date(2024, time.March, 28, 15, 30, 0, 0, loc)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 9, 0, 0, 0, loc)
	}

	tests := []struct {
		name string
		r    DateRange
		t    time.Time
		want bool
	}{
		{"empty range matches anything", "", day(1999, time.January, 1), true},
		{"today same day", DateRangeToday, day(2024, time.March, 28), true},
		{"today earlier in the day", DateRangeToday, time.Date(2024, time.March, 28, 0, 0, 0, 0, loc), true},
		{"today yesterday", DateRangeToday, day(2024, time.March, 27), false},
		{"this-week today", DateRangeThisWeek, day(2024, time.March, 28), true},
		{"this-week seventh day is inclusive", DateRangeThisWeek, day(2024, time.April, 4), true},
		{"this-week seventh day late evening", DateRangeThisWeek, time.Date(2024, time.April, 4, 23, 59, 0, 0, loc), true},
		{"this-week eighth day", DateRangeThisWeek, day(2024, time.April, 5), false},
		{"this-week yesterday", DateRangeThisWeek, day(2024, time.March, 27), false},
		{"this-month first day", DateRangeThisMonth, day(2024, time.March, 1), true},
		{"this-month next month", DateRangeThisMonth, day(2024, time.April, 1), false},
		{"this-month same month last year", DateRangeThisMonth, day(2023, time.March, 10), false},
		{"next-month inside", DateRangeNextMonth, day(2024, time.April, 30), true},
		{"next-month is not a rolling window", DateRangeNextMonth, day(2024, time.March, 30), false},
		{"upcoming today", DateRangeUpcoming, day(2024, time.March, 28), true},
		{"upcoming past", DateRangeUpcoming, day(2024, time.March, 1), false},
		{"past yesterday", DateRangePast, day(2024, time.March, 27), true},
		{"past today", DateRangePast, day(2024, time.March, 28), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.t, now, loc))
		})
	}
}

func TestDateRangeNextMonthAcrossYear(t *testing.T) {
	now := time.Date(2024, time.December, 15, 12, 0, 0, 0, time.UTC)
	assert.True(t, DateRangeNextMonth.Contains(time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), now, time.UTC))
	assert.False(t, DateRangeNextMonth.Contains(time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), now, time.UTC))
}

func TestParseDateRange(t *testing.T) {
	r, ok := ParseDateRange(" This-Week ")
	assert.True(t, ok)
	assert.Equal(t, DateRangeThisWeek, r)

	_, ok = ParseDateRange("fortnight")
	assert.False(t, ok)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("RealEstate")
	assert.NoError(t, err)
	assert.Equal(t, KindRealEstate, k)
	assert.Equal(t, "real-estate", k.Endpoint())

	k, err = ParseKind("events")
	assert.NoError(t, err)
	assert.Equal(t, KindEvents, k)
	assert.Equal(t, "events", k.Slug())

	assert.Equal(t, "all-users", KindAdmins.Endpoint())

	_, err = ParseKind("worship")
	assert.Error(t, err)
}
