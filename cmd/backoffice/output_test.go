package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/deespora/backoffice/internal/domain/record"
	"github.com/deespora/backoffice/internal/service"
	"github.com/deespora/backoffice/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "N/A", formatDate(nil, time.UTC))

	ts := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mon, Jun 10, 2024", formatDate(&ts, time.UTC))

	assert.Equal(t, "Tue, Jun 11, 2024", formatDate(&ts, time.FixedZone("UTC+2", 2*60*60)))
}

func TestPrintRecords(t *testing.T) {
	ts := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	err := printRecords(&buf, []record.Record{
		{ID: "e1", Kind: types.KindEvents, DisplayName: "Jazz Night", Status: types.StatusActive, StartDate: &ts, City: "Houston", State: "TX"},
		{ID: "r1", Kind: types.KindRestaurants, Status: types.StatusUnknown},
	}, time.UTC)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Jazz Night")
	assert.Contains(t, lines[1], "events")
	assert.Contains(t, lines[1], "Mon, Jun 10, 2024")
	assert.Contains(t, lines[2], "Unknown")
	assert.Contains(t, lines[2], "N/A")
}

func TestPrintDashboardEvents(t *testing.T) {
	ts := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	err := printDashboardEvents(&buf, []service.DashboardEvent{
		{Record: record.Record{ID: "e1", DisplayName: "Jazz Night", StartDate: &ts}, Phase: types.EventPhaseOngoing},
		{Record: record.Record{ID: "e2"}, Phase: types.EventPhaseUpcoming},
	}, time.UTC)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "PHASE")
	assert.Contains(t, lines[1], "Ongoing")
	assert.Contains(t, lines[1], "Mon, Jun 10, 2024")
	assert.Contains(t, lines[2], "Upcoming")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := confirm(bufio.NewReader(strings.NewReader(tt.input)), &out, "Delete?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Delete? [y/N] ", out.String())
	}
}
