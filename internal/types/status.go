package types

import "strings"

// RecordStatus is the tri-state classification derived from the many status
// fields the backend uses.
type RecordStatus string

const (
	StatusActive   RecordStatus = "active"
	StatusInactive RecordStatus = "inactive"
	StatusUnknown  RecordStatus = "unknown"
)

// ParseRecordStatus accepts the values operators type in filters. The empty
// string parses to the empty status, which filters treat as "any".
func ParseRecordStatus(s string) (RecordStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", true
	case "active":
		return StatusActive, true
	case "inactive", "suspended":
		return StatusInactive, true
	case "unknown":
		return StatusUnknown, true
	}
	return "", false
}

// Label is the capitalised form shown in tables
func (s RecordStatus) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	default:
		return "Unknown"
	}
}

// Toggle flips Active and Inactive. Unknown becomes Active.
func (s RecordStatus) Toggle() RecordStatus {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// EventPhase is the time based label shown for events on the dashboard
type EventPhase string

const (
	EventPhaseUpcoming EventPhase = "upcoming"
	EventPhaseOngoing  EventPhase = "ongoing"
	EventPhasePast     EventPhase = "past"
)

// ParseEventPhase accepts the phase names shown on the dashboard. The empty
// string parses to the empty phase, which filters treat as "any".
func ParseEventPhase(s string) (EventPhase, bool) {
	switch p := EventPhase(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return "", true
	case EventPhaseUpcoming, EventPhaseOngoing, EventPhasePast:
		return p, true
	}
	return "", false
}

func (p EventPhase) Label() string {
	switch p {
	case EventPhaseUpcoming:
		return "Upcoming"
	case EventPhaseOngoing:
		return "Ongoing"
	case EventPhasePast:
		return "Past"
	default:
		return ""
	}
}
