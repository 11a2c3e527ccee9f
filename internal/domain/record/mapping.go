package record

import (
	"strings"
	"time"

	"github.com/deespora/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// DefaultStatus is assigned when a record carries no status signal at all.
// The admin pages have always shown such records as active.
var DefaultStatus = types.StatusActive

var adminRoles = []string{"admin", "super-admin", "administrator"}

// FromResult maps one backend object to a Record. It never fails: missing or
// malformed fields fall back to empty values, "N/A" or DefaultStatus.
func FromResult(obj gjson.Result, kind types.Kind) Record {
	rec := Record{
		ID:          extractID(obj),
		Kind:        kind,
		DisplayName: extractDisplayName(obj),
		CreatedAt:   parseTime(firstOf(obj, "createdAt", "onboardingDate", "created_at")),
		StartDate:   extractStartDate(obj),
		Status:      MapStatus(obj),
		Email:       stringOf(obj, "email"),
		Phone:       stringOf(obj, "phoneNumber", "phone"),
		Role:        stringOf(obj, "role"),
		Location:    locationText(obj),
		Category:    extractCategory(obj, kind),
		Organizer:   extractOrganizer(obj),
		Promoted:    obj.Get("promoted").Bool() || obj.Get("isPromoted").Bool(),
		Price:       extractPrice(obj),
	}
	rec.City, rec.State = extractCityState(obj)

	if raw, ok := obj.Value().(map[string]any); ok {
		rec.Raw = raw
	}
	return rec
}

// MapStatus derives the tri-state status from whichever status field the
// backend used for this kind.
func MapStatus(obj gjson.Result) types.RecordStatus {
	if code := obj.Get("dates.status.code"); code.Type == gjson.String && strings.TrimSpace(code.String()) != "" {
		switch strings.ToLower(strings.TrimSpace(code.String())) {
		case "onsale":
			return types.StatusActive
		case "offsale", "cancelled", "canceled":
			return types.StatusInactive
		default:
			return types.StatusUnknown
		}
	}

	for _, key := range []string{"status", "isActive"} {
		if v := obj.Get(key); v.IsBool() {
			if v.Bool() {
				return types.StatusActive
			}
			return types.StatusInactive
		}
	}

	if v := obj.Get("status"); v.Type == gjson.String {
		switch strings.ToLower(strings.TrimSpace(v.String())) {
		case "active", "onsale":
			return types.StatusActive
		case "inactive", "suspended", "disabled", "offsale", "cancelled":
			return types.StatusInactive
		case "unknown":
			return types.StatusUnknown
		}
	}

	return DefaultStatus
}

func extractID(obj gjson.Result) string {
	for _, key := range []string{"_id", "id"} {
		v := obj.Get(key)
		switch {
		case !v.Exists() || v.Type == gjson.Null:
			continue
		case v.IsObject():
			// extended JSON form {"$oid": "..."}
			if oid := v.Get("$oid"); oid.Exists() {
				return oid.String()
			}
			continue
		case v.Type == gjson.Number:
			return v.String()
		default:
			if s := strings.TrimSpace(v.String()); s != "" {
				return s
			}
		}
	}
	return ""
}

func extractDisplayName(obj gjson.Result) string {
	if name := stringOf(obj, "title", "name"); name != "" {
		return name
	}
	full := strings.TrimSpace(stringOf(obj, "firstName") + " " + stringOf(obj, "lastName"))
	if full != "" {
		return full
	}
	return NotAvailable
}

func extractStartDate(obj gjson.Result) *time.Time {
	if local := obj.Get("dates.start.localDate"); local.Type == gjson.String {
		value := local.String()
		if lt := obj.Get("dates.start.localTime"); lt.Type == gjson.String && lt.String() != "" {
			value += "T" + lt.String()
		}
		if t := parseTime(gjson.Result{Type: gjson.String, Str: value}); t != nil {
			return t
		}
	}
	if dt := obj.Get("dates.start.dateTime"); dt.Exists() {
		if t := parseTime(dt); t != nil {
			return t
		}
	}
	return parseTime(firstOf(obj, "date", "startDate", "eventDate"))
}

func extractCityState(obj gjson.Result) (string, string) {
	venue := obj.Get("_embedded.venues.0")
	city := stringOf(venue, "city.name")
	if city == "" {
		city = stringOf(obj, "city", "address.city")
	}
	state := stringOf(venue, "state.stateCode", "state.name")
	if state == "" {
		state = stringOf(obj, "state", "address.state")
	}
	return city, state
}

func locationText(obj gjson.Result) string {
	if loc := obj.Get("location"); loc.Type == gjson.String {
		return strings.TrimSpace(loc.String())
	}
	if venue := stringOf(obj, "_embedded.venues.0.name", "venue.name", "venue"); venue != "" {
		return venue
	}
	return stringOf(obj, "address.street", "address")
}

func extractCategory(obj gjson.Result, kind types.Kind) string {
	if c := stringOf(obj, "category.name", "category", "type", "_categoryType"); c != "" {
		return c
	}
	if c := stringOf(obj, "classifications.0.segment.name"); c != "" {
		return c
	}
	if kind.IsListing() {
		return kind.Label()
	}
	return ""
}

func extractOrganizer(obj gjson.Result) string {
	return stringOf(obj, "organizer.name", "organizer", "createdBy.name", "createdBy", "promoter.name")
}

func isAdmin(r Record) bool {
	if r.Role != "" {
		return lo.Contains(adminRoles, strings.ToLower(strings.TrimSpace(r.Role)))
	}
	email := strings.ToLower(r.Email)
	first, _ := r.Raw["firstName"].(string)
	first = strings.ToLower(first)
	return strings.Contains(email, "admin") || strings.Contains(first, "admin")
}

// stringOf returns the first non-empty string or number found at paths
func stringOf(obj gjson.Result, paths ...string) string {
	for _, p := range paths {
		v := obj.Get(p)
		if v.Type == gjson.String || v.Type == gjson.Number {
			if s := strings.TrimSpace(v.String()); s != "" {
				return s
			}
		}
	}
	return ""
}

func firstOf(obj gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := obj.Get(p); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}
