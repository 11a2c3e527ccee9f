package types

import (
	"strings"

	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/samber/lo"
)

// Kind is a resource category served by the backend. The value is the path
// segment of the list endpoint.
type Kind string

const (
	KindEvents      Kind = "all-events"
	KindUsers       Kind = "all-users"
	KindRestaurants Kind = "restaurants"
	KindCatering    Kind = "catering"
	KindRealEstate  Kind = "real-estate"
	// KindListings is the generic listings collection that backs adverts
	KindListings Kind = "listings"
	// KindAdmins has no endpoint of its own; admins are users with an admin role
	KindAdmins Kind = "admins"
)

// ListingKinds are the kinds that make up the combined listings view
var ListingKinds = []Kind{KindEvents, KindRestaurants, KindCatering, KindRealEstate}

// DashboardKinds are fetched together when the dashboard loads
var DashboardKinds = []Kind{KindEvents, KindUsers, KindRestaurants, KindCatering, KindRealEstate}

var kindAliases = map[string]Kind{
	"events":      KindEvents,
	"all-events":  KindEvents,
	"users":       KindUsers,
	"all-users":   KindUsers,
	"restaurants": KindRestaurants,
	"catering":    KindCatering,
	"real-estate": KindRealEstate,
	"realestate":  KindRealEstate,
	"listings":    KindListings,
	"adverts":     KindListings,
	"admins":      KindAdmins,
}

var kindLabels = map[Kind]string{
	KindEvents:      "Events",
	KindUsers:       "Users",
	KindRestaurants: "Restaurants",
	KindCatering:    "Catering",
	KindRealEstate:  "Real Estate",
	KindListings:    "Listings",
	KindAdmins:      "Admins",
}

// ParseKind resolves a user supplied kind or slug ("events", "realestate")
// to its canonical Kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ierr.NewErrorf("unknown kind %q", s).
			WithHintf("Unknown resource kind %q", s).
			WithReportableDetails(map[string]any{
				"allowed": lo.Keys(kindAliases),
			}).
			Mark(ierr.ErrValidation)
	}
	return k, nil
}

// Endpoint returns the list endpoint path segment for the kind
func (k Kind) Endpoint() string {
	if k == KindAdmins {
		return string(KindUsers)
	}
	return string(k)
}

// Label returns the human readable name of the kind
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return kindLabels[KindEvents]
}

// Slug returns the short form used in URLs and category ids
func (k Kind) Slug() string {
	return strings.TrimPrefix(string(k), "all-")
}

func (k Kind) IsListing() bool {
	return lo.Contains(ListingKinds, k)
}

func (k Kind) String() string {
	return string(k)
}
