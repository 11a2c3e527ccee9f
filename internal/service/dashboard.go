package service

import (
	"context"
	"time"

	"github.com/deespora/backoffice/internal/domain/record"
	"github.com/deespora/backoffice/internal/types"
	"github.com/samber/lo"
)

// newUserWindow is how far back a signup still counts as new
const newUserWindow = 7 * 24 * time.Hour

type DashboardStats struct {
	TotalUsers       int `json:"total_users"`
	ActiveUsers      int `json:"active_users"`
	ChurnedUsers     int `json:"churned_users"`
	NewUsersThisWeek int `json:"new_users_this_week"`
	TotalListings    int `json:"total_listings"`
	Events           int `json:"events"`
	Restaurants      int `json:"restaurants"`
	Catering         int `json:"catering"`
	RealEstate       int `json:"real_estate"`
}

// DashboardEvent is an event labelled with where it sits relative to today
type DashboardEvent struct {
	record.Record
	Phase types.EventPhase `json:"phase"`
}

type Dashboard struct {
	Stats  DashboardStats   `json:"stats"`
	Events []DashboardEvent `json:"events"`
}

type DashboardService interface {
	// Load fetches every dashboard kind at once and never fails; a kind that
	// could not be fetched counts as empty
	Load(ctx context.Context) *Dashboard
}

type dashboardService struct {
	ServiceParams
	listings ListingService
}

func NewDashboardService(params ServiceParams, listings ListingService) DashboardService {
	return &dashboardService{
		ServiceParams: params,
		listings:      listings,
	}
}

func (s *dashboardService) Load(ctx context.Context) *Dashboard {
	byKind := s.listings.LoadKinds(ctx, types.DashboardKinds...)

	now := s.now()
	stats := ComputeDashboardStats(byKind, now)
	s.Logger.WithContext(ctx).Debugw("dashboard loaded",
		"users", stats.TotalUsers,
		"listings", stats.TotalListings,
	)

	return &Dashboard{
		Stats:  stats,
		Events: LabelEventPhases(byKind[types.KindEvents], now, s.Config.Listing.Location()),
	}
}

// LabelEventPhases pairs each event with its phase as of now in loc
func LabelEventPhases(events []record.Record, now time.Time, loc *time.Location) []DashboardEvent {
	return lo.Map(events, func(r record.Record, _ int) DashboardEvent {
		return DashboardEvent{Record: r, Phase: r.Phase(now, loc)}
	})
}

// ComputeDashboardStats derives the dashboard counters from fetched records.
// Churned users are every user not classified active.
func ComputeDashboardStats(byKind map[types.Kind][]record.Record, now time.Time) DashboardStats {
	users := byKind[types.KindUsers]
	since := now.Add(-newUserWindow)

	stats := DashboardStats{
		TotalUsers: len(users),
		ActiveUsers: lo.CountBy(users, func(r record.Record) bool {
			return r.Status == types.StatusActive
		}),
		NewUsersThisWeek: lo.CountBy(users, func(r record.Record) bool {
			return r.CreatedAt != nil && !r.CreatedAt.Before(since)
		}),
		Events:      len(byKind[types.KindEvents]),
		Restaurants: len(byKind[types.KindRestaurants]),
		Catering:    len(byKind[types.KindCatering]),
		RealEstate:  len(byKind[types.KindRealEstate]),
	}
	stats.ChurnedUsers = stats.TotalUsers - stats.ActiveUsers
	stats.TotalListings = stats.Events + stats.Restaurants + stats.Catering + stats.RealEstate
	return stats
}
