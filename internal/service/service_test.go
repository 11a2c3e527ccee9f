package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/deespora/backoffice/internal/backend"
	"github.com/deespora/backoffice/internal/cache"
	"github.com/deespora/backoffice/internal/config"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/listing"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/normalizer"
	"github.com/deespora/backoffice/internal/sentry"
	"github.com/deespora/backoffice/internal/session"
	"github.com/deespora/backoffice/internal/testutil"
	"github.com/deespora/backoffice/internal/types"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

const usersBody = `{"success":true,"data":{"users":[
	{"_id":"u1","firstName":"Ada","lastName":"Obi","email":"ada@example.com","phoneNumber":"555-0101","status":"Active","createdAt":"2024-06-08T09:00:00Z"},
	{"_id":"u2","firstName":"Ben","lastName":"Eze","email":"ben@example.com","status":"Suspended","createdAt":"2024-01-02T09:00:00Z"},
	{"_id":"u3","firstName":"Root","email":"root@example.com","role":"super-admin","isActive":true,"createdAt":"2024-06-04T09:00:00Z"}
]}}`

const eventsBody = `[
	{"id":"e1","name":"Jazz Night","dates":{"start":{"localDate":"2024-06-12"},"status":{"code":"onsale"}},"_embedded":{"venues":[{"city":{"name":"Austin"},"state":{"stateCode":"TX"}}]}},
	{"id":"e2","name":"Food Fair","dates":{"start":{"localDate":"2024-05-01"},"status":{"code":"offsale"}}}
]`

// BaseServiceSuite wires services against a mock backend
type BaseServiceSuite struct {
	suite.Suite
	ctx      context.Context
	http     *testutil.MockHTTPClient
	params   ServiceParams
	sessions *session.MemoryStore
	listings ListingService
}

func (s *BaseServiceSuite) SetupTest() {
	cfg := config.GetDefaultConfig()
	cfg.Backend.BaseURL = "https://backend.test"
	cfg.Backend.Timeout = time.Second
	cfg.Listing.Timezone = "UTC"
	cfg.Listing.PageSize = 2

	log := logger.NewNoopLogger()
	n := normalizer.New(log)
	sentrySvc := sentry.NewSentryService(cfg, log)

	s.ctx = testutil.SetupContext()
	s.http = testutil.NewMockHTTPClient()
	s.sessions = session.NewMemoryStore()

	client := backend.NewClient(cfg, s.http, n, log, sentrySvc)
	s.params = NewServiceParams(log, cfg, client, n, cache.NewInMemoryCache(cfg), sentrySvc, s.sessions)
	s.params.Now = func() time.Time { return testNow }
	s.listings = NewListingService(s.params)
}

func (s *BaseServiceSuite) registerDefaults() {
	s.http.RegisterJSON(http.MethodGet, "/all-users", http.StatusOK, usersBody)
	s.http.RegisterJSON(http.MethodGet, "/all-events", http.StatusOK, eventsBody)
	s.http.RegisterJSON(http.MethodGet, "/restaurants", http.StatusOK, `{"data":[{"_id":"r1","name":"Suya Spot","city":"Houston"}]}`)
	s.http.RegisterJSON(http.MethodGet, "/catering", http.StatusOK, `{"listings":[]}`)
	s.http.RegisterResponse(http.MethodGet, "/real-estate", testutil.MockResponse{StatusCode: http.StatusInternalServerError, Body: []byte(`{"message":"boom"}`)})
}

func (s *BaseServiceSuite) countRequests(method, suffix string) int {
	n := 0
	for _, req := range s.http.Requests() {
		if req.Method == method && strings.HasSuffix(req.URL, suffix) {
			n++
		}
	}
	return n
}

type ListingServiceSuite struct {
	BaseServiceSuite
}

func TestListingService(t *testing.T) {
	suite.Run(t, new(ListingServiceSuite))
}

func (s *ListingServiceSuite) TestLoadCachesNonEmptyResults() {
	s.registerDefaults()

	first := s.listings.Load(s.ctx, types.KindUsers)
	second := s.listings.Load(s.ctx, types.KindUsers)
	s.Len(first, 3)
	s.Equal(first, second)
	s.Equal(1, s.countRequests(http.MethodGet, "/all-users"))

	s.listings.Invalidate(s.ctx, types.KindUsers)
	s.listings.Load(s.ctx, types.KindUsers)
	s.Equal(2, s.countRequests(http.MethodGet, "/all-users"))
}

func (s *ListingServiceSuite) TestFailuresAreEmptyAndNotCached() {
	s.registerDefaults()

	s.Empty(s.listings.Load(s.ctx, types.KindRealEstate))
	s.Empty(s.listings.Load(s.ctx, types.KindRealEstate))
	s.Equal(2, s.countRequests(http.MethodGet, "/real-estate"))
}

func (s *ListingServiceSuite) TestAdminsAreFilteredUsers() {
	s.registerDefaults()

	admins := s.listings.Load(s.ctx, types.KindAdmins)
	s.Require().Len(admins, 1)
	s.Equal("u3", admins[0].ID)
}

func (s *ListingServiceSuite) TestLoadAllSurvivesFailingKind() {
	s.registerDefaults()

	all := s.listings.LoadAll(s.ctx)
	s.Len(all, 3)
	s.Equal(types.KindEvents, all[0].Kind)
	s.Equal(types.KindRestaurants, all[2].Kind)
}

func (s *ListingServiceSuite) TestLoadKindsTimesOutSlowBranch() {
	s.registerDefaults()
	s.params.Config.Backend.Timeout = 50 * time.Millisecond
	s.http.RegisterResponse(http.MethodGet, "/catering", testutil.MockResponse{
		Body:  []byte(`[{"_id":"c1","name":"Late"}]`),
		Delay: time.Second,
	})

	start := time.Now()
	byKind := s.listings.LoadKinds(s.ctx, types.KindCatering, types.KindRestaurants)
	s.Less(time.Since(start), 900*time.Millisecond)
	s.Empty(byKind[types.KindCatering])
	s.NotNil(byKind[types.KindCatering])
	s.Len(byKind[types.KindRestaurants], 1)
}

func (s *ListingServiceSuite) TestLoadKindsHonoursParentCancellation() {
	s.registerDefaults()
	for _, path := range []string{"/restaurants", "/all-events"} {
		s.http.RegisterResponse(http.MethodGet, path, testutil.MockResponse{
			Body:  []byte(`[{"_id":"r1"}]`),
			Delay: time.Second,
		})
	}

	ctx, cancel := context.WithCancel(s.ctx)
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	byKind := s.listings.LoadKinds(ctx, types.KindRestaurants, types.KindEvents)
	s.Empty(byKind[types.KindRestaurants])
	s.Empty(byKind[types.KindEvents])
}

func (s *ListingServiceSuite) TestView() {
	s.registerDefaults()

	result, err := s.listings.View(s.ctx, types.KindUsers, listingView("", "", 1))
	s.Require().NoError(err)
	s.Equal(3, result.TotalCount)
	s.Equal(2, result.TotalPages)
	s.Len(result.Items, 2)

	result, err = s.listings.View(s.ctx, types.KindUsers, listingView("ben@", "", 1))
	s.Require().NoError(err)
	s.Require().Len(result.Items, 1)
	s.Equal("u2", result.Items[0].ID)

	result, err = s.listings.View(s.ctx, types.KindUsers, listingView("", types.StatusInactive, 9))
	s.Require().NoError(err)
	s.Equal(1, result.Page)
	s.Equal(1, result.TotalCount)
}

func (s *ListingServiceSuite) TestViewCancelled() {
	s.registerDefaults()
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.listings.View(ctx, types.KindUsers, listingView("", "", 1))
	s.Error(err)
}

func (s *ListingServiceSuite) TestGet() {
	s.http.RegisterJSON(http.MethodGet, "/restaurants/r1", http.StatusOK, `{"data":{"_id":"r1","name":"Suya Spot"}}`)

	rec, err := s.listings.Get(s.ctx, types.KindRestaurants, "r1")
	s.Require().NoError(err)
	s.Equal("Suya Spot", rec.DisplayName)

	_, err = s.listings.Get(s.ctx, types.KindRestaurants, "missing")
	s.True(ierr.IsNotFound(err))

	_, err = s.listings.Get(s.ctx, types.KindRestaurants, " ")
	s.True(ierr.IsValidation(err))
}

func listingView(search string, status types.RecordStatus, page int) listing.ViewState {
	return listing.ViewState{
		Page:   page,
		Search: search,
		Filter: listing.Predicates{Status: status},
	}
}
