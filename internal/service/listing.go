package service

import (
	"context"
	"strings"

	"github.com/deespora/backoffice/internal/cache"
	"github.com/deespora/backoffice/internal/domain/record"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/listing"
	"github.com/deespora/backoffice/internal/types"
	"github.com/samber/lo"
)

// ListingService loads record lists from the backend and applies view state
// to them. It is shared by every list screen.
type ListingService interface {
	// Load returns every record of kind. Failures yield an empty slice.
	Load(ctx context.Context, kind types.Kind) []record.Record
	// LoadKinds fetches several kinds concurrently and waits for all of them
	LoadKinds(ctx context.Context, kinds ...types.Kind) map[types.Kind][]record.Record
	// LoadAll returns the combined listings view across all listing kinds
	LoadAll(ctx context.Context) []record.Record
	// View loads kind and applies filter, search, sort and pagination.
	// An empty kind views the combined listings. It only fails when ctx was
	// cancelled before the records arrived.
	View(ctx context.Context, kind types.Kind, view listing.ViewState) (*listing.PageResult, error)
	// Get returns a single record or ErrNotFound
	Get(ctx context.Context, kind types.Kind, id string) (*record.Record, error)
	// Invalidate drops cached lists for the given kinds
	Invalidate(ctx context.Context, kinds ...types.Kind)
}

type listingService struct {
	ServiceParams
}

func NewListingService(params ServiceParams) ListingService {
	return &listingService{ServiceParams: params}
}

func (s *listingService) Load(ctx context.Context, kind types.Kind) []record.Record {
	key := cache.GenerateKey(cache.PrefixList, kind)
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, key); ok {
			if recs, ok := cached.([]record.Record); ok {
				return recs
			}
		}
	}

	recs := s.Backend.List(ctx, kind)
	if kind == types.KindAdmins {
		recs = lo.Filter(recs, func(r record.Record, _ int) bool { return r.IsAdmin() })
	}

	// empty results may be a degraded failure; never pin them in the cache
	if s.Cache != nil && len(recs) > 0 {
		s.Cache.Set(ctx, key, recs, 0)
	}
	return recs
}

func (s *listingService) LoadKinds(ctx context.Context, kinds ...types.Kind) map[types.Kind][]record.Record {
	return fetchKinds(ctx, "listings", lo.Uniq(kinds), s.Config.Backend.Timeout, s.Sentry, s.Logger, s.Load)
}

func (s *listingService) LoadAll(ctx context.Context) []record.Record {
	byKind := s.LoadKinds(ctx, types.ListingKinds...)

	all := make([]record.Record, 0)
	for _, kind := range types.ListingKinds {
		all = append(all, byKind[kind]...)
	}
	return all
}

func (s *listingService) View(ctx context.Context, kind types.Kind, view listing.ViewState) (*listing.PageResult, error) {
	var recs []record.Record
	if kind == "" {
		recs = s.LoadAll(ctx)
	} else {
		recs = s.Load(ctx, kind)
	}
	if err := ctx.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("The request was cancelled").
			Mark(ierr.ErrHTTPClient)
	}

	store := s.newStore(kind)
	store.SetRecords(recs)
	result := store.Apply(view)
	return &result, nil
}

func (s *listingService) newStore(kind types.Kind) *listing.Store {
	opts := []listing.Option{
		listing.WithPageSize(s.Config.Listing.PageSize),
		listing.WithLocation(s.Config.Listing.Location()),
		listing.WithClock(s.now),
	}
	if kind == types.KindUsers || kind == types.KindAdmins {
		opts = append(opts, listing.WithSearchFields(listing.UserSearchFields...))
	}
	return listing.NewStore(opts...)
}

func (s *listingService) Get(ctx context.Context, kind types.Kind, id string) (*record.Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ierr.NewError("missing record id").
			WithHint("A record id is required").
			Mark(ierr.ErrValidation)
	}

	rec := s.Backend.Get(ctx, kind, id)
	if rec == nil {
		return nil, ierr.NewErrorf("%s %s not found", kind, id).
			WithHintf("Could not load this %s. It may have been removed, or the backend is unavailable.", strings.ToLower(kind.Label())).
			WithReportableDetails(map[string]any{
				"kind": kind,
				"id":   id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return rec, nil
}

func (s *listingService) Invalidate(ctx context.Context, kinds ...types.Kind) {
	if s.Cache == nil {
		return
	}
	for _, kind := range kinds {
		s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixList, kind))
	}
	s.Cache.DeleteByPrefix(ctx, cache.PrefixCategories)
}
