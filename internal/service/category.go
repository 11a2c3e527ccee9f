package service

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/deespora/backoffice/internal/cache"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/types"
	"github.com/samber/lo"
)

// Category is one row of the category table. Built-in categories mirror the
// listing kinds; added ones exist only in this process.
type Category struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Slug          string             `json:"slug"`
	Kind          types.Kind         `json:"kind,omitempty"`
	ListingsCount int                `json:"listings_count"`
	Status        types.RecordStatus `json:"status"`
	CreatedAt     *time.Time         `json:"created_at,omitempty"`
}

// CategoryService builds the category table from listing counts. Toggle and
// Add change the local table only and are never sent to the backend.
type CategoryService interface {
	List(ctx context.Context) []Category
	Toggle(ctx context.Context, id string) (*Category, error)
	Add(ctx context.Context, name, slug string, active bool) (*Category, error)
}

type categoryService struct {
	ServiceParams
	listings ListingService

	mu      sync.Mutex
	added   []Category
	toggled map[string]types.RecordStatus
}

func NewCategoryService(params ServiceParams, listings ListingService) CategoryService {
	return &categoryService{
		ServiceParams: params,
		listings:      listings,
		toggled:       make(map[string]types.RecordStatus),
	}
}

var slugSeparators = regexp.MustCompile(`\s+`)

// Slugify lowercases name and joins its words with dashes
func Slugify(name string) string {
	return slugSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

func (s *categoryService) List(ctx context.Context) []Category {
	base := s.builtin(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Category, 0, len(base)+len(s.added))
	out = append(out, base...)
	out = append(out, s.added...)
	for i := range out {
		if status, ok := s.toggled[out[i].ID]; ok {
			out[i].Status = status
		}
	}
	return out
}

// builtin returns the listing-kind categories with their counts, cached
// until a listing mutation invalidates them
func (s *categoryService) builtin(ctx context.Context) []Category {
	key := cache.GenerateKey(cache.PrefixCategories, "builtin")
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, key); ok {
			if cats, ok := cached.([]Category); ok {
				return append([]Category(nil), cats...)
			}
		}
	}

	counts := s.listings.LoadKinds(ctx, types.ListingKinds...)
	cats := lo.Map(types.ListingKinds, func(kind types.Kind, _ int) Category {
		n := len(counts[kind])
		status := types.StatusInactive
		if n > 0 {
			status = types.StatusActive
		}
		return Category{
			ID:            kind.Slug(),
			Name:          kind.Label(),
			Slug:          kind.Slug(),
			Kind:          kind,
			ListingsCount: n,
			Status:        status,
		}
	})

	if s.Cache != nil && ctx.Err() == nil {
		s.Cache.Set(ctx, key, cats, 0)
	}
	return append([]Category(nil), cats...)
}

func (s *categoryService) Toggle(ctx context.Context, id string) (*Category, error) {
	cats := s.List(ctx)
	cat, ok := lo.Find(cats, func(c Category) bool { return c.ID == id })
	if !ok {
		return nil, ierr.NewErrorf("category %s not found", id).
			WithHint("Category not found").
			Mark(ierr.ErrNotFound)
	}

	cat.Status = cat.Status.Toggle()

	s.mu.Lock()
	s.toggled[id] = cat.Status
	s.mu.Unlock()

	s.Logger.WithContext(ctx).Infow("category status changed locally",
		"category", id,
		"status", cat.Status,
	)
	return &cat, nil
}

func (s *categoryService) Add(ctx context.Context, name, slug string, active bool) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ierr.NewError("category name is required").
			WithHint("Please enter a category name").
			Mark(ierr.ErrValidation)
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(name)
	}

	taken := func(c Category) bool { return c.ID == slug }
	if lo.ContainsBy(s.builtin(ctx), taken) {
		return nil, errCategoryExists(slug)
	}

	status := types.StatusInactive
	if active {
		status = types.StatusActive
	}
	now := s.now()
	cat := Category{
		ID:        slug,
		Name:      name,
		Slug:      slug,
		Status:    status,
		CreatedAt: &now,
	}

	// the check and the append share one critical section
	s.mu.Lock()
	defer s.mu.Unlock()
	if lo.ContainsBy(s.added, taken) {
		return nil, errCategoryExists(slug)
	}
	s.added = append(s.added, cat)

	return &cat, nil
}

func errCategoryExists(slug string) error {
	return ierr.NewErrorf("category %s already exists", slug).
		WithHint("A category with this slug already exists").
		Mark(ierr.ErrInvalidOperation)
}
