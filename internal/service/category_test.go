package service

import (
	"net/http"
	"testing"

	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceSuite struct {
	BaseServiceSuite
	categories CategoryService
}

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}

func (s *CategoryServiceSuite) SetupTest() {
	s.BaseServiceSuite.SetupTest()
	s.categories = NewCategoryService(s.params, s.listings)
}

func (s *CategoryServiceSuite) TestListCountsListings() {
	s.registerDefaults()

	cats := s.categories.List(s.ctx)
	s.Require().Len(cats, 4)

	byID := map[string]Category{}
	for _, c := range cats {
		byID[c.ID] = c
	}
	s.Equal(2, byID["events"].ListingsCount)
	s.Equal(types.StatusActive, byID["events"].Status)
	s.Equal("Real Estate", byID["real-estate"].Name)
	s.Equal(types.StatusInactive, byID["real-estate"].Status)
	s.Equal(types.StatusInactive, byID["catering"].Status)
}

func (s *CategoryServiceSuite) TestToggleIsLocalOnly() {
	s.registerDefaults()

	cat, err := s.categories.Toggle(s.ctx, "events")
	s.Require().NoError(err)
	s.Equal(types.StatusInactive, cat.Status)

	for _, c := range s.categories.List(s.ctx) {
		if c.ID == "events" {
			s.Equal(types.StatusInactive, c.Status)
		}
	}
	for _, req := range s.http.Requests() {
		s.Equal(http.MethodGet, req.Method)
	}

	_, err = s.categories.Toggle(s.ctx, "worship")
	s.True(ierr.IsNotFound(err))
}

func (s *CategoryServiceSuite) TestAdd() {
	s.registerDefaults()

	cat, err := s.categories.Add(s.ctx, "Cakes  &  Pastries", "", true)
	s.Require().NoError(err)
	s.Equal("cakes-&-pastries", cat.Slug)
	s.Equal(types.StatusActive, cat.Status)
	s.Equal(testNow, *cat.CreatedAt)
	s.Len(s.categories.List(s.ctx), 5)

	_, err = s.categories.Add(s.ctx, "Events", "events", false)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.categories.Add(s.ctx, "  ", "", false)
	s.True(ierr.IsValidation(err))
	s.Equal("Please enter a category name", ierr.DisplayMessage(err, ""))
}

func (s *CategoryServiceSuite) TestAddSameSlugConcurrently() {
	s.registerDefaults()
	s.categories.List(s.ctx)

	p := pool.NewWithResults[error]()
	for range 16 {
		p.Go(func() error {
			_, err := s.categories.Add(s.ctx, "Bakeries", "", true)
			return err
		})
	}
	errs := p.Wait()

	ok := lo.CountBy(errs, func(err error) bool { return err == nil })
	s.Equal(1, ok)
	for _, err := range lo.Compact(errs) {
		s.True(ierr.IsInvalidOperation(err))
	}
	s.Equal(1, lo.CountBy(s.categories.List(s.ctx), func(c Category) bool { return c.ID == "bakeries" }))

	_, err := s.categories.Add(s.ctx, "Bakeries again", "bakeries", false)
	s.True(ierr.IsInvalidOperation(err))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "legal-tax", Slugify(" Legal Tax "))
	assert.Equal(t, "deals", Slugify("Deals"))
}
