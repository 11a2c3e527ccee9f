// Package listing holds the client side search, filter, sort and pagination
// applied to every admin list view.
package listing

import (
	"sync"
	"time"

	"github.com/deespora/backoffice/internal/domain/record"
	"github.com/deespora/backoffice/internal/types"
)

// ViewState is the transient state of one list view. It belongs to the
// caller and is passed into Apply; the store never keeps it.
type ViewState struct {
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Search   string     `json:"search,omitempty"`
	Filter   Predicates `json:"filter"`
	Sort     SortOrder  `json:"sort,omitempty"`
}

// Store holds the last fetched record sequence of a view and a page cursor
type Store struct {
	mu       sync.RWMutex
	records  []record.Record
	page     int
	pageSize int
	fields   []SearchField
	now      func() time.Time
	loc      *time.Location
}

type Option func(*Store)

// WithSearchFields replaces the fields Search matches against
func WithSearchFields(fields ...SearchField) Option {
	return func(s *Store) {
		if len(fields) > 0 {
			s.fields = fields
		}
	}
}

// WithClock injects the time source used by date range predicates
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the timezone calendar days are computed in
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithPageSize sets the page size used when a ViewState does not carry one
func WithPageSize(size int) Option {
	return func(s *Store) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		records:  []record.Record{},
		page:     1,
		pageSize: types.DefaultPageSize,
		fields:   DefaultSearchFields,
		now:      time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetRecords replaces the full sequence and resets the cursor to page 1
func (s *Store) SetRecords(seq []record.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = clone(seq)
	s.page = 1
}

// Records returns a copy of the full sequence
func (s *Store) Records() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.records)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) Search(term string) []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Search(s.records, term, s.fields...)
}

func (s *Store) Filter(p Predicates) []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.records, p, s.now(), s.loc)
}

func (s *Store) SortByDate(order SortOrder) []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SortByDate(s.records, order)
}

// Page returns page n of the full sequence and moves the cursor there
func (s *Store) Page(n, size int) PageResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := Paginate(s.records, n, size)
	s.page = result.Page
	return result
}

// Apply runs filter, search, sort and pagination for a view in that order
// and moves the cursor to the resulting page
func (s *Store) Apply(view ViewState) PageResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := Filter(s.records, view.Filter, s.now(), s.loc)
	seq = Search(seq, view.Search, s.fields...)
	if view.Sort != SortNone {
		seq = SortByDate(seq, view.Sort)
	}

	size := view.PageSize
	if size < 1 {
		size = s.pageSize
	}
	page := view.Page
	if page == 0 {
		page = s.page
	}

	result := Paginate(seq, page, size)
	s.page = result.Page
	return result
}

func (s *Store) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// SetPage moves the cursor without clamping; the next Page or Apply clamps it
func (s *Store) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = n
}
