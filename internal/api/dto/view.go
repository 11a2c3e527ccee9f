package dto

import (
	"strings"

	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/listing"
	"github.com/deespora/backoffice/internal/types"
	"github.com/deespora/backoffice/internal/validator"
)

// ListViewRequest carries a list view's state as query parameters
type ListViewRequest struct {
	Page     int    `form:"page" json:"page" validate:"gte=0"`
	PageSize int    `form:"page_size" json:"page_size" validate:"gte=0,lte=100"`
	Search   string `form:"search" json:"search"`
	Status   string `form:"status" json:"status"`
	Category string `form:"category" json:"category"`
	Date     string `form:"date" json:"date"`
	Location string `form:"location" json:"location"`
	Role     string `form:"role" json:"role"`
	Phase    string `form:"phase" json:"phase"`
	Sort     string `form:"sort" json:"sort"`
}

// ToViewState validates the request and converts it. Unknown filter values
// are rejected rather than ignored.
func (r *ListViewRequest) ToViewState() (listing.ViewState, error) {
	if err := validator.ValidateRequest(r); err != nil {
		return listing.ViewState{}, err
	}

	status, ok := types.ParseRecordStatus(r.Status)
	if !ok {
		return listing.ViewState{}, invalidParam("status", r.Status)
	}
	dateRange, ok := types.ParseDateRange(r.Date)
	if !ok {
		return listing.ViewState{}, invalidParam("date", r.Date)
	}
	phase, ok := types.ParseEventPhase(r.Phase)
	if !ok {
		return listing.ViewState{}, invalidParam("phase", r.Phase)
	}
	sort, ok := listing.ParseSortOrder(strings.ToLower(strings.TrimSpace(r.Sort)))
	if !ok {
		return listing.ViewState{}, invalidParam("sort", r.Sort)
	}

	return listing.ViewState{
		Page:     r.Page,
		PageSize: r.PageSize,
		Search:   strings.TrimSpace(r.Search),
		Filter: listing.Predicates{
			Status:    status,
			Category:  strings.TrimSpace(r.Category),
			DateRange: dateRange,
			Location:  strings.TrimSpace(r.Location),
			Role:      strings.TrimSpace(r.Role),
			Phase:     phase,
		},
		Sort: sort,
	}, nil
}

func invalidParam(name, value string) error {
	return ierr.NewErrorf("invalid %s %q", name, value).
		WithHintf("Invalid %s filter %q", name, value).
		WithReportableDetails(map[string]any{name: value}).
		Mark(ierr.ErrValidation)
}
