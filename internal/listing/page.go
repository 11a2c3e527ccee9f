package listing

import (
	"github.com/deespora/backoffice/internal/domain/record"
	"github.com/deespora/backoffice/internal/types"
)

// PageResult is one page of a record sequence
type PageResult struct {
	Items      []record.Record `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
	TotalCount int             `json:"total_count"`
}

// Paginate slices seq into 1-indexed pages of size. The requested page is
// clamped into [1, TotalPages]; an empty sequence has zero pages and is
// reported as page 1. Sizes below 1 use types.DefaultPageSize.
func Paginate(seq []record.Record, page, size int) PageResult {
	if size < 1 {
		size = types.DefaultPageSize
	}
	total := len(seq)
	totalPages := (total + size - 1) / size

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	result := PageResult{
		Items:      []record.Record{},
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		TotalCount: total,
	}
	if total == 0 {
		return result
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	result.Items = clone(seq[start:end])
	return result
}

// ToListResponse wraps the page in the gateway's list envelope
func (p PageResult) ToListResponse() types.ListResponse[record.Record] {
	return types.NewListResponse(p.Items, p.TotalCount, p.Page, p.PageSize, p.TotalPages)
}
