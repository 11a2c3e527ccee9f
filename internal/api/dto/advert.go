package dto

import (
	"strings"
	"time"

	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/validator"
)

// PromoteRequest is the body of POST /listings/{id}/promote
type PromoteRequest struct {
	PromoteOnHomepage     bool      `json:"promoteOnHomepage"`
	HighlightInNewsletter bool      `json:"highlightInNewsletter"`
	AddTrendingBadge      bool      `json:"addTrendingBadge"`
	PromotionDuration     string    `json:"promotionDuration" validate:"required"`
	PromotionStartDate    time.Time `json:"promotionStartDate"`
}

func (r *PromoteRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return ierr.WithError(err).
			WithHint("Please choose a promotion duration").
			Mark(ierr.ErrValidation)
	}
	if !r.PromoteOnHomepage && !r.HighlightInNewsletter && !r.AddTrendingBadge {
		return ierr.NewError("no promotion option selected").
			WithHint("Select at least one promotion option").
			Mark(ierr.ErrValidation)
	}
	if r.PromotionStartDate.IsZero() {
		r.PromotionStartDate = time.Now()
	}
	r.PromotionStartDate = r.PromotionStartDate.UTC()
	return nil
}

// ListingImage is one file attached to a new listing
type ListingImage struct {
	Filename string
	Content  []byte
}

// CreateListingRequest becomes a multipart form; Images go under "images"
type CreateListingRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description"`
	Category    string            `json:"category" validate:"required"`
	Location    string            `json:"location"`
	Price       string            `json:"price" validate:"omitempty,numeric"`
	EventDate   *time.Time        `json:"eventDate,omitempty"`
	Contact     string            `json:"contact"`
	Fields      map[string]string `json:"fields,omitempty"`
	Images      []ListingImage    `json:"-" validate:"max=10"`
}

func (r *CreateListingRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)
	if err := validator.ValidateRequest(r); err != nil {
		tags := validator.FailedTags(err)
		hint := "Please fill in all required fields"
		switch {
		case tags["price"] != "":
			hint = "Price must be a number"
		case tags["Images"] != "":
			hint = "A listing can have at most 10 images"
		}
		return ierr.WithError(err).
			WithHint(hint).
			Mark(ierr.ErrValidation)
	}
	return nil
}
