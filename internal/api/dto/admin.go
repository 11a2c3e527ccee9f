package dto

import (
	"strings"

	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/validator"
)

const MinAdminPasswordLength = 5

// CreateAdminRequest is posted to the backend's register endpoint, hence the
// camelCase field names
type CreateAdminRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=5"`
	Role        string `json:"role" validate:"omitempty,oneof=admin super-admin administrator"`
}

func (r *CreateAdminRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	if r.Role == "" {
		r.Role = "admin"
	}

	err := validator.ValidateRequest(r)
	if err == nil {
		return nil
	}

	tags := validator.FailedTags(err)
	hint := "Please fill in all required fields"
	switch {
	case anyRequired(tags):
	case tags["password"] == "min":
		hint = "Password must be at least 5 characters"
	case tags["email"] == "email":
		hint = "Please enter a valid email address"
	case tags["role"] != "":
		hint = "Role must be admin, super-admin or administrator"
	}
	return ierr.WithError(err).
		WithHint(hint).
		Mark(ierr.ErrValidation)
}

func anyRequired(tags map[string]string) bool {
	for _, tag := range tags {
		if tag == "required" {
			return true
		}
	}
	return false
}
