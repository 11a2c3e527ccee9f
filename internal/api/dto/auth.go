package dto

import (
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/validator"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate runs before any network call so an empty form never reaches the
// backend
func (r *LoginRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		tags := validator.FailedTags(err)
		hint := "Please enter your email and password"
		if _, ok := tags["email"]; !ok {
			hint = "Please enter your password"
		} else if _, ok := tags["password"]; !ok {
			hint = "Please enter your email"
		}
		return ierr.WithError(err).
			WithHint(hint).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// LoginResponse is the body of a successful login function call
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Email   string `json:"email"`
}

// MessageResponse is the body of a failed login function call
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
