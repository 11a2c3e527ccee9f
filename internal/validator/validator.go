package validator

import (
	"reflect"
	"strings"
	"sync"

	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// NewValidator returns the shared validator, creating it on first use.
// Field names in errors follow the json tags.
func NewValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

func GetValidator() *validator.Validate {
	return NewValidator()
}

// ValidateRequest validates req and marks failures as validation errors with
// a generic hint. Callers that need a friendlier hint can inspect the failed
// tags with FailedTags.
func ValidateRequest(req interface{}) error {
	if err := NewValidator().Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, err := range validateErrs {
				details[err.Field()] = err.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// FailedTags maps each failing field to the tag that rejected it
func FailedTags(err error) map[string]string {
	tags := make(map[string]string)
	var validateErrs validator.ValidationErrors
	if ierr.As(err, &validateErrs) {
		for _, e := range validateErrs {
			tags[e.Field()] = e.Tag()
		}
	}
	return tags
}
