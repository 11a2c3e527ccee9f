package backend

import (
	"context"
	"net/http"

	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/httpclient"
	"github.com/tidwall/gjson"
)

// mutate sends a state changing request. It fails when the backend answers
// non-2xx or with success=false; the backend's message becomes the hint and
// fallback is used when it sent none.
func (c *client) mutate(ctx context.Context, req *httpclient.Request, endpoint, fallback string) (*httpclient.Response, error) {
	resp, err := c.send(ctx, req, endpoint)
	if err != nil {
		if httpErr, ok := httpclient.IsHTTPError(err); ok {
			hint := httpErr.Message()
			if hint == "" {
				hint = fallback
			}
			return nil, ierr.WithError(err).
				WithHint(hint).
				WithReportableDetails(map[string]any{
					"endpoint": endpoint,
					"status":   httpErr.StatusCode,
				}).
				Mark(markForStatus(httpErr.StatusCode))
		}
		return nil, ierr.WithError(err).
			WithHint(fallback).
			Mark(ierr.ErrHTTPClient)
	}

	if gjson.ValidBytes(resp.Body) {
		if success := gjson.GetBytes(resp.Body, "success"); success.IsBool() && !success.Bool() {
			hint := gjson.GetBytes(resp.Body, "message").String()
			if hint == "" {
				hint = fallback
			}
			return nil, ierr.NewError("backend reported failure").
				WithHint(hint).
				WithReportableDetails(map[string]any{"endpoint": endpoint}).
				Mark(ierr.ErrInvalidOperation)
		}
	}

	c.logger.WithContext(ctx).Infow("backend mutation succeeded",
		"endpoint", endpoint,
		"method", req.Method,
	)
	return resp, nil
}

func markForStatus(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		return ierr.ErrInvalidOperation
	case http.StatusUnauthorized:
		return ierr.ErrUnauthorized
	case http.StatusForbidden:
		return ierr.ErrPermissionDenied
	case http.StatusNotFound:
		return ierr.ErrNotFound
	default:
		return ierr.ErrHTTPClient
	}
}
