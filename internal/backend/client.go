// Package backend is the typed client for the listings REST API every admin
// view reads from and mutates through.
package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/deespora/backoffice/internal/api/dto"
	"github.com/deespora/backoffice/internal/config"
	"github.com/deespora/backoffice/internal/domain/record"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/httpclient"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/normalizer"
	"github.com/deespora/backoffice/internal/sentry"
	"github.com/deespora/backoffice/internal/types"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the backend. Reads degrade to empty results on any
// failure; mutations and logins return errors carrying the backend's message.
type Client interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*normalizer.LoginResult, error)
	Register(ctx context.Context, req *dto.CreateAdminRequest) error
	List(ctx context.Context, kind types.Kind) []record.Record
	Get(ctx context.Context, kind types.Kind, id string) *record.Record
	GetUser(ctx context.Context, id string) *record.Record
	SetActive(ctx context.Context, id string, active bool) error
	Promote(ctx context.Context, id string, req *dto.PromoteRequest) error
	DeleteListing(ctx context.Context, id string) error
	CreateListing(ctx context.Context, req *dto.CreateListingRequest) (*record.Record, error)
}

// TokenSource supplies the bearer token attached to backend calls
type TokenSource func(ctx context.Context) string

type Option func(*client)

// WithTokenSource overrides where the bearer token comes from. The default
// reads it from the request context.
func WithTokenSource(ts TokenSource) Option {
	return func(c *client) {
		if ts != nil {
			c.tokens = ts
		}
	}
}

type client struct {
	http       httpclient.Client
	baseURL    string
	normalizer *normalizer.Normalizer
	logger     *logger.Logger
	sentry     *sentry.Service
	tokens     TokenSource
}

func NewClient(
	cfg *config.Configuration,
	httpClient httpclient.Client,
	n *normalizer.Normalizer,
	log *logger.Logger,
	sentrySvc *sentry.Service,
	opts ...Option,
) Client {
	c := &client{
		http:       httpClient,
		baseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		normalizer: n,
		logger:     log,
		sentry:     sentrySvc,
		tokens:     types.GetBackendToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) url(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

func (c *client) send(ctx context.Context, req *httpclient.Request, endpoint string) (*httpclient.Response, error) {
	if req.Headers == nil {
		req.Headers = map[string]string{}
	}
	if token := c.tokens(ctx); token != "" {
		req.Headers["Authorization"] = "Bearer " + token
	}
	if requestID := types.GetRequestID(ctx); requestID != "" {
		req.Headers["X-Request-ID"] = requestID
	}

	span, ctx := c.sentry.StartBackendSpan(ctx, req.Method, endpoint)
	resp, err := c.http.Send(ctx, req)
	sentry.FinishSpan(span, err)
	return resp, err
}

func (c *client) List(ctx context.Context, kind types.Kind) []record.Record {
	resp, err := c.send(ctx, &httpclient.Request{
		Method: http.MethodGet,
		URL:    c.url(kind.Endpoint()),
	}, kind.Endpoint())
	if err != nil {
		c.logger.WithContext(ctx).Warnw("list fetch failed, showing empty list",
			"kind", kind,
			"error", err,
		)
		return []record.Record{}
	}
	return c.normalizer.NormalizeList(resp.Body, kind)
}

func (c *client) Get(ctx context.Context, kind types.Kind, id string) *record.Record {
	if kind == types.KindUsers || kind == types.KindAdmins {
		return c.GetUser(ctx, id)
	}
	return c.getOne(ctx, kind, c.url(kind.Slug(), id), kind.Slug())
}

func (c *client) GetUser(ctx context.Context, id string) *record.Record {
	return c.getOne(ctx, types.KindUsers, c.baseURL+"/get-user?id="+url.QueryEscape(id), "get-user")
}

func (c *client) getOne(ctx context.Context, kind types.Kind, target, endpoint string) *record.Record {
	resp, err := c.send(ctx, &httpclient.Request{Method: http.MethodGet, URL: target}, endpoint)
	if err != nil {
		c.logger.WithContext(ctx).Warnw("detail fetch failed",
			"kind", kind,
			"error", err,
		)
		return nil
	}
	return c.normalizer.NormalizeOne(resp.Body, kind)
}

func (c *client) Login(ctx context.Context, req *dto.LoginRequest) (*normalizer.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrSystem)
	}

	resp, err := c.send(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    c.url("auth", "login"),
		Body:   body,
	}, "auth/login")

	var payload []byte
	switch httpErr, isHTTP := httpclient.IsHTTPError(err); {
	case err == nil:
		payload = resp.Body
	case isHTTP:
		payload = httpErr.Response
	default:
		return nil, ierr.WithError(err).
			WithHint("Login failed. Please try again.").
			Mark(ierr.ErrHTTPClient)
	}

	result := normalizer.ExtractLogin(payload)
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "Invalid email or password"
		}
		return nil, ierr.NewError("backend rejected login").
			WithHint(msg).
			Mark(ierr.ErrUnauthorized)
	}
	return &result, nil
}

func (c *client) Register(ctx context.Context, req *dto.CreateAdminRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrSystem)
	}
	_, err = c.mutate(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    c.url("auth", "register"),
		Body:   body,
	}, "auth/register", "Registration failed")
	return err
}

func (c *client) SetActive(ctx context.Context, id string, active bool) error {
	if strings.TrimSpace(id) == "" {
		return missingID()
	}
	action := "deactivate"
	if active {
		action = "activate"
	}
	_, err := c.mutate(ctx, &httpclient.Request{
		Method: http.MethodPatch,
		URL:    c.url(action, id),
	}, action, "Failed to "+action+" user")
	return err
}

func (c *client) Promote(ctx context.Context, id string, req *dto.PromoteRequest) error {
	if strings.TrimSpace(id) == "" {
		return missingID()
	}
	if err := req.Validate(); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrSystem)
	}
	_, err = c.mutate(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    c.url("listings", id, "promote"),
		Body:   body,
	}, "listings/promote", "Failed to promote advert")
	return err
}

func (c *client) DeleteListing(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return missingID()
	}
	_, err := c.mutate(ctx, &httpclient.Request{
		Method: http.MethodDelete,
		URL:    c.url("listings", id),
	}, "listings/delete", "Failed to delete advert")
	return err
}

func missingID() error {
	return ierr.NewError("missing record id").
		WithHint("A record id is required").
		Mark(ierr.ErrValidation)
}
