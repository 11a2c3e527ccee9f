package httpclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deespora/backoffice/internal/config"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/hashicorp/go-retryablehttp"
)

// Request represents an HTTP request
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
	// ContentType defaults to application/json when a body is present
	ContentType string
}

// Response represents an HTTP response
type Response struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// Client interface for making HTTP requests
type Client interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// ClientConfig holds configuration for the HTTP client
type ClientConfig struct {
	// Timeout bounds a whole Send call, retries included
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// DefaultClient implements the Client interface on top of retryablehttp.
// Only GET requests are retried; mutations go out exactly once.
type DefaultClient struct {
	retrying *retryablehttp.Client
	once     *retryablehttp.Client
	timeout  time.Duration
}

// NewDefaultClient creates a client from the backend configuration
func NewDefaultClient(cfg *config.Configuration, log *logger.Logger) Client {
	return NewClient(ClientConfig{
		Timeout:      cfg.Backend.Timeout,
		RetryMax:     cfg.Backend.RetryMax,
		RetryWaitMin: cfg.Backend.RetryWaitMin,
		RetryWaitMax: cfg.Backend.RetryWaitMax,
	}, log)
}

func NewClient(cfg ClientConfig, log *logger.Logger) *DefaultClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.L
	}
	return &DefaultClient{
		retrying: newRetryableClient(cfg, cfg.RetryMax, log),
		once:     newRetryableClient(cfg, 0, log),
		timeout:  cfg.Timeout,
	}
}

func newRetryableClient(cfg ClientConfig, retryMax int, log *logger.Logger) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	rc.Logger = log.GetRetryLogger()
	// hand the last response back instead of a generic "giving up" error so
	// that non-2xx bodies reach NewError
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return rc
}

// Send makes an HTTP request and returns the response
func (c *DefaultClient) Send(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body interface{}
	if req.Body != nil {
		body = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrHTTPClient)
	}

	if req.Body != nil {
		contentType := req.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	client := c.once
	if req.Method == http.MethodGet || req.Method == "" {
		client = c.retrying
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, transportError(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := readBody(resp)
	if err != nil {
		return nil, transportError(ctx, err)
	}

	headers := make(map[string]string)
	for k, v := range resp.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	if resp.StatusCode >= 400 {
		return nil, NewError(resp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Headers:    headers,
	}, nil
}

func transportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ierr.WithError(err).
			WithHint("The backend did not respond in time").
			Mark(ierr.ErrHTTPClient)
	case errors.Is(ctx.Err(), context.Canceled):
		return ierr.WithError(err).
			WithHint("The request was cancelled").
			Mark(ierr.ErrHTTPClient)
	default:
		return ierr.WithError(err).
			WithHint("Could not reach the backend").
			Mark(ierr.ErrHTTPClient)
	}
}
