package testutil

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/httpclient"
)

// MockHTTPClient implements httpclient.Client against canned routes. Routes
// are matched by method and URL suffix; the longest matching suffix wins.
type MockHTTPClient struct {
	mu       sync.RWMutex
	routes   map[string]MockResponse
	requests []httpclient.Request
}

// MockResponse represents a mock HTTP response
type MockResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
	// Delay holds the response back; a cancelled context wins over it
	Delay time.Duration
	// Err is returned instead of a response, as a transport failure would be
	Err error
}

// NewMockHTTPClient creates a new mock HTTP client
func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		routes: make(map[string]MockResponse),
	}
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// RegisterResponse registers a mock response for method and URL suffix
func (m *MockHTTPClient) RegisterResponse(method, path string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if resp.StatusCode == 0 {
		resp.StatusCode = http.StatusOK
	}
	m.routes[routeKey(method, path)] = resp
}

// RegisterJSON is a helper to register a JSON body with a status code
func (m *MockHTTPClient) RegisterJSON(method, path string, status int, body string) {
	m.RegisterResponse(method, path, MockResponse{
		StatusCode: status,
		Body:       []byte(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	})
}

// Send implements the httpclient.Client interface
func (m *MockHTTPClient) Send(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, *req)
	resp, found := m.match(req)
	m.mu.Unlock()

	if !found {
		return nil, httpclient.NewError(http.StatusNotFound, []byte(`{"message":"Not Found"}`))
	}

	if resp.Delay > 0 {
		timer := time.NewTimer(resp.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ierr.WithError(ctx.Err()).
				WithHint("The request was cancelled").
				Mark(ierr.ErrHTTPClient)
		}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}
	if resp.StatusCode >= 400 {
		return nil, httpclient.NewError(resp.StatusCode, resp.Body)
	}

	return &httpclient.Response{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Headers:    resp.Headers,
	}, nil
}

func (m *MockHTTPClient) match(req *httpclient.Request) (MockResponse, bool) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	prefix := strings.ToUpper(method) + " "

	var best MockResponse
	bestLen := -1
	for key, resp := range m.routes {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		suffix := strings.TrimPrefix(key, prefix)
		if strings.HasSuffix(req.URL, suffix) && len(suffix) > bestLen {
			best, bestLen = resp, len(suffix)
		}
	}
	return best, bestLen >= 0
}

// Requests returns every request sent so far, in order
func (m *MockHTTPClient) Requests() []httpclient.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]httpclient.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Clear removes all registered responses and recorded requests
func (m *MockHTTPClient) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = make(map[string]MockResponse)
	m.requests = nil
}
