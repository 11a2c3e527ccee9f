package service

import (
	"time"

	"github.com/deespora/backoffice/internal/backend"
	"github.com/deespora/backoffice/internal/cache"
	"github.com/deespora/backoffice/internal/config"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/normalizer"
	"github.com/deespora/backoffice/internal/sentry"
	"github.com/deespora/backoffice/internal/session"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger     *logger.Logger
	Config     *config.Configuration
	Backend    backend.Client
	Normalizer *normalizer.Normalizer
	Cache      cache.Cache
	Sentry     *sentry.Service
	Sessions   session.Store

	// Now is the clock used for date ranges and dashboard windows
	Now func() time.Time
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	backendClient backend.Client,
	n *normalizer.Normalizer,
	c cache.Cache,
	sentrySvc *sentry.Service,
	sessions session.Store,
) ServiceParams {
	return ServiceParams{
		Logger:     logger,
		Config:     config,
		Backend:    backendClient,
		Normalizer: n,
		Cache:      c,
		Sentry:     sentrySvc,
		Sessions:   sessions,
		Now:        time.Now,
	}
}

func (p ServiceParams) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
