package middleware

import (
	"time"

	"github.com/deespora/backoffice/internal/config"
	"github.com/deespora/backoffice/internal/types"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// SentryMiddleware binds a Sentry hub to each request and tags its scope with
// the request id and route. Nothing is installed when Sentry is disabled.
func SentryMiddleware(cfg *config.Configuration) []gin.HandlerFunc {
	if !cfg.Sentry.Enabled {
		return nil
	}

	return []gin.HandlerFunc{
		sentrygin.New(sentrygin.Options{
			Repanic: true,
			Timeout: 2 * time.Second,
		}),
		tagSentryScope,
	}
}

func tagSentryScope(c *gin.Context) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.Scope().SetTag("request_id", types.GetRequestID(c.Request.Context()))
		hub.Scope().SetTag("route", c.FullPath())
	}
	c.Next()
}
