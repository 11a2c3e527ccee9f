package cache

import (
	"github.com/deespora/backoffice/internal/config"
	"github.com/deespora/backoffice/internal/logger"
)

// Initialize builds the cache used for list fetches
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	c := NewInMemoryCache(cfg)
	log.Infow("cache system initialized",
		"enabled", cfg.Cache.Enabled,
		"ttl", c.ttl.String(),
	)
	return c
}
