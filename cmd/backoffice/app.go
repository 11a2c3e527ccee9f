package main

import (
	"context"
	"io"
	"time"

	"github.com/deespora/backoffice/internal/backend"
	"github.com/deespora/backoffice/internal/cache"
	"github.com/deespora/backoffice/internal/config"
	"github.com/deespora/backoffice/internal/httpclient"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/normalizer"
	"github.com/deespora/backoffice/internal/sentry"
	"github.com/deespora/backoffice/internal/service"
	"github.com/deespora/backoffice/internal/session"
	"github.com/deespora/backoffice/internal/types"
	"github.com/spf13/cobra"
)

// app holds the services a command runs against. It is built once per
// invocation in the root command's PersistentPreRunE.
type app struct {
	cfg    *config.Configuration
	log    *logger.Logger
	sentry *sentry.Service
	out    io.Writer
	in     io.Reader

	auth       service.AuthService
	listings   service.ListingService
	dashboard  service.DashboardService
	categories service.CategoryService
	users      service.UserService
	admins     service.AdminService
	adverts    service.AdvertService
}

func newApp(cmd *cobra.Command, verbose bool) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	// tables go to stdout; keep info logs off stderr unless asked for
	if !verbose {
		cfg.Logging.Level = types.LogLevelWarn
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	sentrySvc := sentry.NewSentryService(cfg, log)
	if err := sentrySvc.Init(); err != nil {
		log.Warnw("continuing without sentry", "error", err)
	}

	store, err := session.NewFileStore(cfg)
	if err != nil {
		return nil, err
	}

	n := normalizer.New(log)
	client := backend.NewClient(cfg, httpclient.NewDefaultClient(cfg, log), n, log, sentrySvc)
	params := service.NewServiceParams(log, cfg, client, n, cache.Initialize(cfg, log), sentrySvc, store)
	listings := service.NewListingService(params)

	return &app{
		cfg:        cfg,
		log:        log,
		sentry:     sentrySvc,
		out:        cmd.OutOrStdout(),
		in:         cmd.InOrStdin(),
		auth:       service.NewAuthService(params),
		listings:   listings,
		dashboard:  service.NewDashboardService(params, listings),
		categories: service.NewCategoryService(params, listings),
		users:      service.NewUserService(params, listings),
		admins:     service.NewAdminService(params, listings),
		adverts:    service.NewAdvertService(params, listings),
	}, nil
}

// authorized returns ctx carrying the saved backend session
func (a *app) authorized(ctx context.Context) (context.Context, error) {
	return a.auth.Authorize(ctx)
}

func (a *app) close() {
	if a.sentry.Enabled() {
		a.sentry.Flush(2 * time.Second)
	}
	_ = a.log.Sync()
}
