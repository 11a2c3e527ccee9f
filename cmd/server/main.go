package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/deespora/backoffice/internal/api"
	v1 "github.com/deespora/backoffice/internal/api/v1"
	"github.com/deespora/backoffice/internal/auth"
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
	"github.com/deespora/backoffice/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title Deespora Back-Office API
// @version 1.0
// @description Admin gateway over the Deespora listings backend
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the token from /login in the format *Bearer &lt;token&gt;*

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Cache
			cache.Initialize,

			// HTTP Client
			httpclient.NewDefaultClient,

			// Backend
			normalizer.New,
			provideBackendClient,
			provideSessionStore,

			// Login function
			auth.NewProvider,
			auth.NewLimiter,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewListingService,
			service.NewDashboardService,
			service.NewCategoryService,
			service.NewUserService,
			service.NewAdminService,
			service.NewAdvertService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideBackendClient(
	cfg *config.Configuration,
	httpClient httpclient.Client,
	n *normalizer.Normalizer,
	log *logger.Logger,
	sentrySvc *sentry.Service,
) backend.Client {
	return backend.NewClient(cfg, httpClient, n, log, sentrySvc)
}

// The gateway is stateless; callers forward their backend session per request.
func provideSessionStore() session.Store {
	return session.NewMemoryStore()
}

func provideHandlers(
	logger *logger.Logger,
	provider auth.Provider,
	limiter *auth.Limiter,
	listingService service.ListingService,
	dashboardService service.DashboardService,
	categoryService service.CategoryService,
	userService service.UserService,
	adminService service.AdminService,
	advertService service.AdvertService,
) api.Handlers {
	return api.Handlers{
		Login:     v1.NewLoginHandler(provider, limiter, logger),
		Health:    v1.NewHealthHandler(),
		Dashboard: v1.NewDashboardHandler(dashboardService, logger),
		View:      v1.NewViewHandler(listingService, logger),
		Category:  v1.NewCategoryHandler(categoryService, logger),
		Admin:     v1.NewAdminHandler(adminService, logger),
		User:      v1.NewUserHandler(userService, logger),
		Advert:    v1.NewAdvertHandler(advertService, logger),
	}
}

func provideRouter(
	handlers api.Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	provider auth.Provider,
	sentrySvc *sentry.Service,
) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger, provider, sentrySvc)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal:
		startAPIServer(lc, r, cfg, log)
	case types.ModeAWSLambdaAPI:
		startAWSLambdaAPI(r)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}

func startAWSLambdaAPI(r *gin.Engine) {
	ginLambda := ginadapter.New(r)
	lambda.Start(ginLambda.ProxyWithContext)
}
