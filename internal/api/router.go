package api

import (
	v1 "github.com/deespora/backoffice/internal/api/v1"
	"github.com/deespora/backoffice/internal/auth"
	"github.com/deespora/backoffice/internal/config"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/rest/middleware"
	"github.com/deespora/backoffice/internal/sentry"
	"github.com/deespora/backoffice/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Login     *v1.LoginHandler
	Health    *v1.HealthHandler
	Dashboard *v1.DashboardHandler
	View      *v1.ViewHandler
	Category  *v1.CategoryHandler
	Admin     *v1.AdminHandler
	User      *v1.UserHandler
	Advert    *v1.AdvertHandler
}

func NewRouter(
	handlers Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	provider auth.Provider,
	sentrySvc *sentry.Service,
) *gin.Engine {
	if cfg.Logging.Level != types.LogLevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestIDMiddleware)
	router.Use(middleware.SentryMiddleware(cfg)...)
	router.Use(
		middleware.CORSMiddleware(cfg),
		middleware.ErrorHandler(logger, sentrySvc),
		middleware.TimeoutMiddleware(cfg.Server.RequestTimeout),
	)

	router.GET("/health", handlers.Health.Health)

	v1Public := router.Group("/v1")
	v1Public.Any("/login", handlers.Login.Login)

	v1Private := router.Group("/v1")
	v1Private.Use(middleware.AuthenticateMiddleware(provider))

	v1Private.GET("/dashboard", handlers.Dashboard.GetDashboard)

	views := v1Private.Group("/views")
	{
		views.GET("/:kind", handlers.View.ListView)
		views.GET("/:kind/:id", handlers.View.GetView)
	}

	categories := v1Private.Group("/categories")
	{
		categories.GET("", handlers.Category.ListCategories)
		categories.POST("", handlers.Category.AddCategory)
		categories.PATCH("/:id/toggle", handlers.Category.ToggleCategory)
	}

	admins := v1Private.Group("/admins")
	{
		admins.GET("", handlers.Admin.ListAdmins)
		admins.POST("", handlers.Admin.CreateAdmin)
	}

	users := v1Private.Group("/users")
	{
		users.GET("/export", handlers.User.ExportUsers)
		users.PATCH("/:id/activate", handlers.User.ActivateUser)
		users.PATCH("/:id/deactivate", handlers.User.DeactivateUser)
	}

	listings := v1Private.Group("/listings")
	{
		listings.POST("/:id/promote", handlers.Advert.PromoteListing)
		listings.DELETE("/:id", handlers.Advert.DeleteListing)
	}

	return router
}
