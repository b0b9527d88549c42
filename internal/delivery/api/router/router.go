// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/aimericdrk/ai-fall-guard/config"
	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/middleware"
	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/router/handler"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the mount point of every versioned route.
const APIPrefix = "/api/v1"

const (
	rateLimitScopeRegister = "auth:register"
	rateLimitScopeLogin    = "auth:login"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	FallEventHandler    *handler.FallEventHandler
	NotificationHandler *handler.NotificationHandler
	MaintenanceHandler  *handler.MaintenanceHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware `optional:"true"`
	Metrics             *metrics.Metrics                `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	fallEventHandler    *handler.FallEventHandler
	notificationHandler *handler.NotificationHandler
	maintenanceHandler  *handler.MaintenanceHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		fallEventHandler:    params.FallEventHandler,
		notificationHandler: params.NotificationHandler,
		maintenanceHandler:  params.MaintenanceHandler,
		healthHandler:       params.HealthHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Probes live outside the versioned prefix
	e.GET("/health", r.healthHandler.HealthCheck)
	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group(APIPrefix)

	// Public auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimit(rateLimitScopeRegister)...)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimit(rateLimitScopeLogin)...)
		authGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	fallGroup := apiV1.Group("/fall-detection")
	fallGroup.Use(r.authMiddleware.Authenticate)
	{
		fallGroup.POST("/events", r.fallEventHandler.CreateFallEvent)
		fallGroup.GET("/events", r.fallEventHandler.ListFallEvents)
		fallGroup.GET("/events/:id", r.fallEventHandler.GetFallEvent)
		fallGroup.POST("/events/:id/acknowledge", r.fallEventHandler.AcknowledgeFallEvent)
		fallGroup.GET("/stats", r.fallEventHandler.GetStats)
	}

	notificationsGroup := apiV1.Group("/notifications")
	notificationsGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationsGroup.POST("/fall-detected", r.notificationHandler.CreateFallNotification)
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.GetUnreadCount)
		notificationsGroup.GET("/:id", r.notificationHandler.GetNotification)
		notificationsGroup.POST("/:id/acknowledge", r.notificationHandler.AcknowledgeNotification)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkAsRead)
	}

	usersGroup := apiV1.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.RequireRole(entity.RoleAdmin))
		usersGroup.GET("/me", r.userHandler.GetMe)
		usersGroup.PUT("/me", r.userHandler.UpdateMe)
		usersGroup.DELETE("/me", r.userHandler.DeleteMe)
		usersGroup.POST("/me/device-tokens", r.userHandler.AddDeviceToken)
		usersGroup.DELETE("/me/device-tokens/:token", r.userHandler.RemoveDeviceToken)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/maintenance/sweep", r.maintenanceHandler.Sweep)
	}
}

func (r *router) rateLimit(scope string) []echo.MiddlewareFunc {
	if r.rateLimitMiddleware == nil {
		return nil
	}

	return []echo.MiddlewareFunc{r.rateLimitMiddleware.Limit(scope)}
}
