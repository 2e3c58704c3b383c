// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomizationHandler *handler.CustomizationHandler
	EnvironmentHandler   *handler.EnvironmentHandler
	HealthHandler        *handler.HealthHandler
	AuthMiddleware       *middleware.AuthMiddleware
	LoggerMiddleware     *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customizationHandler *handler.CustomizationHandler
	environmentHandler   *handler.EnvironmentHandler
	healthHandler        *handler.HealthHandler
	authMiddleware       *middleware.AuthMiddleware
	loggerMiddleware     *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customizationHandler: params.CustomizationHandler,
		environmentHandler:   params.EnvironmentHandler,
		healthHandler:        params.HealthHandler,
		authMiddleware:       params.AuthMiddleware,
		loggerMiddleware:     params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Customization routes require authentication
	customizationGroup := e.Group("/customization")
	customizationGroup.Use(r.authMiddleware.Authenticate)
	{
		customizationGroup.POST("/load", r.customizationHandler.Load)
		customizationGroup.GET("", r.customizationHandler.Current)
		customizationGroup.PATCH("/field", r.customizationHandler.SetField)
		customizationGroup.PATCH("/theme-colors", r.customizationHandler.SetThemeColors)
		customizationGroup.POST("/save", r.customizationHandler.Save)
		customizationGroup.POST("/reset", r.customizationHandler.Reset)
		customizationGroup.DELETE("/session", r.customizationHandler.DiscardSession)
	}

	// Environment read-back for diagnostics
	environmentGroup := e.Group("/environment")
	environmentGroup.Use(r.authMiddleware.Authenticate)
	{
		environmentGroup.GET("", r.environmentHandler.Snapshot)
	}
}
