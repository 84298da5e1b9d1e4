// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rig/internal/delivery/http/middleware"
	"rig/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	BuildHandler        *handler.BuildHandler
	FinderHandler       *handler.FinderHandler
	SessionHandler      *handler.SessionHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler      *handler.CatalogHandler
	buildHandler        *handler.BuildHandler
	finderHandler       *handler.FinderHandler
	sessionHandler      *handler.SessionHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		buildHandler:        params.BuildHandler,
		finderHandler:       params.FinderHandler,
		sessionHandler:      params.SessionHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/:category", r.catalogHandler.ListComponents)
		catalogGroup.POST("/:category/choices", r.catalogHandler.ListChoices)
		catalogGroup.POST("/:category/:id/resolve", r.catalogHandler.ResolveComponent)
	}

	// Stateless build evaluation routes
	buildGroup := e.Group("/builds")
	{
		buildGroup.POST("/validate", r.buildHandler.Validate)
		buildGroup.POST("/summary", r.buildHandler.Summary)
	}

	// Build finder routes
	finderGroup := e.Group("/finder")
	{
		finderGroup.POST("/recommendations", r.finderHandler.Recommendations)
	}

	// Build session routes
	sessionGroup := e.Group("/sessions")
	{
		sessionGroup.POST("", r.sessionHandler.Create)
		sessionGroup.GET("/:sessionId", r.sessionHandler.Get)
		sessionGroup.DELETE("/:sessionId", r.sessionHandler.Delete)
		sessionGroup.POST("/:sessionId/actions", r.sessionHandler.Dispatch)
		sessionGroup.POST("/:sessionId/peripherals", r.sessionHandler.AddPeripheral)
		sessionGroup.DELETE("/:sessionId/peripherals/:category/:componentId", r.sessionHandler.RemovePeripheral)
		sessionGroup.PUT("/:sessionId/options", r.sessionHandler.SetOptions)
	}
}
