// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/router/handler"
	"stockroom/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ItemHandler       *handler.ResourceHandler[entity.Item]
	OutOfStockHandler *handler.ResourceHandler[entity.OutOfStockRequest]
	AuthHandler       *handler.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	itemHandler       *handler.ResourceHandler[entity.Item]
	outOfStockHandler *handler.ResourceHandler[entity.OutOfStockRequest]
	authHandler       *handler.AuthHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		itemHandler:       params.ItemHandler,
		outOfStockHandler: params.OutOfStockHandler,
		authHandler:       params.AuthHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Landing page and the GitHub OAuth flow
	e.GET("/", r.authHandler.Home)
	e.GET("/login", r.authHandler.Login)
	e.GET("/auth/github", r.authHandler.GitHubLogin)
	e.GET("/auth/github/callback", r.authHandler.GitHubCallback)
	e.GET("/logout", r.authHandler.Logout, r.authMiddleware.RequireSessionOrRedirect)

	// Reads are open; writes require a logged-in session.
	registerResourceRoutes(r, e.Group("/items"), r.itemHandler)
	registerResourceRoutes(r, e.Group("/outofstock"), r.outOfStockHandler)
}

func registerResourceRoutes[T any](r *router, g *echo.Group, h *handler.ResourceHandler[T]) {
	g.GET("", h.ListAll)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create, r.authMiddleware.RequireSession)
	g.PUT("/:id", h.Replace, r.authMiddleware.RequireSession)
	g.DELETE("/:id", h.Delete, r.authMiddleware.RequireSession)
}
