// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kennel/internal/delivery/http/middleware"
	"kennel/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	DogHandler     *handler.DogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	dogHandler     *handler.DogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		dogHandler:     params.DogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; every mutating route sits behind the bearer-token guard.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/user")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.POST("/access-token", r.userHandler.Login)
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.PUT("/:id", r.userHandler.Update, r.authMiddleware.Authenticate)
		userGroup.DELETE("/:id", r.userHandler.Delete, r.authMiddleware.Authenticate)
	}

	dogGroup := e.Group("/dog")
	{
		dogGroup.GET("", r.dogHandler.List)
		// Static segments take precedence over :id in echo's routing.
		dogGroup.GET("/is_adopted", r.dogHandler.ListAdopted)
		dogGroup.GET("/name/:name", r.dogHandler.GetByName)
		dogGroup.GET("/:id", r.dogHandler.Get)
		dogGroup.POST("", r.dogHandler.Create, r.authMiddleware.Authenticate)
		dogGroup.PUT("/name/:name", r.dogHandler.UpdateByName, r.authMiddleware.Authenticate)
		dogGroup.PUT("/:id", r.dogHandler.Update, r.authMiddleware.Authenticate)
		dogGroup.DELETE("/name/:name", r.dogHandler.DeleteByName, r.authMiddleware.Authenticate)
		dogGroup.DELETE("/:id", r.dogHandler.Delete, r.authMiddleware.Authenticate)
	}
}
