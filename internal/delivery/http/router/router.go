// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"maplehub/internal/delivery/http/middleware"
	"maplehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	CharacterHandler  *handler.CharacterHandler
	LookupHandler     *handler.LookupHandler
	CalculatorHandler *handler.CalculatorHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	characterHandler  *handler.CharacterHandler
	lookupHandler     *handler.LookupHandler
	calculatorHandler *handler.CalculatorHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		characterHandler:  params.CharacterHandler,
		lookupHandler:     params.LookupHandler,
		calculatorHandler: params.CalculatorHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	apiGroup := e.Group("/api")

	// Character lookups and rankings are public reads against the provider
	apiGroup.GET("/lookup/:name", r.lookupHandler.Search)
	apiGroup.GET("/lookup/:name/bosses", r.lookupHandler.WeeklyBosses)
	apiGroup.GET("/rankings/guild", r.lookupHandler.GuildRanking)

	// Calculators are pure and need no authentication
	apiGroup.GET("/bosses", r.calculatorHandler.BossTable)
	apiGroup.POST("/calculators/crystal", r.calculatorHandler.CrystalTotal)
	apiGroup.POST("/calculators/distribution", r.calculatorHandler.Distribution)

	// Character registrations belong to an account
	characterGroup := apiGroup.Group("/characters")
	characterGroup.Use(r.authMiddleware.Authenticate)
	{
		characterGroup.GET("", r.characterHandler.List)
		characterGroup.POST("", r.characterHandler.Register)
		characterGroup.DELETE("/:id", r.characterHandler.Unregister)
	}
}
