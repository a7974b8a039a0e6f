package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"cragfeed/internal/application/interfaces"
	"cragfeed/internal/infrastructure"
)

// NewRouter wires every endpoint. Auth-gated routes carry the Auth
// middleware per route instead of a gated group, so the public reads
// stay token-free.
func NewRouter(
	userService interfaces.UserService,
	sessionService interfaces.SessionService,
	gymService interfaces.GymService,
	jwtService *infrastructure.JWTService,
	limiter *rate.Limiter,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger(log))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	userHandler := NewUserHandler(userService, log)
	sessionHandler := NewSessionHandler(sessionService, log)
	gymHandler := NewGymHandler(gymService, log)

	auth := Auth(jwtService)

	api := e.Group("/api", RateLimit(limiter))
	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/users/me", userHandler.Me, auth)
	api.GET("/users/:id", userHandler.GetByID)

	api.GET("/feed", sessionHandler.Feed, OptionalAuth(jwtService))
	api.GET("/timeline", sessionHandler.Timeline)

	api.POST("/sessions", sessionHandler.Create, auth)
	api.GET("/sessions/:id", sessionHandler.GetByID)
	api.PUT("/sessions/:id", sessionHandler.Update, auth)
	api.DELETE("/sessions/:id", sessionHandler.Delete, auth)
	api.POST("/sessions/:id/media", sessionHandler.AttachMedia, auth)

	api.GET("/gyms", gymHandler.List)
	api.POST("/gyms", gymHandler.Create, auth)

	return e
}
