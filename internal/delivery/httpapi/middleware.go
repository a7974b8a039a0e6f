package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"cragfeed/internal/infrastructure"
)

const (
	actorIDKey      = "actorID"
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// RequestID honors an inbound X-Request-ID and generates a UUID when the
// client sent none. The id is echoed back and attached to the request log.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			c.Set(requestIDKey, id)
			c.Response().Header().Set(requestIDHeader, id)
			return next(c)
		}
	}
}

func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			requestID, _ := c.Get(requestIDKey).(string)
			log.Info().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Msg("request")

			return nil
		}
	}
}

// RateLimit applies a process-wide token bucket to the API group.
func RateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests"})
			}
			return next(c)
		}
	}
}

// Auth gates mutating endpoints: a missing credential is 401, an invalid
// or expired one is 403. On success the actor's user id is stashed on the
// request context before the handler runs.
func Auth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
			}

			claims, err := jwtService.VerifyToken(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Invalid or expired token"})
			}

			c.Set(actorIDKey, claims.UserID)
			return next(c)
		}
	}
}

// OptionalAuth attaches the actor when a valid token is present but never
// rejects the request.
func OptionalAuth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := bearerToken(c); ok {
				if claims, err := jwtService.VerifyToken(token); err == nil {
					c.Set(actorIDKey, claims.UserID)
				}
			}
			return next(c)
		}
	}
}

func ActorID(c echo.Context) (int, bool) {
	id, ok := c.Get(actorIDKey).(int)
	return id, ok
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
