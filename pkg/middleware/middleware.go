package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Astemirdum/bookreview-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

type TokenVerifier interface {
	VerifyAccess(ctx context.Context, token string) (*auth.Claims, error)
}

// JwtAuthentication rejects requests without a valid access token.
func JwtAuthentication(v TokenVerifier) echo.MiddlewareFunc {
	return jwtAuthentication(v, true)
}

// OptionalJwtAuthentication lets anonymous requests through but still rejects a bad token.
func OptionalJwtAuthentication(v TokenVerifier) echo.MiddlewareFunc {
	return jwtAuthentication(v, false)
}

func jwtAuthentication(v TokenVerifier, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(AuthorizationHeader)
			if authorization == "" {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided.")
				}
				return next(c)
			}
			if !strings.HasPrefix(authorization, bearer) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
			}
			req := c.Request()
			claims, err := v.VerifyAccess(req.Context(), strings.TrimPrefix(authorization, bearer))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Given token not valid for any token type")
			}

			c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), claims)))
			return next(c)
		}
	}
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	c := middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
	return c
}
