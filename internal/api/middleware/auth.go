package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/api/metrics"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// principalKey is the echo context key the resolved principal is stored
// under. Handlers read it through Principal().
const principalKey = "principal"

// PrincipalResolver turns a bearer token into a request-scoped principal.
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
}

// Principal returns the principal attached by Authenticate or OptionalAuth,
// or nil when the request is unauthenticated.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

// Authenticate is the mandatory gate: the request must carry a resolvable
// bearer token. Each failure kind maps to its own 401 message so clients can
// tell a stale token from a bad one; resolver infrastructure failures are
// 500s, never authentication failures.
func Authenticate(resolver PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request())
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			principal, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				return rejection(err)
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// OptionalAuth resolves a principal when a valid token is present and
// otherwise lets the request through with none attached. It never blocks:
// this is what lets one handler serve both the public and the admin view of
// a resource.
func OptionalAuth(resolver PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := bearerToken(c.Request()); ok {
				if principal, err := resolver.Resolve(c.Request().Context(), token); err == nil {
					c.Set(principalKey, principal)
				}
			}
			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header. An absent
// header or a non-bearer scheme counts as no credential at all.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func rejection(err error) error {
	switch {
	case errors.Is(err, domain.ErrExpiredToken):
		metrics.AuthRejectionsTotal.WithLabelValues("expired_token").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
	case errors.Is(err, domain.ErrMalformedToken):
		metrics.AuthRejectionsTotal.WithLabelValues("malformed_token").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	case errors.Is(err, domain.ErrUnknownSubject):
		metrics.AuthRejectionsTotal.WithLabelValues("unknown_subject").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
	default:
		// Store unreachable or similar: a client-side retry with the same
		// token might succeed, so this must not read as an auth failure.
		return echo.NewHTTPError(http.StatusInternalServerError, "authentication error")
	}
}
