package middleware

import (
	"errors"
	"net/http"
	"strings"

	userDomain "loanmarket-backend/internal/domain/user"
	"loanmarket-backend/pkg/logger"
	"loanmarket-backend/pkg/token"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ctxEmailKey  = "email"
	ctxClaimsKey = "claims"
	ctxUserKey   = "user"
	ctxRoleKey   = "role"
)

// CallerEmail returns the verified email placed in the context by
// Authenticate, or "" when the route is unauthenticated.
func CallerEmail(c echo.Context) string {
	if e, ok := c.Get(ctxEmailKey).(string); ok {
		return e
	}
	return ""
}

// CallerRole returns the resolved role set by RequireRole.
func CallerRole(c echo.Context) userDomain.Role {
	if r, ok := c.Get(ctxRoleKey).(userDomain.Role); ok {
		return r
	}
	return ""
}

// Authenticate verifies the bearer credential and stores the verified
// email claim. It says nothing about roles; that is RequireRole's job.
func Authenticate(verifier *token.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing credential"})
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "credential must use Bearer scheme"})
			}
			claims, err := verifier.Verify(strings.TrimSpace(authHeader[len("Bearer "):]))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credential"})
			}

			email := strings.ToLower(claims.Email)
			c.Set(ctxEmailKey, email)
			c.Set(ctxClaimsKey, claims)
			c.Set("logger", logger.FromContext(c).With(zap.String("email", email)))
			return next(c)
		}
	}
}

// RequireRole resolves the caller's User record and enforces that its role
// is one of the allowed set. Fail-closed on a missing record: the gate
// never auto-provisions; registration happens only via POST /user. The
// Forbidden payload carries the actual role — the caller already proved
// who they are, so this is UX, not a leak.
func RequireRole(users userDomain.Repository, roles ...userDomain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := CallerEmail(c)
			if email == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing credential"})
			}

			usr, err := users.GetByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusForbidden, echo.Map{"error": "no account for this identity"})
				}
				logger.FromContext(c).Error("role resolution failed", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
			}

			for _, r := range roles {
				if usr.Role == r {
					c.Set(ctxUserKey, usr)
					c.Set(ctxRoleKey, usr.Role)
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{
				"error": "forbidden",
				"role":  usr.Role,
			})
		}
	}
}
