package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jarvis-assistant/assistant/errors"
	"github.com/jarvis-assistant/assistant/pkg/jwt"
)

const (
	// UserIDKey is the Echo context key holding the authenticated uuid.UUID
	UserIDKey = "user_id"
	// ClaimsKey is the Echo context key holding the parsed *jwt.Claims
	ClaimsKey = "claims"
)

// TokenValidator parses an access token into claims
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// EchoAuth returns an Echo middleware that validates the JWT and sets
// "user_id" (uuid.UUID) and "claims" (*jwt.Claims) into Echo context
func EchoAuth(validator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c.Request())
			if token == "" {
				return errors.ErrUnauthenticated()
			}

			claims, err := validator.ValidateAccessToken(token)
			if err != nil {
				return errors.ErrInvalidToken().WithRaw(err)
			}

			c.Set(ClaimsKey, claims)
			c.Set(UserIDKey, claims.UserID)

			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by EchoAuth
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(UserIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// ExtractToken reads a bearer token from the Authorization header,
// falling back to the access_token cookie
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}

	cookie, err := r.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}

	return ""
}
