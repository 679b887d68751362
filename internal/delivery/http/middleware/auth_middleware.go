package middleware

import (
	"net/http"
	"slices"
	"strings"

	"marketplace/config"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// The access token is carried in the session cookie; a Bearer header is
// accepted as a fallback for non-browser clients.
type AuthMiddleware struct {
	tokenService service.TokenService
	cookieName   string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService, cfg *config.Config) *AuthMiddleware {
	cookieName := "session"
	if cfg.Session != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	return &AuthMiddleware{tokenService: tokenService, cookieName: cookieName}
}

// Authenticate validates the access token and stores the caller's identity
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "請先登入", nil)
		}

		claims, err := m.tokenService.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "無效或已過期的憑證", nil)
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller has a specific role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(ContextKeyRoles).([]string)
			if !ok || !slices.Contains(roles, requiredRole) {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "權限不足", nil)
			}

			return next(c)
		}
	}
}

// extractToken reads the access token from the session cookie, falling back
// to the Authorization header.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}
