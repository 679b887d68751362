package handler

import (
	"net/http"
	"strconv"

	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// UserIDFromContext reads the authenticated user's ID set by the auth middleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "請先登入", nil)
	}

	return userID, nil
}

// uuidParam parses a UUID path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的識別碼", nil)
	}

	return id, nil
}

// pagination reads limit/offset query parameters with sane bounds.
func pagination(c echo.Context) (limit, offset int) {
	limit = defaultPageSize
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = min(parsed, maxPageSize)
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
