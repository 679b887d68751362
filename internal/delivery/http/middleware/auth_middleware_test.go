package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	mockSvc "marketplace/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleTestContext(t *testing.T, roles []string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/influencers/abc/approve", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyRoles, roles)

	return c, rec
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), &config.Config{})

	c, _ := newRoleTestContext(t, []string{entity.RoleAdmin.String()})

	called := false
	handler := m.RequireRole(entity.RoleAdmin.String())(func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
}

func TestRequireRole_RejectsMissingRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), &config.Config{})

	c, rec := newRoleTestContext(t, []string{entity.RoleUser.String(), entity.RoleInfluencer.String()})

	handler := m.RequireRole(entity.RoleAdmin.String())(func(c echo.Context) error {
		t.Fatal("handler must not run without the required role")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_RejectsUnauthenticatedContext(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), &config.Config{})

	c, rec := newRoleTestContext(t, nil)

	handler := m.RequireRole(entity.RoleAdmin.String())(func(c echo.Context) error {
		t.Fatal("handler must not run without roles on the context")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
