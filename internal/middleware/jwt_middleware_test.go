package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officeit/internal/middleware"
	"officeit/internal/models"
	"officeit/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()
	auth := services.NewAuthService(nil, "middleware-secret", time.Hour, nil)

	app := fiber.New()
	app.Get("/me", middleware.AuthRequired(auth), func(c *fiber.Ctx) error {
		return c.SendString(middleware.CurrentSession(c).Username)
	})
	app.Get("/admin", middleware.AuthRequired(auth), middleware.AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, auth
}

func token(t *testing.T, auth *services.AuthService, role string) string {
	t.Helper()
	tok, err := auth.IssueToken(&models.User{ID: "u1", Username: "jane", Role: role})
	require.NoError(t, err)
	return tok
}

func TestAuthRequired(t *testing.T) {
	app, auth := newTestApp(t)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", fiber.StatusUnauthorized},
		{"valid token", "Bearer " + token(t, auth, models.RoleCustomer), fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestAdminRequired(t *testing.T) {
	app, auth := newTestApp(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, auth, models.RoleCustomer))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, auth, models.RoleAdmin))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
