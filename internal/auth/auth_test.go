package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

func testUser(role domain.UserRole, status domain.UserStatus) *domain.User {
	return &domain.User{
		ID:       "11111111-1111-1111-1111-111111111111",
		Username: "helpdesk",
		Email:    "helpdesk@umc.ac.id",
		Name:     "Petugas Helpdesk",
		Role:     role,
		Status:   status,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	user := testUser(domain.UserRoleAdminHelpdesk, domain.UserStatusActive)

	token, expires, err := tm.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expires) <= 0 {
		t.Fatalf("expiry in the past")
	}
	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != user.ID || claims.Role != domain.UserRoleAdminHelpdesk || claims.Username != "helpdesk" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestTokenRejectsWrongSecretAndExpired(t *testing.T) {
	user := testUser(domain.UserRoleDosen, domain.UserStatusActive)
	token, _, _ := NewTokenManager("secret", time.Hour).GenerateToken(user)

	if _, err := NewTokenManager("other", time.Hour).ParseToken(token); err == nil {
		t.Fatal("expected signature error")
	}

	tm := NewTokenManager("secret", time.Minute)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, _ := tm.GenerateToken(user)
	if _, err := NewTokenManager("secret", time.Minute).ParseToken(old); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(4)
	hashed, err := h.Hash("admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := h.Compare(hashed, "admin123"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := h.Compare(hashed, "wrong"); err != ErrPasswordMismatch {
		t.Fatalf("expected mismatch, got %v", err)
	}
}

func newTestApp(t *testing.T, user *domain.User) (*fiber.App, string) {
	t.Helper()
	users := repository.NewMemoryUserRepository()
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.GenerateToken(user)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	mw := NewAuthMiddleware(tm, users, "auth-token")
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": de.Code})
		},
	})
	app.Get("/me", mw.Handle, func(c *fiber.Ctx) error {
		p, _ := PrincipalFromContext(c)
		return c.JSON(fiber.Map{"username": p.Username})
	})
	app.Get("/staff", mw.Handle, RequireRole(HelpdeskRoles...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/maybe", mw.Optional, func(c *fiber.Ctx) error {
		_, ok := PrincipalFromContext(c)
		return c.JSON(fiber.Map{"authenticated": ok})
	})
	return app, token
}

func TestMiddleware(t *testing.T) {
	app, token := newTestApp(t, testUser(domain.UserRoleDosen, domain.UserStatusActive))

	cases := []struct {
		name   string
		path   string
		header string
		cookie string
		status int
	}{
		{"missing credentials", "/me", "", "", fiber.StatusUnauthorized},
		{"bad scheme", "/me", "Basic abc", "", fiber.StatusUnauthorized},
		{"garbage token", "/me", "Bearer nope", "", fiber.StatusUnauthorized},
		{"bearer ok", "/me", "Bearer " + token, "", fiber.StatusOK},
		{"cookie ok", "/me", "", token, fiber.StatusOK},
		{"role denied", "/staff", "Bearer " + token, "", fiber.StatusForbidden},
		{"optional anonymous", "/maybe", "", "", fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.Header.Set("Cookie", "auth-token="+tc.cookie)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != tc.status {
				body, _ := io.ReadAll(resp.Body)
				t.Fatalf("got %d want %d: %s", resp.StatusCode, tc.status, body)
			}
		})
	}
}

func TestMiddlewareRejectsInactiveUser(t *testing.T) {
	app, token := newTestApp(t, testUser(domain.UserRoleAdminHelpdesk, domain.UserStatusSuspended))
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected forbidden, got %d", resp.StatusCode)
	}
}

func TestStaffRoleAllowed(t *testing.T) {
	app, token := newTestApp(t, testUser(domain.UserRoleAdminHelpdesk, domain.UserStatusActive))
	req := httptest.NewRequest("GET", "/maybe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ := app.Test(req)
	var body map[string]bool
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if !body["authenticated"] {
		t.Fatal("optional middleware should load principal")
	}

	req = httptest.NewRequest("GET", "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = app.Test(req)
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected staff access, got %d", resp.StatusCode)
	}
}
