package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pusdatin-umc/helpdesk-service/internal/api/dto"
	"github.com/pusdatin-umc/helpdesk-service/internal/auth"
	"github.com/pusdatin-umc/helpdesk-service/internal/service"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

// AuthHandler exposes login endpoints.
type AuthHandler struct {
	auth         *service.AuthService
	cookieName   string
	secureCookie bool
}

// NewAuthHandler constructs handler. The token is also set as an HTTP-only cookie named cookieName.
func NewAuthHandler(authService *service.AuthService, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: authService, cookieName: cookieName, secureCookie: secureCookie}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req validation.LoginInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	session, err := h.auth.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	if h.cookieName != "" {
		c.Cookie(&fiber.Cookie{
			Name:     h.cookieName,
			Value:    session.Token,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HTTPOnly: true,
			Secure:   h.secureCookie,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return respond(c, http.StatusOK, dto.AuthResponse{
		User:      userResponse(session.User),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, "Login berhasil")
}

// Logout POST /auth/logout. Tokens are stateless, so only the cookie is cleared.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if h.cookieName != "" {
		c.Cookie(&fiber.Cookie{
			Name:     h.cookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   h.secureCookie,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return respond(c, http.StatusOK, nil, "Logout berhasil")
}

// Me GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Silakan login terlebih dahulu")
	}
	user, err := h.auth.Me(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, userResponse(user), "")
}
