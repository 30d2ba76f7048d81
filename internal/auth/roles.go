package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

var (
	// HelpdeskRoles may work the ticket queue.
	HelpdeskRoles = []domain.UserRole{domain.UserRoleAdminHelpdesk, domain.UserRoleSuperAdmin}
	// AssetRoles may decide on borrow requests.
	AssetRoles = []domain.UserRole{domain.UserRoleAdminAsset, domain.UserRoleSuperAdmin}
)

// HasRole reports whether role is one of allowed.
func HasRole(role domain.UserRole, allowed ...domain.UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// RequireRole ensures the authenticated principal has one of the allowed roles.
func RequireRole(allowed ...domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("Silakan login terlebih dahulu")
		}
		if !HasRole(principal.Role, allowed...) {
			return apperrors.NewForbidden("Anda tidak memiliki akses ke fitur ini")
		}
		return c.Next()
	}
}
