// file: internals/middlewares/features/require_roles.go
package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"clasku_backend/internals/constants"
	helperAuth "clasku_backend/internals/helpers/auth"
)

// RequireRoles: gate berbasis role dari token (c.Locals).
// Owner selalu bypass.
func RequireRoles(feature string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, ok := c.Locals(helperAuth.LocRole).(string); ok && role == constants.RoleOwner {
			return c.Next()
		}

		if !helperAuth.HasAnyRole(c, allowed) {
			log.Println("❌ [MIDDLEWARE] Akses ditolak:", c.Method(), c.Path())
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorFacilitator(feature))
		}
		return c.Next()
	}
}

// IsFacilitator: facilitator ke atas (facilitator/supervisor/admin).
func IsFacilitator() fiber.Handler {
	return RequireRoles("sesi kelas", constants.FacilitatorAndAbove)
}

// IsSchoolAdmin: admin sekolah (supervisor/admin) + wajib ada school_id di token.
func IsSchoolAdmin() fiber.Handler {
	check := func(c *fiber.Ctx) error {
		if role, ok := c.Locals(helperAuth.LocRole).(string); ok && role == constants.RoleOwner {
			return c.Next()
		}
		if !helperAuth.HasAnyRole(c, constants.SupervisorAndAbove) {
			log.Println("❌ [MIDDLEWARE] Akses admin ditolak:", c.Method(), c.Path())
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorSupervisor("administrasi sekolah"))
		}
		return c.Next()
	}
	return func(c *fiber.Ctx) error {
		if _, err := helperAuth.GetSchoolIDFromToken(c); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token tidak memiliki akses sekolah")
		}
		return check(c)
	}
}
