// file: internals/helpers/auth/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocUserID      = "user_id"      // string | uuid
	LocRole        = "role"         // string
	LocSchoolID    = "school_id"    // string UUID (tenant aktif)
	LocTeacherID   = "teacher_id"   // string UUID (facilitator record)
	LocRolesGlobal = "roles_global" // []string
)

func uuidFromLocal(c *fiber.Ctx, key string) (uuid.UUID, error) {
	switch v := c.Locals(key).(type) {
	case uuid.UUID:
		if v != uuid.Nil {
			return v, nil
		}
	case string:
		if s := strings.TrimSpace(v); s != "" {
			if id, err := uuid.Parse(s); err == nil {
				return id, nil
			}
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Klaim "+key+" tidak ditemukan di token")
}

// GetUserIDFromToken mengambil user_id dari locals hasil middleware AuthJWT
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocal(c, LocUserID)
}

// GetSchoolIDFromToken mengambil tenant (school) aktif dari token
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocal(c, LocSchoolID)
}

// GetFacilitatorIDFromToken mengambil teacher/facilitator record id dari token
func GetFacilitatorIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocal(c, LocTeacherID)
}

/* ============================================
   Role helpers
   ============================================ */

func rolesFromLocals(c *fiber.Ctx) []string {
	out := make([]string, 0, 4)
	if s, ok := c.Locals(LocRole).(string); ok && strings.TrimSpace(s) != "" {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	switch v := c.Locals(LocRolesGlobal).(type) {
	case []string:
		for _, s := range v {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				out = append(out, s)
			}
		}
	case []interface{}:
		for _, it := range v {
			if s, ok := it.(string); ok {
				if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// HasAnyRole mengecek apakah token membawa salah satu role yang diminta
func HasAnyRole(c *fiber.Ctx, wanted []string) bool {
	have := rolesFromLocals(c)
	for _, w := range wanted {
		for _, h := range have {
			if h == strings.ToLower(w) {
				return true
			}
		}
	}
	return false
}
