// file: internals/features/school/sessions/sequence/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	seqCtrl "clasku_backend/internals/features/school/sessions/sequence/controller"
	middlewares "clasku_backend/internals/middlewares"
)

// SequenceAdminRoutes: satu-satunya pintu yang boleh mengubah BENTUK
// set planned session (generate / integrity / repair).
func SequenceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := seqCtrl.NewAdminSessionController(db)

	sections := r.Group("/sections")
	sections.Get("/:id/sessions", ctrl.ListSessions)
	sections.Get("/:id/sessions/integrity", ctrl.GetSequenceIntegrity)
	sections.Post("/:id/sessions/generate", middlewares.BulkAdminRateLimiter(), ctrl.GenerateSessions)
	sections.Post("/:id/sessions/repair", middlewares.BulkAdminRateLimiter(), ctrl.RepairSequence)
}
