// file: internals/features/school/sessions/sequence/route/facilitator_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	seqCtrl "clasku_backend/internals/features/school/sessions/sequence/controller"
)

// SequenceFacilitatorRoutes: read path (next-session, progress) + write path
// (conduct/holiday/cancel) untuk facilitator.
func SequenceFacilitatorRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := seqCtrl.NewFacilitatorSessionController(db)

	sections := r.Group("/sections")
	sections.Get("/:id/next-session", ctrl.GetNextPendingSession)
	sections.Get("/:id/progress", ctrl.GetProgress)

	planned := r.Group("/planned-sessions")
	planned.Post("/:id/conduct", ctrl.ConductSession)
	planned.Post("/:id/holiday", ctrl.MarkHoliday)
	planned.Post("/:id/cancel", ctrl.CancelSession)
}
