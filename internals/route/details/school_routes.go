// file: internals/route/details/school_routes.go
package details

import (
	AttendanceRoutes "clasku_backend/internals/features/school/attendance/route"
	ClassSectionRoutes "clasku_backend/internals/features/school/classes/class_sections/route"
	CalendarRoutes "clasku_backend/internals/features/school/sessions/calendar/route"
	SequenceRoutes "clasku_backend/internals/features/school/sessions/sequence/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== USER (facilitator) ===================== */

func SchoolUserRoutes(r fiber.Router, db *gorm.DB) {
	SequenceRoutes.SequenceFacilitatorRoutes(r, db)
	AttendanceRoutes.AttendanceUserRoutes(r, db)
}

/* ===================== ADMIN ===================== */

func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	SequenceRoutes.SequenceAdminRoutes(r, db)
	ClassSectionRoutes.ClassSectionAdminRoutes(r, db)
	CalendarRoutes.CalendarAdminRoutes(r, db)
}
