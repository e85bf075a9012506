// file: internals/features/school/sessions/calendar/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calCtrl "clasku_backend/internals/features/school/sessions/calendar/controller"
)

// CalendarAdminRoutes: slot kalender bersama (grouped sessions).
func CalendarAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := calCtrl.NewCalendarController(db)

	calendar := r.Group("/calendar")
	calendar.Post("/assign", ctrl.AssignSectionsToSlot)
}
