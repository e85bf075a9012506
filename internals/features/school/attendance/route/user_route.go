// file: internals/features/school/attendance/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "clasku_backend/internals/features/school/attendance/controller"
)

// AttendanceUserRoutes: pencatatan kehadiran per actual session (facilitator).
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)

	sessions := r.Group("/actual-sessions")
	sessions.Post("/:id/attendance", ctrl.MarkSessionAttendance)
	sessions.Get("/:id/attendance", ctrl.ListSessionAttendance)
}
