// file: internals/features/school/classes/class_sections/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	secCtrl "clasku_backend/internals/features/school/classes/class_sections/controller"
)

// ClassSectionAdminRoutes: CRUD section; create sekaligus men-generate
// 150 hari planned session dalam transaksi yang sama.
func ClassSectionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := secCtrl.NewClassSectionController(db)

	sections := r.Group("/class-sections")
	sections.Post("/", ctrl.CreateClassSection)
	sections.Get("/", ctrl.ListClassSections)
	sections.Get("/:id", ctrl.GetClassSectionByID)
}
