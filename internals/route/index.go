// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	middlewares "clasku_backend/internals/middlewares"
	clasMiddleware "clasku_backend/internals/middlewares/auth_school"
	featuresMiddleware "clasku_backend/internals/middlewares/features"
	routeDetails "clasku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// koneksi DB tersedia di locals utk handler ad-hoc
	app.Use(middlewares.DBMiddleware(db))

	BaseRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	// Facilitator ke atas: next-session, progress, conduct/holiday/cancel, absensi.
	log.Println("[INFO] Setting up PRIVATE group (Auth + facilitator)...")
	private := app.Group("/api/u",
		clasMiddleware.AuthJWT(clasMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsFacilitator(),
	)

	// ===================== ADMIN (per school) =====================
	// Supervisor/admin: section CRUD, generate/repair sequence, kalender.
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		clasMiddleware.AuthJWT(clasMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsSchoolAdmin(),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolUserRoutes(private, db)
	routeDetails.SchoolAdminRoutes(admin, db)
}
