// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	jwtOpts := authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	}

	// ===================== ADMIN (bendahara) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.OnlyAdmin(),
	)

	// ===================== PRINCIPAL (read-only) =====================
	log.Println("[INFO] Setting up PRINCIPAL group...")
	principal := app.Group("/api/p",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.AdminOrPrincipal(),
	)

	// ===================== PARENT (scoped ke satu siswa) =====================
	log.Println("[INFO] Setting up PARENT group...")
	parent := app.Group("/api/u",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.OnlyParent(),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Academics routes...")
	routeDetails.AcademicsAdminRoutes(admin, db)
	routeDetails.AcademicsReadRoutes(principal, db)

	log.Println("[INFO] Mounting Students routes...")
	routeDetails.StudentsAdminRoutes(admin, db)
	routeDetails.StudentsReadRoutes(principal, db)
	routeDetails.StudentsUserRoutes(parent, db)

	log.Println("[INFO] Mounting Billing routes...")
	routeDetails.BillingAdminRoutes(admin, db)
	routeDetails.BillingReadRoutes(principal, db)

	log.Println("[INFO] Mounting Reports routes...")
	routeDetails.ReportsAdminRoutes(admin, db)
	routeDetails.ReportsReadRoutes(principal, db)
}
