package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ReportRoute "sekolahku_backend/internals/features/reports/route"
)

func ReportsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ReportRoute.ReportAdminRoutes(r, db)
}

func ReportsReadRoutes(r fiber.Router, db *gorm.DB) {
	ReportRoute.ReportReadRoutes(r, db)
}
