package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ClassRoute "sekolahku_backend/internals/features/academics/classes/route"
	YearRoute "sekolahku_backend/internals/features/academics/years/route"
)

func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	YearRoute.AcademicYearAdminRoutes(r, db)
	ClassRoute.ClassSectionAdminRoutes(r, db)
}

func AcademicsReadRoutes(r fiber.Router, db *gorm.DB) {
	YearRoute.AcademicYearReadRoutes(r, db)
	ClassRoute.ClassSectionReadRoutes(r, db)
}
