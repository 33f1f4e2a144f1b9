package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	EnrollmentRoute "sekolahku_backend/internals/features/students/enrollment/route"
	StudentRoute "sekolahku_backend/internals/features/students/student/route"
)

func StudentsAdminRoutes(r fiber.Router, db *gorm.DB) {
	StudentRoute.StudentAdminRoutes(r, db)
	EnrollmentRoute.EnrollmentAdminRoutes(r, db)
}

func StudentsReadRoutes(r fiber.Router, db *gorm.DB) {
	StudentRoute.StudentReadRoutes(r, db)
}

func StudentsUserRoutes(r fiber.Router, db *gorm.DB) {
	StudentRoute.StudentUserRoutes(r, db)
}
