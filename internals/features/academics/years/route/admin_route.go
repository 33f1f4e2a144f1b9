package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearCtrl "sekolahku_backend/internals/features/academics/years/controller"
)

func AcademicYearAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := yearCtrl.NewAcademicYearController(db)

	g := r.Group("/academic-years")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Post("/:id/activate", ctrl.SetActive)
	g.Delete("/:id", ctrl.Delete)
}

// Read-only untuk kepala sekolah.
func AcademicYearReadRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := yearCtrl.NewAcademicYearController(db)

	g := r.Group("/academic-years")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
