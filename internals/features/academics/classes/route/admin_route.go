package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtrl "sekolahku_backend/internals/features/academics/classes/controller"
)

func ClassSectionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassSectionController(db)

	g := r.Group("/classes")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/generate-grid", ctrl.GenerateGrid)
}

func ClassSectionReadRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassSectionController(db)

	g := r.Group("/classes")
	g.Get("/", ctrl.List)
}
