package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeCtrl "sekolahku_backend/internals/features/billing/feetypes/controller"
)

func FeeTypeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeCtrl.NewFeeTypeController(db)

	g := r.Group("/fee-types")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/special-rate", ctrl.SetSpecialRate)
}

func FeeTypeReadRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeCtrl.NewFeeTypeController(db)

	g := r.Group("/fee-types")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
