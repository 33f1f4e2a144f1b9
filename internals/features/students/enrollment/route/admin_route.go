package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollCtrl "sekolahku_backend/internals/features/students/enrollment/controller"
)

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollCtrl.NewEnrollmentController(db)

	g := r.Group("/enrollments")
	g.Post("/move-class", ctrl.MoveClass)
	g.Post("/bulk-promote", ctrl.BulkPromote)
	g.Post("/transfer-out", ctrl.TransferOut)
	g.Post("/withdraw", ctrl.Withdraw)
	g.Post("/graduate", ctrl.Graduate)

	// Pembatalan
	g.Post("/reverse-graduation", ctrl.ReverseGraduation)
	g.Post("/reverse-transfer-out", ctrl.ReverseTransferOut)
	g.Post("/reverse-transfer-in", ctrl.ReverseTransferIn)
}
