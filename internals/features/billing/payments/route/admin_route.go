package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtrl "sekolahku_backend/internals/features/billing/payments/controller"
)

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentCtrl.NewPaymentController(db)

	g := r.Group("/payments")
	g.Post("/", ctrl.Record)
	g.Delete("/:id", ctrl.Reverse)
	g.Get("/:id/receipt", ctrl.Receipt)
	g.Get("/:id/receipt.pdf", ctrl.ReceiptPDF)
}
