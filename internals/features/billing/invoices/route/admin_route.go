package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceCtrl "sekolahku_backend/internals/features/billing/invoices/controller"
	paymentCtrl "sekolahku_backend/internals/features/billing/payments/controller"
)

func InvoiceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := invoiceCtrl.NewInvoiceController(db)
	payment := paymentCtrl.NewPaymentController(db)

	g := r.Group("/invoices")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Get("/:id/payments", payment.ListByInvoice)
}

func InvoiceReadRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := invoiceCtrl.NewInvoiceController(db)
	payment := paymentCtrl.NewPaymentController(db)

	g := r.Group("/invoices")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Get("/:id/payments", payment.ListByInvoice)
}
