package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	FeeTypeRoute "sekolahku_backend/internals/features/billing/feetypes/route"
	InvoiceRoute "sekolahku_backend/internals/features/billing/invoices/route"
	PaymentRoute "sekolahku_backend/internals/features/billing/payments/route"
)

func BillingAdminRoutes(r fiber.Router, db *gorm.DB) {
	FeeTypeRoute.FeeTypeAdminRoutes(r, db)
	InvoiceRoute.InvoiceAdminRoutes(r, db)
	PaymentRoute.PaymentAdminRoutes(r, db)
}

func BillingReadRoutes(r fiber.Router, db *gorm.DB) {
	FeeTypeRoute.FeeTypeReadRoutes(r, db)
	InvoiceRoute.InvoiceReadRoutes(r, db)
}
