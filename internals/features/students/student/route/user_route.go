package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceCtrl "sekolahku_backend/internals/features/billing/invoices/controller"
	studentCtrl "sekolahku_backend/internals/features/students/student/controller"
)

// Rute wali: scoped ke satu siswa lewat student_id di token.
func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)
	invoice := invoiceCtrl.NewInvoiceController(db)

	g := r.Group("/me")
	g.Get("/student", ctrl.MyProfile)
	g.Get("/invoices", invoice.MyInvoices)
}
