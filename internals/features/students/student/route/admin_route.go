package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceCtrl "sekolahku_backend/internals/features/billing/invoices/controller"
	enrollCtrl "sekolahku_backend/internals/features/students/enrollment/controller"
	studentCtrl "sekolahku_backend/internals/features/students/student/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)
	enroll := enrollCtrl.NewEnrollmentController(db)
	invoice := invoiceCtrl.NewInvoiceController(db)

	g := r.Group("/students")
	g.Post("/", ctrl.Create)
	g.Post("/transfer-in", ctrl.TransferIn)
	g.Post("/import", ctrl.Import)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)

	// Tampilan per siswa (histori & tagihan)
	g.Get("/:id/history", enroll.HistoryByStudent)
	g.Get("/:id/invoices", invoice.ListByStudent)
}

// Read-only untuk kepala sekolah.
func StudentReadRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)
	enroll := enrollCtrl.NewEnrollmentController(db)
	invoice := invoiceCtrl.NewInvoiceController(db)

	g := r.Group("/students")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Get("/:id/history", enroll.HistoryByStudent)
	g.Get("/:id/invoices", invoice.ListByStudent)
}
