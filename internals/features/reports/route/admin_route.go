package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtrl "sekolahku_backend/internals/features/reports/controller"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportCtrl.NewReportController(db)

	g := r.Group("/reports")
	g.Get("/summary", ctrl.Summary)
	g.Post("/snapshot", ctrl.Snapshot)
	g.Get("/arrears", ctrl.Arrears)
	g.Get("/arrears/export", ctrl.ArrearsExport)
}

// Kepala sekolah: baca laporan, tanpa snapshot.
func ReportReadRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportCtrl.NewReportController(db)

	g := r.Group("/reports")
	g.Get("/summary", ctrl.Summary)
	g.Get("/arrears", ctrl.Arrears)
	g.Get("/arrears/export", ctrl.ArrearsExport)
}
