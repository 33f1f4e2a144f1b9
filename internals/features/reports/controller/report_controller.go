package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	yearmodel "sekolahku_backend/internals/features/academics/years/model"
	service "sekolahku_backend/internals/features/reports/service"
	helper "sekolahku_backend/internals/helpers"
)

type ReportController struct {
	DB  *gorm.DB
	Svc *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		DB:  db,
		Svc: service.NewReportService(db, configs.AcademicStartMonth),
	}
}

func (h *ReportController) parseFilter(c *fiber.Ctx) (service.ReportFilter, error) {
	yearID, err := uuid.Parse(strings.TrimSpace(c.Query("year_id")))
	if err != nil {
		return service.ReportFilter{}, fiber.NewError(fiber.StatusBadRequest, "year_id wajib dan harus valid")
	}
	f := service.ReportFilter{YearID: yearID}

	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
		}
		f.ClassID = &id
	}
	if raw := strings.TrimSpace(c.Query("fee_type_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "fee_type_id tidak valid")
		}
		f.FeeTypeID = &id
	}
	return f, nil
}

/* ======================== SUMMARY ======================== */
// GET /api/a/reports/summary?year_id=
func (h *ReportController) Summary(c *fiber.Ctx) error {
	yearID, err := uuid.Parse(strings.TrimSpace(c.Query("year_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "year_id wajib dan harus valid")
	}

	summary, err := h.Svc.Summarize(yearID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", summary)
}

/* ======================== SNAPSHOT ======================== */
// POST /api/a/reports/snapshot?year_id= — simpan ringkasan ke kolom
// stats tahun ajaran (cache untuk dashboard).
func (h *ReportController) Snapshot(c *fiber.Ctx) error {
	yearID, err := uuid.Parse(strings.TrimSpace(c.Query("year_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "year_id wajib dan harus valid")
	}

	summary, err := h.Svc.SnapshotYearStats(yearID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Snapshot laporan berhasil disimpan", summary)
}

/* ======================== ARREARS ======================== */
// GET /api/a/reports/arrears?year_id=&class_id=&fee_type_id=
func (h *ReportController) Arrears(c *fiber.Ctx) error {
	f, err := h.parseFilter(c)
	if err != nil {
		return err
	}

	rows, err := h.Svc.Arrears(f)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ======================== ARREARS EXPORT ======================== */
// GET /api/a/reports/arrears/export?year_id=&class_id=&fee_type_id=
func (h *ReportController) ArrearsExport(c *fiber.Ctx) error {
	f, err := h.parseFilter(c)
	if err != nil {
		return err
	}

	var year yearmodel.AcademicYearModel
	if err := h.DB.Where("academic_year_id = ?", f.YearID).First(&year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return err
	}

	rows, err := h.Svc.Arrears(f)
	if err != nil {
		return err
	}

	buf, filename, err := service.ExportArrearsExcel(year.AcademicYearName, rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat file Excel: "+err.Error())
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
