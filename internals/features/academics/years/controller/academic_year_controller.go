package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/years/dto"
	model "sekolahku_backend/internals/features/academics/years/model"
	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
	helper "sekolahku_backend/internals/helpers"
)

type AcademicYearController struct {
	DB *gorm.DB
}

func NewAcademicYearController(db *gorm.DB) *AcademicYearController {
	return &AcademicYearController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/academic-years
func (h *AcademicYearController) Create(c *fiber.Ctx) error {
	var req dto.CreateAcademicYearRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Tahun ajaran sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tahun ajaran")
	}

	return helper.JsonCreated(c, "Tahun ajaran berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/academic-years
func (h *AcademicYearController) List(c *fiber.Ctx) error {
	var list []model.AcademicYearModel
	if err := h.DB.
		Order("academic_year_start_year DESC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModels(list))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/academic-years/:id
func (h *AcademicYearController) GetByID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.AcademicYearModel
	if err := h.DB.Where("academic_year_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (partial) ======================== */
// PUT /api/a/academic-years/:id
func (h *AcademicYearController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var req dto.UpdateAcademicYearRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var curr model.AcademicYearModel
	if err := h.DB.Where("academic_year_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.AcademicYearName != nil {
		patch["academic_year_name"] = *req.AcademicYearName
	}
	if req.AcademicYearStartYear != nil {
		patch["academic_year_start_year"] = *req.AcademicYearStartYear
	}
	if req.AcademicYearEndYear != nil {
		patch["academic_year_end_year"] = *req.AcademicYearEndYear
	}
	if len(patch) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromModel(curr))
	}

	if err := h.DB.Model(&model.AcademicYearModel{}).
		Where("academic_year_id = ?", idStr).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui tahun ajaran")
	}

	var updated model.AcademicYearModel
	if err := h.DB.Where("academic_year_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Tahun ajaran berhasil diperbarui", dto.FromModel(curr))
	}
	return helper.JsonUpdated(c, "Tahun ajaran berhasil diperbarui", dto.FromModel(updated))
}

/* ======================== SET ACTIVE ======================== */
// POST /api/a/academic-years/:id/activate
// Satu transaksi: nonaktifkan semua tahun lain lalu aktifkan target —
// tidak boleh ada momen nol atau dua tahun aktif. Satu-satunya penulis
// flag academic_year_is_active.
func (h *AcademicYearController) SetActive(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var target model.AcademicYearModel
		if err := tx.Where("academic_year_id = ?", idStr).First(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
			}
			return err
		}
		if err := tx.Model(&model.AcademicYearModel{}).
			Where("academic_year_id <> ?", target.AcademicYearID).
			Update("academic_year_is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.AcademicYearModel{}).
			Where("academic_year_id = ?", target.AcademicYearID).
			Update("academic_year_is_active", true).Error
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Tahun ajaran berhasil diaktifkan", fiber.Map{"id": idStr})
}

/* ======================== DELETE ======================== */
// DELETE /api/a/academic-years/:id
// Ditolak kalau masih aktif atau masih punya siswa/tagihan.
func (h *AcademicYearController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.AcademicYearModel
	if err := h.DB.Where("academic_year_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.AcademicYearIsActive {
		return fiber.NewError(fiber.StatusConflict, "Tahun ajaran aktif tidak bisa dihapus — nonaktifkan dulu")
	}

	var nStudents int64
	if err := h.DB.Model(&studentmodel.StudentModel{}).
		Where("student_year_id = ?", row.AcademicYearID).
		Count(&nStudents).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if nStudents > 0 {
		return fiber.NewError(fiber.StatusConflict, "Tahun ajaran masih punya siswa")
	}

	var nInvoices int64
	if err := h.DB.Model(&invoicemodel.InvoiceModel{}).
		Where("invoice_year_id = ?", row.AcademicYearID).
		Count(&nInvoices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if nInvoices > 0 {
		return fiber.NewError(fiber.StatusConflict, "Tahun ajaran masih punya tagihan")
	}

	if err := h.DB.Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Tahun ajaran berhasil dihapus", fiber.Map{"id": idStr})
}
