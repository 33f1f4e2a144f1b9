package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "sekolahku_backend/internals/features/academics/classes/dto"
	model "sekolahku_backend/internals/features/academics/classes/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassSectionController struct {
	DB *gorm.DB
}

func NewClassSectionController(db *gorm.DB) *ClassSectionController {
	return &ClassSectionController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/classes
func (h *ClassSectionController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassSectionRequest
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
			return fiber.NewError(fiber.StatusConflict, "Nama kelas sudah dipakai di tahun ajaran ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/classes?year_id=
func (h *ClassSectionController) List(c *fiber.Ctx) error {
	base := h.DB.Model(&model.ClassSectionModel{})
	if yearID := strings.TrimSpace(c.Query("year_id")); yearID != "" {
		base = base.Where("class_section_year_id = ?", yearID)
	}

	var list []model.ClassSectionModel
	if err := base.
		Order("class_section_grade ASC, class_section_name ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModels(list))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/classes/:id
func (h *ClassSectionController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var req dto.UpdateClassSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var curr model.ClassSectionModel
	if err := h.DB.Where("class_section_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Catatan: rename kelas TIDAK menyentuh snapshot nama kelas di
	// siswa/histori/invoice — snapshot beku sesuai kontraknya.
	patch := map[string]interface{}{}
	if req.ClassSectionName != nil {
		patch["class_section_name"] = strings.ToUpper(strings.TrimSpace(*req.ClassSectionName))
	}
	if req.ClassSectionGrade != nil {
		patch["class_section_grade"] = *req.ClassSectionGrade
	}
	if len(patch) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromModel(curr))
	}

	if err := h.DB.Model(&model.ClassSectionModel{}).
		Where("class_section_id = ?", idStr).
		Updates(patch).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Nama kelas sudah dipakai di tahun ajaran ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}

	var updated model.ClassSectionModel
	if err := h.DB.Where("class_section_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.FromModel(curr))
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.FromModel(updated))
}

/* ======================== DELETE ======================== */
// DELETE /api/a/classes/:id — ditolak selama masih ada siswa terdaftar.
func (h *ClassSectionController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var n int64
	if err := h.DB.Model(&studentmodel.StudentModel{}).
		Where("student_class_id = ?", idStr).
		Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusConflict, "Kelas masih punya siswa terdaftar")
	}

	res := h.DB.Where("class_section_id = ?", idStr).Delete(&model.ClassSectionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"id": idStr})
}

/* ======================== GENERATE GRID ======================== */
// POST /api/a/classes/generate-grid
// Bulk upsert roster standar (tingkat × seksi) untuk satu tahun ajaran.
// Upsert by (name, year) — menjalankan ulang aman (idempotent).
func (h *ClassSectionController) GenerateGrid(c *fiber.Ctx) error {
	var req dto.GenerateGridRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	created := 0
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for grade := 1; grade <= req.MaxGrade; grade++ {
			for _, section := range req.Sections {
				row := model.ClassSectionModel{
					ClassSectionName:   fmt.Sprintf("%d%s", grade, strings.ToUpper(strings.TrimSpace(section))),
					ClassSectionGrade:  grade,
					ClassSectionYearID: req.YearID,
				}
				res := tx.Clauses(clause.OnConflict{
					Columns: []clause.Column{
						{Name: "class_section_name"},
						{Name: "class_section_year_id"},
					},
					DoNothing: true,
				}).Create(&row)
				if res.Error != nil {
					return res.Error
				}
				created += int(res.RowsAffected)
			}
		}
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate kelas: "+err.Error())
	}

	return helper.JsonCreated(c, "Roster kelas berhasil digenerate", fiber.Map{"dibuat": created})
}
