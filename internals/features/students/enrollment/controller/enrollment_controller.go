package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classmodel "sekolahku_backend/internals/features/academics/classes/model"
	dto "sekolahku_backend/internals/features/students/enrollment/dto"
	model "sekolahku_backend/internals/features/students/enrollment/model"
	service "sekolahku_backend/internals/features/students/enrollment/service"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
	helper "sekolahku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

func (h *EnrollmentController) loadStudent(tx *gorm.DB, id uuid.UUID) (*studentmodel.StudentModel, error) {
	var s studentmodel.StudentModel
	if err := tx.Where("student_id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, err
	}
	return &s, nil
}

func (h *EnrollmentController) loadClass(tx *gorm.DB, id uuid.UUID) (*classmodel.ClassSectionModel, error) {
	var cl classmodel.ClassSectionModel
	if err := tx.Where("class_section_id = ?", id).First(&cl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, err
	}
	return &cl, nil
}

/* ======================= MOVE CLASS ======================= */
// POST /api/a/enrollments/move-class
func (h *EnrollmentController) MoveClass(c *fiber.Ctx) error {
	var req dto.MoveClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	when := time.Time{}
	if req.EffectiveDate != nil {
		when = *req.EffectiveDate
	}

	var ev *model.EnrollmentEventModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		student, err := h.loadStudent(tx, req.StudentID)
		if err != nil {
			return err
		}
		dst, err := h.loadClass(tx, req.TargetClassID)
		if err != nil {
			return err
		}
		var src *classmodel.ClassSectionModel
		if student.StudentClassID != nil {
			src, err = h.loadClass(tx, *student.StudentClassID)
			if err != nil {
				return err
			}
		}
		ev, err = service.MoveClass(tx, student, src, dst, req.Note, when)
		return err
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Perpindahan kelas berhasil dicatat", dto.FromModel(*ev))
}

/* ======================= BULK PROMOTE ======================= */
// POST /api/a/enrollments/bulk-promote
// Semua siswa AKTIF di kelas asal dipindah ke kelas tujuan. Per siswa
// transaksinya sendiri: satu gagal tidak membatalkan yang lain.
func (h *EnrollmentController) BulkPromote(c *fiber.Ctx) error {
	var req dto.BulkPromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	src, err := h.loadClass(h.DB, req.SourceClassID)
	if err != nil {
		return err
	}
	dst, err := h.loadClass(h.DB, req.TargetClassID)
	if err != nil {
		return err
	}

	var students []studentmodel.StudentModel
	if err := h.DB.
		Where("student_class_id = ? AND student_status = ?", src.ClassSectionID, studentmodel.StudentAktif).
		Order("student_name ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	when := time.Time{}
	if req.EffectiveDate != nil {
		when = *req.EffectiveDate
	}

	berhasil, gagal := 0, 0
	var errs []string
	for i := range students {
		s := students[i]
		err := h.DB.Transaction(func(tx *gorm.DB) error {
			_, err := service.MoveClass(tx, &s, src, dst, req.Note, when)
			return err
		})
		if err != nil {
			gagal++
			errs = append(errs, fmt.Sprintf("%s: %v", s.StudentNIPD, err))
			continue
		}
		berhasil++
	}

	return helper.JsonOK(c, "Promosi massal selesai", fiber.Map{
		"berhasil": berhasil,
		"gagal":    gagal,
		"errors":   errs,
	})
}

/* ======================= MARK EXIT ======================= */
// POST /api/a/enrollments/transfer-out | /withdraw | /graduate
func (h *EnrollmentController) markExit(c *fiber.Ctx, action model.EnrollmentAction, okMsg string) error {
	var req dto.MarkExitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	when := time.Time{}
	if req.EffectiveDate != nil {
		when = *req.EffectiveDate
	}

	var ev *model.EnrollmentEventModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		student, err := h.loadStudent(tx, req.StudentID)
		if err != nil {
			return err
		}
		ev, err = service.MarkExit(tx, student, action, req.Note, when, req.Reason)
		return err
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, okMsg, dto.FromModel(*ev))
}

func (h *EnrollmentController) TransferOut(c *fiber.Ctx) error {
	return h.markExit(c, model.ActionPindahKeluar, "Pindah keluar berhasil dicatat")
}

func (h *EnrollmentController) Withdraw(c *fiber.Ctx) error {
	return h.markExit(c, model.ActionKeluar, "Pengunduran diri berhasil dicatat")
}

func (h *EnrollmentController) Graduate(c *fiber.Ctx) error {
	return h.markExit(c, model.ActionLulus, "Kelulusan berhasil dicatat")
}

/* ======================= REVERSALS ======================= */
// POST /api/a/enrollments/reverse-graduation
func (h *EnrollmentController) ReverseGraduation(c *fiber.Ctx) error {
	var req dto.ReverseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ev, err := service.ReverseGraduation(h.DB, req.StudentID, req.Note)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Kelulusan berhasil dibatalkan", dto.FromModel(*ev))
}

// POST /api/a/enrollments/reverse-transfer-out
func (h *EnrollmentController) ReverseTransferOut(c *fiber.Ctx) error {
	var req dto.ReverseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := service.ReverseTransferOut(h.DB, req.StudentID); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Pindah keluar berhasil dibatalkan", fiber.Map{"student_id": req.StudentID})
}

// POST /api/a/enrollments/reverse-transfer-in
func (h *EnrollmentController) ReverseTransferIn(c *fiber.Ctx) error {
	var req dto.ReverseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := service.ReverseTransferIn(h.DB, req.StudentID); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Pindah masuk berhasil dibatalkan", fiber.Map{"student_id": req.StudentID})
}

/* ======================= HISTORY ======================= */
// GET /api/a/students/:id/history
func (h *EnrollmentController) HistoryByStudent(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var list []model.EnrollmentEventModel
	if err := h.DB.
		Where("enrollment_event_student_id = ?", idStr).
		Order("enrollment_event_date ASC, enrollment_event_created_at ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModels(list))
}
