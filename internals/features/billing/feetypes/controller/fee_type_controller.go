package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	dto "sekolahku_backend/internals/features/billing/feetypes/dto"
	model "sekolahku_backend/internals/features/billing/feetypes/model"
	service "sekolahku_backend/internals/features/billing/feetypes/service"
	invoiceservice "sekolahku_backend/internals/features/billing/invoices/service"
	helper "sekolahku_backend/internals/helpers"
)

type FeeTypeController struct {
	DB *gorm.DB
}

func NewFeeTypeController(db *gorm.DB) *FeeTypeController {
	return &FeeTypeController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/fee-types
// Jenis tagihan dibuat beserta link target, lalu tagihan langsung
// digenerate untuk seluruh siswa sasaran (per siswa transaksinya sendiri).
func (h *FeeTypeController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.FeeTypeTarget == model.TargetByClass && len(req.ClassIDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Target BY_CLASS butuh minimal satu kelas")
	}
	if req.FeeTypeTarget == model.TargetByStudent && len(req.StudentIDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Target BY_STUDENT butuh minimal satu siswa")
	}

	ft := req.ToModel()
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ft).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Jenis tagihan sudah ada")
			}
			return err
		}
		if err := service.ReplaceClassLinks(tx, ft.FeeTypeID, req.ClassIDs); err != nil {
			return err
		}
		return service.ReplaceStudentLinks(tx, ft.FeeTypeID, req.StudentIDs)
	})
	if err != nil {
		return err
	}

	// Generate di luar transaksi create: per siswa terisolasi, gagal
	// sebagian tidak membatalkan jenis tagihan yang sudah jadi.
	res, err := invoiceservice.GenerateForFeeType(h.DB, ft, configs.AcademicStartMonth)
	if err != nil {
		log.Printf("[FEE] ❌ generate tagihan %s gagal: %v", ft.FeeTypeName, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Jenis tagihan dibuat tapi generate tagihan gagal: "+err.Error())
	}

	return helper.JsonCreated(c, fmt.Sprintf("Jenis tagihan berhasil dibuat, %d tagihan digenerate", res.Invoices), fiber.Map{
		"fee_type": dto.FromModel(*ft),
		"generate": res,
	})
}

/* ======================== LIST ======================== */
// GET /api/a/fee-types?year_id=&active=
func (h *FeeTypeController) List(c *fiber.Ctx) error {
	base := h.DB.Model(&model.FeeTypeModel{})
	if yearID := strings.TrimSpace(c.Query("year_id")); yearID != "" {
		base = base.Where("fee_type_year_id = ?", yearID)
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		base = base.Where("fee_type_is_active = ?", active == "true")
	}

	var list []model.FeeTypeModel
	if err := base.
		Order("fee_type_created_at DESC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModels(list))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/fee-types/:id
func (h *FeeTypeController) GetByID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.FeeTypeModel
	if err := h.DB.Where("fee_type_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Jenis tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/fee-types/:id
// Link target diganti utuh (delete-then-recreate) kalau dikirim.
// Perubahan tarif dasar TIDAK menyentuh invoice yang sudah ada.
func (h *FeeTypeController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var req dto.UpdateFeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var curr model.FeeTypeModel
	if err := h.DB.Where("fee_type_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Jenis tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.FeeTypeName != nil {
		patch["fee_type_name"] = strings.TrimSpace(*req.FeeTypeName)
	}
	if len(req.FeeTypeCategories) > 0 {
		cats := make([]model.FeeCategory, 0, len(req.FeeTypeCategories))
		for _, cstr := range req.FeeTypeCategories {
			cats = append(cats, model.FeeCategory(cstr))
		}
		patch["fee_type_categories"] = model.JoinCategories(cats)
	}
	if req.FeeTypeAmountIDR != nil {
		patch["fee_type_amount_idr"] = *req.FeeTypeAmountIDR
	}
	if req.FeeTypeTarget != nil {
		patch["fee_type_target"] = *req.FeeTypeTarget
	}
	if req.FeeTypeIsActive != nil {
		patch["fee_type_is_active"] = *req.FeeTypeIsActive
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if len(patch) > 0 {
			if err := tx.Model(&model.FeeTypeModel{}).
				Where("fee_type_id = ?", curr.FeeTypeID).
				Updates(patch).Error; err != nil {
				return err
			}
		}
		if req.ClassIDs != nil {
			if err := service.ReplaceClassLinks(tx, curr.FeeTypeID, req.ClassIDs); err != nil {
				return err
			}
		}
		if req.StudentIDs != nil {
			if err := service.ReplaceStudentLinks(tx, curr.FeeTypeID, req.StudentIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui jenis tagihan: "+err.Error())
	}

	var updated model.FeeTypeModel
	if err := h.DB.Where("fee_type_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Jenis tagihan berhasil diperbarui", dto.FromModel(curr))
	}
	return helper.JsonUpdated(c, "Jenis tagihan berhasil diperbarui", dto.FromModel(updated))
}

/* ======================== DELETE ======================== */
// DELETE /api/a/fee-types/:id
// Kalau sudah ada pembayaran di tagihan mana pun jenis ini → 409,
// nonaktifkan saja (fee_type_is_active=false). Kalau belum, jenis
// dihapus beserta seluruh tagihan dan link-nya.
func (h *FeeTypeController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}
	feeTypeID, err := uuid.Parse(idStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var ft model.FeeTypeModel
		if err := tx.Where("fee_type_id = ?", feeTypeID).First(&ft).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jenis tagihan tidak ditemukan")
			}
			return err
		}

		// Termasuk pembayaran yang sudah direversal: riwayatnya tetap
		// menunjuk invoice jenis ini, tidak boleh jadi yatim.
		var nPayments int64
		if err := tx.Table("payments").
			Joins("JOIN invoices ON invoices.invoice_id = payments.payment_invoice_id").
			Where("invoices.invoice_fee_type_id = ?", feeTypeID).
			Count(&nPayments).Error; err != nil {
			return err
		}
		if nPayments > 0 {
			return fiber.NewError(fiber.StatusConflict, "Jenis tagihan sudah punya pembayaran — nonaktifkan, jangan hapus")
		}

		if err := tx.Exec(`DELETE FROM invoices WHERE invoice_fee_type_id = ?`, feeTypeID).Error; err != nil {
			return err
		}
		if err := service.ReplaceClassLinks(tx, feeTypeID, nil); err != nil {
			return err
		}
		if err := service.ReplaceStudentLinks(tx, feeTypeID, nil); err != nil {
			return err
		}
		return tx.Delete(&ft).Error
	})
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Jenis tagihan berhasil dihapus", fiber.Map{"id": idStr})
}

/* ======================== SPECIAL RATE ======================== */
// POST /api/a/fee-types/:id/special-rate
func (h *FeeTypeController) SetSpecialRate(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	feeTypeID, err := uuid.Parse(idStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.SetSpecialRateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	touched, err := service.SetSpecialRate(h.DB, req.StudentID, feeTypeID, req.AmountIDR, req.Cascade)
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Tarif khusus berhasil dipasang", fiber.Map{
		"student_id":        req.StudentID,
		"fee_type_id":       feeTypeID,
		"amount_idr":        req.AmountIDR,
		"invoices_disesuai": touched,
	})
}
