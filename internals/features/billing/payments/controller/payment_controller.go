package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	invoicedto "sekolahku_backend/internals/features/billing/invoices/dto"
	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
	dto "sekolahku_backend/internals/features/billing/payments/dto"
	model "sekolahku_backend/internals/features/billing/payments/model"
	service "sekolahku_backend/internals/features/billing/payments/service"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
	helper "sekolahku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= RECORD ======================= */
// POST /api/a/payments
// Kelebihan bayar diterima penuh; selisihnya otomatis tercatat di note
// kuitansi sebagai infaq.
func (h *PaymentController) Record(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var createdBy *uuid.UUID
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		createdBy = &userID
	}

	payment, invoice, err := service.RecordPayment(h.DB, configs.ReceiptTemplate, req.InvoiceID, service.RecordPaymentInput{
		AmountIDR: req.AmountIDR,
		Method:    req.Method,
		Note:      req.Note,
		CreatedBy: createdBy,
		PaidAt:    req.PaidAt,
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", fiber.Map{
		"payment": dto.FromModel(*payment),
		"invoice": invoicedto.FromModel(*invoice),
	})
}

/* ======================= REVERSE ======================= */
// DELETE /api/a/payments/:id
// Koreksi salah input: payment di-soft-delete, paid invoice dihitung
// ulang dari jumlah pembayaran tersisa.
func (h *PaymentController) Reverse(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	paymentID, err := uuid.Parse(idStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	invoice, err := service.ReversePayment(h.DB, paymentID)
	if err != nil {
		return err
	}

	return helper.JsonDeleted(c, "Pembayaran berhasil dibatalkan", fiber.Map{
		"payment_id": paymentID,
		"invoice":    invoicedto.FromModel(*invoice),
	})
}

/* ======================== LIST PER INVOICE ======================== */
// GET /api/a/invoices/:id/payments
func (h *PaymentController) ListByInvoice(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var list []model.PaymentModel
	if err := h.DB.
		Where("payment_invoice_id = ?", idStr).
		Order("payment_paid_at ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModels(list))
}

/* ======================== RECEIPT ======================== */

func (h *PaymentController) loadReceiptData(paymentID uuid.UUID) (service.ReceiptData, error) {
	var payment model.PaymentModel
	if err := h.DB.Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ReceiptData{}, fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return service.ReceiptData{}, err
	}

	var invoice invoicemodel.InvoiceModel
	if err := h.DB.Where("invoice_id = ?", payment.PaymentInvoiceID).First(&invoice).Error; err != nil {
		return service.ReceiptData{}, err
	}

	var student studentmodel.StudentModel
	if err := h.DB.Unscoped().Where("student_id = ?", invoice.InvoiceStudentID).First(&student).Error; err != nil {
		return service.ReceiptData{}, err
	}

	return service.ReceiptData{Payment: &payment, Invoice: &invoice, Student: &student}, nil
}

// GET /api/a/payments/:id/receipt — data kuitansi (JSON).
func (h *PaymentController) Receipt(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	data, err := h.loadReceiptData(paymentID)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"payment": dto.FromModel(*data.Payment),
		"invoice": invoicedto.FromModel(*data.Invoice),
		"student": fiber.Map{
			"student_id":             data.Student.StudentID,
			"student_nipd":           data.Student.StudentNIPD,
			"student_name":           data.Student.StudentName,
			"student_class_snapshot": data.Student.StudentClassSnapshot,
		},
	})
}

// GET /api/a/payments/:id/receipt.pdf — kuitansi siap cetak.
func (h *PaymentController) ReceiptPDF(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	data, err := h.loadReceiptData(paymentID)
	if err != nil {
		return err
	}

	pdfBytes, err := service.GenerateReceiptPDF(data)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat PDF kuitansi: "+err.Error())
	}

	fileName := strings.ReplaceAll(data.Payment.PaymentReceiptNo, "/", "-") + ".pdf"
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	return c.Send(pdfBytes)
}
