package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	dto "sekolahku_backend/internals/features/billing/invoices/dto"
	model "sekolahku_backend/internals/features/billing/invoices/model"
	service "sekolahku_backend/internals/features/billing/invoices/service"
	eventmodel "sekolahku_backend/internals/features/students/enrollment/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
	helper "sekolahku_backend/internals/helpers"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

// listForStudent: SATU jalur untuk semua tampilan tagihan per siswa
// (admin, kasir, orang tua) — selalu lewat filter rentang enrolment.
func (h *InvoiceController) listForStudent(studentID uuid.UUID, yearID, status string) (dto.StudentInvoicesResponse, error) {
	var student studentmodel.StudentModel
	if err := h.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentInvoicesResponse{}, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return dto.StudentInvoicesResponse{}, err
	}

	q := h.DB.Where("invoice_student_id = ?", studentID)
	if yearID != "" {
		q = q.Where("invoice_year_id = ?", yearID)
	}
	if status != "" {
		q = q.Where("invoice_status = ?", strings.ToUpper(status))
	}

	var invoices []model.InvoiceModel
	if err := q.
		Order("invoice_calendar_year ASC NULLS FIRST, invoice_month ASC NULLS FIRST, invoice_created_at ASC").
		Find(&invoices).Error; err != nil {
		return dto.StudentInvoicesResponse{}, err
	}

	var events []eventmodel.EnrollmentEventModel
	if err := h.DB.
		Where("enrollment_event_student_id = ?", studentID).
		Find(&events).Error; err != nil {
		return dto.StudentInvoicesResponse{}, err
	}

	visible := service.FilterByEnrollment(invoices, events, configs.AcademicStartMonth)
	return dto.BuildStudentInvoices(studentID, visible), nil
}

/* ======================== PER STUDENT ======================== */
// GET /api/a/students/:id/invoices?year_id=&status=
func (h *InvoiceController) ListByStudent(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	studentID, err := uuid.Parse(idStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	resp, err := h.listForStudent(studentID,
		strings.TrimSpace(c.Query("year_id")),
		strings.TrimSpace(c.Query("status")))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", resp)
}

/* ======================== PARENT VIEW ======================== */
// GET /api/u/me/invoices — tagihan anak berdasar student_id di token.
// Jalur dan filter yang sama persis dengan tampilan admin.
func (h *InvoiceController) MyInvoices(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	resp, err := h.listForStudent(studentID,
		strings.TrimSpace(c.Query("year_id")),
		strings.TrimSpace(c.Query("status")))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", resp)
}

/* ======================== GET BY ID ======================== */
// GET /api/a/invoices/:id
func (h *InvoiceController) GetByID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.InvoiceModel
	if err := h.DB.Where("invoice_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

// filterPage menerapkan filter rentang enrolment pada satu halaman hasil
// lintas siswa: event PINDAH_MASUK/PINDAH_KELUAR diambil sekali per batch,
// lalu difilter per siswa lewat implementasi yang sama dengan tampilan
// per siswa.
func (h *InvoiceController) filterPage(invoices []model.InvoiceModel) ([]model.InvoiceModel, error) {
	if len(invoices) == 0 {
		return invoices, nil
	}

	ids := make([]uuid.UUID, 0, len(invoices))
	seen := map[uuid.UUID]bool{}
	for _, inv := range invoices {
		if !seen[inv.InvoiceStudentID] {
			seen[inv.InvoiceStudentID] = true
			ids = append(ids, inv.InvoiceStudentID)
		}
	}

	var events []eventmodel.EnrollmentEventModel
	if err := h.DB.
		Where("enrollment_event_student_id IN ?", ids).
		Where("enrollment_event_action IN ?", []eventmodel.EnrollmentAction{
			eventmodel.ActionPindahMasuk, eventmodel.ActionPindahKeluar,
		}).
		Find(&events).Error; err != nil {
		return nil, err
	}

	byStudent := map[uuid.UUID][]eventmodel.EnrollmentEventModel{}
	for _, ev := range events {
		byStudent[ev.EnrollmentEventStudentID] = append(byStudent[ev.EnrollmentEventStudentID], ev)
	}

	perStudent := map[uuid.UUID][]model.InvoiceModel{}
	for _, inv := range invoices {
		perStudent[inv.InvoiceStudentID] = append(perStudent[inv.InvoiceStudentID], inv)
	}

	out := make([]model.InvoiceModel, 0, len(invoices))
	for _, inv := range invoices {
		visible := service.FilterByEnrollment(perStudent[inv.InvoiceStudentID], byStudent[inv.InvoiceStudentID], configs.AcademicStartMonth)
		for _, v := range visible {
			if v.InvoiceID == inv.InvoiceID {
				out = append(out, inv)
				break
			}
		}
	}
	return out, nil
}

/* ======================== COLLECTION VIEW ======================== */
// GET /api/a/invoices?year_id=&fee_type_id=&status=&month=&calendar_year=
// Tampilan lintas siswa untuk kasir/laporan; paginasi wajib. Filter
// rentang enrolment tetap berlaku — halaman bisa lebih pendek dari
// per_page kalau ada baris yang tersembunyi.
func (h *InvoiceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	base := h.DB.Model(&model.InvoiceModel{})
	if yearID := strings.TrimSpace(c.Query("year_id")); yearID != "" {
		base = base.Where("invoice_year_id = ?", yearID)
	}
	if feeTypeID := strings.TrimSpace(c.Query("fee_type_id")); feeTypeID != "" {
		base = base.Where("invoice_fee_type_id = ?", feeTypeID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		base = base.Where("invoice_status = ?", strings.ToUpper(status))
	}
	if month := c.QueryInt("month", 0); month >= 1 && month <= 12 {
		base = base.Where("invoice_month = ?", month)
	}
	if calYear := c.QueryInt("calendar_year", 0); calYear > 0 {
		base = base.Where("invoice_calendar_year = ?", calYear)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.InvoiceModel
	if err := base.
		Order("invoice_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	list, err := h.filterPage(list)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
