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
	invoiceservice "sekolahku_backend/internals/features/billing/invoices/service"
	paymentmodel "sekolahku_backend/internals/features/billing/payments/model"
	eventmodel "sekolahku_backend/internals/features/students/enrollment/model"
	enrollservice "sekolahku_backend/internals/features/students/enrollment/service"
	dto "sekolahku_backend/internals/features/students/student/dto"
	model "sekolahku_backend/internals/features/students/student/model"
	helper "sekolahku_backend/internals/helpers"

	"sekolahku_backend/internals/configs"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// createStudentTx: jalur tunggal pembuatan siswa (entri manual, import,
// pindah masuk). Satu transaksi: insert siswa + satu event histori +
// generate tagihan untuk semua jenis tagihan yang menyasar siswa ini.
func (h *StudentController) createStudentTx(tx *gorm.DB, req dto.CreateStudentRequest, action eventmodel.EnrollmentAction, note *string, when time.Time, minOrder int) (*model.StudentModel, int, error) {
	var class classmodel.ClassSectionModel
	if err := tx.Where("class_section_id = ?", req.StudentClassID).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, 0, err
	}

	className := class.ClassSectionName
	yearID := class.ClassSectionYearID
	student := model.StudentModel{
		StudentNIPD:          req.StudentNIPD,
		StudentName:          req.StudentName,
		StudentSex:           req.StudentSex,
		StudentClassID:       &class.ClassSectionID,
		StudentClassSnapshot: &className,
		StudentYearID:        &yearID,
		StudentStatus:        model.StudentAktif,
		StudentAktif:         true,
		StudentEntryYear:     req.StudentEntryYear,
		StudentParentName:    req.StudentParentName,
		StudentParentPhone:   req.StudentParentPhone,
	}
	if err := tx.Create(&student).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return nil, 0, fiber.NewError(fiber.StatusConflict, "NIPD sudah terdaftar: "+req.StudentNIPD)
		}
		return nil, 0, err
	}

	if _, err := enrollservice.AppendEvent(tx, &student, action, note, when); err != nil {
		return nil, 0, err
	}

	created, err := invoiceservice.GenerateForNewStudent(tx, &student, configs.AcademicStartMonth, minOrder)
	if err != nil {
		return nil, 0, err
	}
	return &student, created, nil
}

/* ======================= CREATE ======================= */
// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var student *model.StudentModel
	var nInvoices int
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		s, n, err := h.createStudentTx(tx, req, eventmodel.ActionMasukBaru, nil, time.Time{}, 0)
		if err != nil {
			return err
		}
		student, nInvoices = s, n
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, fmt.Sprintf("Siswa berhasil dibuat, %d tagihan digenerate", nInvoices), dto.FromModel(*student))
}

/* ======================= TRANSFER IN ======================= */
// POST /api/a/students/transfer-in
// Siswa pindahan tengah tahun: tagihan bulanan mulai bulan efektif —
// bulan-bulan sebelum masuk tidak pernah ditagih.
func (h *StudentController) TransferIn(c *fiber.Ctx) error {
	var req dto.TransferInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	when := time.Now()
	if req.EffectiveDate != nil {
		when = *req.EffectiveDate
	}
	minOrder := invoiceservice.CurrentOrder(when, configs.AcademicStartMonth)

	var student *model.StudentModel
	var nInvoices int
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		s, n, err := h.createStudentTx(tx, req.CreateStudentRequest, eventmodel.ActionPindahMasuk, req.Note, when, minOrder)
		if err != nil {
			return err
		}
		student, nInvoices = s, n
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, fmt.Sprintf("Siswa pindahan berhasil dicatat, %d tagihan digenerate", nInvoices), dto.FromModel(*student))
}

/* ======================= IMPORT ======================= */
// POST /api/a/students/import
// Konsumsi baris hasil parse Excel yang sudah tervalidasi. Per baris
// transaksinya sendiri: satu baris gagal (mis. NIPD dobel) tidak
// membatalkan baris lain.
func (h *StudentController) Import(c *fiber.Ctx) error {
	var req dto.ImportStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	berhasil, gagal := 0, 0
	var errs []string
	for _, row := range req.Rows {
		err := h.DB.Transaction(func(tx *gorm.DB) error {
			var class classmodel.ClassSectionModel
			if err := tx.
				Where("class_section_name = ? AND class_section_year_id = ?", strings.ToUpper(strings.TrimSpace(row.ClassName)), req.YearID).
				First(&class).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan: "+row.ClassName)
				}
				return err
			}
			create := dto.CreateStudentRequest{
				StudentNIPD:        row.StudentNIPD,
				StudentName:        row.StudentName,
				StudentSex:         row.StudentSex,
				StudentClassID:     class.ClassSectionID,
				StudentParentName:  row.StudentParentName,
				StudentParentPhone: row.StudentParentPhone,
			}
			_, _, err := h.createStudentTx(tx, create, eventmodel.ActionMasukBaru, nil, time.Time{}, 0)
			return err
		})
		if err != nil {
			gagal++
			errs = append(errs, fmt.Sprintf("%s: %v", row.StudentNIPD, err))
			continue
		}
		berhasil++
	}

	return helper.JsonOK(c, "Import selesai", fiber.Map{
		"berhasil": berhasil,
		"gagal":    gagal,
		"errors":   errs,
	})
}

/* ======================== LIST ======================== */
// GET /api/a/students?year_id=&class_id=&status=&q=
func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.StudentModel{})
	if yearID := strings.TrimSpace(c.Query("year_id")); yearID != "" {
		base = base.Where("student_year_id = ?", yearID)
	}
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		base = base.Where("student_class_id = ?", classID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		base = base.Where("student_status = ?", strings.ToUpper(status))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(student_name ILIKE ? OR student_nipd ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.StudentModel
	if err := base.
		Order("student_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.StudentModel
	if err := h.DB.Where("student_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/students/:id — data identitas saja; perpindahan kelas/status
// lewat endpoint enrolment, bukan di sini.
func (h *StudentController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var curr model.StudentModel
	if err := h.DB.Where("student_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.StudentName != nil {
		patch["student_name"] = strings.TrimSpace(*req.StudentName)
	}
	if req.StudentSex != nil {
		patch["student_sex"] = *req.StudentSex
	}
	if req.StudentParentName != nil {
		patch["student_parent_name"] = *req.StudentParentName
	}
	if req.StudentParentPhone != nil {
		patch["student_parent_phone"] = *req.StudentParentPhone
	}
	if len(patch) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromModel(curr))
	}

	if err := h.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", idStr).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}

	var updated model.StudentModel
	if err := h.DB.Where("student_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Siswa berhasil diperbarui", dto.FromModel(curr))
	}
	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", dto.FromModel(updated))
}

/* ======================== PARENT VIEW ======================== */
// GET /api/u/me/student — profil anak berdasar student_id di token.
func (h *StudentController) MyProfile(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.StudentModel
	if err := h.DB.Where("student_id = ?", studentID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== DELETE ======================== */
// DELETE /api/a/students/:id
// Hard delete hanya bila belum ada riwayat pembayaran; tagihan ikut
// terhapus. Kalau sudah pernah bayar → 409, pakai nonaktifkan saja.
func (h *StudentController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}
	studentID, err := uuid.Parse(idStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var student model.StudentModel
		if err := tx.Where("student_id = ?", studentID).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
			}
			return err
		}

		// Unscoped: pembayaran yang sudah direversal tetap riwayat — nomor
		// kuitansinya masih hidup dan tidak boleh jadi yatim.
		var nPayments int64
		if err := tx.Unscoped().Model(&paymentmodel.PaymentModel{}).
			Joins("JOIN invoices ON invoices.invoice_id = payments.payment_invoice_id").
			Where("invoices.invoice_student_id = ?", studentID).
			Count(&nPayments).Error; err != nil {
			return err
		}
		if nPayments > 0 {
			return fiber.NewError(fiber.StatusConflict, "Siswa punya riwayat pembayaran — nonaktifkan, jangan hapus")
		}

		if err := tx.Exec(`DELETE FROM invoices WHERE invoice_student_id = ?`, studentID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM enrollment_events WHERE enrollment_event_student_id = ?`, studentID).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"id": idStr})
}
