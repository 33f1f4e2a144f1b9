package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	yearmodel "sekolahku_backend/internals/features/academics/years/model"
	"sekolahku_backend/internals/features/billing/feetypes/model"
	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
	eventmodel "sekolahku_backend/internals/features/students/enrollment/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
)

// SetSpecialRate memasang tarif khusus (beasiswa/diskon) untuk satu
// (siswa, jenis tagihan). Saat cascade diminta, nilai TAGIHAN (bukan
// terbayar) semua invoice BELUM_LUNAS/SEBAGIAN pasangan itu di tahun
// ajaran aktif ditulis ulang ke tarif baru; invoice LUNAS tidak pernah
// disentuh mundur. Satu event TARIF_KHUSUS mencatat berapa invoice kena.
func SetSpecialRate(db *gorm.DB, studentID, feeTypeID uuid.UUID, amountIDR int64, cascade bool) (int, error) {
	if amountIDR <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Tarif khusus harus lebih dari 0")
	}

	touched := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var student studentmodel.StudentModel
		if err := tx.Where("student_id = ?", studentID).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
			}
			return err
		}
		var ft model.FeeTypeModel
		if err := tx.Where("fee_type_id = ?", feeTypeID).First(&ft).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jenis tagihan tidak ditemukan")
			}
			return err
		}

		// Upsert override per siswa
		link := model.FeeTypeStudentModel{
			FeeTypeStudentFeeTypeID: feeTypeID,
			FeeTypeStudentStudentID: studentID,
			FeeTypeStudentAmountIDR: &amountIDR,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "fee_type_student_fee_type_id"},
				{Name: "fee_type_student_student_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"fee_type_student_amount_idr"}),
		}).Create(&link).Error; err != nil {
			return err
		}

		if !cascade {
			return nil
		}

		var activeYear yearmodel.AcademicYearModel
		if err := tx.Where("academic_year_is_active = ?", true).First(&activeYear).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusConflict, "Belum ada tahun ajaran aktif")
			}
			return err
		}

		var invoices []invoicemodel.InvoiceModel
		if err := tx.
			Where("invoice_student_id = ? AND invoice_fee_type_id = ? AND invoice_year_id = ?", studentID, feeTypeID, activeYear.AcademicYearID).
			Where("invoice_status IN ?", []invoicemodel.InvoiceStatus{invoicemodel.StatusBelumLunas, invoicemodel.StatusSebagian}).
			Find(&invoices).Error; err != nil {
			return err
		}

		for i := range invoices {
			inv := invoices[i]
			if err := tx.Model(&invoicemodel.InvoiceModel{}).
				Where("invoice_id = ?", inv.InvoiceID).
				Updates(map[string]interface{}{
					"invoice_billed_idr": amountIDR,
					"invoice_status":     invoicemodel.StatusFor(amountIDR, inv.InvoicePaidIDR),
				}).Error; err != nil {
				return err
			}
			touched++
		}

		note := fmt.Sprintf("Tarif khusus %s Rp%d diterapkan ke %d tagihan", ft.FeeTypeName, amountIDR, touched)
		ev := eventmodel.EnrollmentEventModel{
			EnrollmentEventStudentID:     student.StudentID,
			EnrollmentEventYearID:        student.StudentYearID,
			EnrollmentEventClassID:       student.StudentClassID,
			EnrollmentEventClassSnapshot: student.StudentClassSnapshot,
			EnrollmentEventAction:        eventmodel.ActionTarifKhusus,
			EnrollmentEventNote:          &note,
			EnrollmentEventDate:          tx.NowFunc(),
		}
		return tx.Create(&ev).Error
	})
	if err != nil {
		return 0, err
	}
	return touched, nil
}
