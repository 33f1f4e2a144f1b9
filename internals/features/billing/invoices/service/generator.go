package service

import (
	"fmt"

	"gorm.io/gorm"

	yearmodel "sekolahku_backend/internals/features/academics/years/model"
	feemodel "sekolahku_backend/internals/features/billing/feetypes/model"
	feeservice "sekolahku_backend/internals/features/billing/feetypes/service"
	"sekolahku_backend/internals/features/billing/invoices/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
)

// Hasil operasi bulk: kegagalan per item diisolasi, tidak menggagalkan
// keseluruhan batch. Duplicate-skip BUKAN kegagalan.
type BulkResult struct {
	Berhasil int      `json:"berhasil"`
	Gagal    int      `json:"gagal"`
	Invoices int      `json:"invoices_dibuat"`
	Errors   []string `json:"errors,omitempty"`
}

// GenerateForStudent membuat invoice untuk satu (siswa, jenis tagihan):
// bulanan → 12 periode sejak bulan awal tahun ajaran (dipotong minOrder
// untuk pindah masuk tengah tahun), selain itu satu invoice tanpa periode.
// Idempotent: invoice yang sudah ada dilewati diam-diam lewat
// MissingPeriods — bukan error dan bukan baris ganda.
func GenerateForStudent(tx *gorm.DB, student *studentmodel.StudentModel, ft *feemodel.FeeTypeModel, year *yearmodel.AcademicYearModel, amount int64, startMonth, minOrder int) (int, error) {
	var existing []model.InvoiceModel
	if err := tx.
		Where("invoice_student_id = ? AND invoice_fee_type_id = ?", student.StudentID, ft.FeeTypeID).
		Find(&existing).Error; err != nil {
		return 0, err
	}

	if ft.IsMonthly() {
		created := 0
		for _, p := range MissingPeriods(existing, PlanPeriods(ft, year.AcademicYearStartYear, startMonth, minOrder)) {
			if err := createInvoice(tx, student, ft, year, amount, &p); err != nil {
				return created, err
			}
			created++
		}
		return created, nil
	}

	for _, inv := range existing {
		if !inv.IsMonthly() {
			return 0, nil // duplicate skip
		}
	}
	if err := createInvoice(tx, student, ft, year, amount, nil); err != nil {
		return 0, err
	}
	return 1, nil
}

// MissingPeriods: periode dari plan yang belum punya invoice di existing.
// Kunci pembanding (bulan, tahun kalender) — generate ulang atas set yang
// sudah lengkap menghasilkan nol periode, bukan baris ganda.
func MissingPeriods(existing []model.InvoiceModel, plan []Period) []Period {
	have := map[Period]bool{}
	for _, inv := range existing {
		if inv.InvoiceMonth == nil || inv.InvoiceCalendarYear == nil {
			continue
		}
		have[Period{Month: *inv.InvoiceMonth, CalendarYear: *inv.InvoiceCalendarYear}] = true
	}

	out := make([]Period, 0, len(plan))
	for _, p := range plan {
		if !have[p] {
			out = append(out, p)
		}
	}
	return out
}

func createInvoice(tx *gorm.DB, student *studentmodel.StudentModel, ft *feemodel.FeeTypeModel, year *yearmodel.AcademicYearModel, amount int64, p *Period) error {
	inv := model.InvoiceModel{
		InvoiceStudentID:       student.StudentID,
		InvoiceFeeTypeID:       ft.FeeTypeID,
		InvoiceYearID:          year.AcademicYearID,
		InvoiceFeeTypeSnapshot: ft.FeeTypeName,
		InvoiceBilledIDR:       amount,
		InvoicePaidIDR:         0,
		InvoiceStatus:          model.StatusBelumLunas,
	}
	if p != nil {
		month, calYear := p.Month, p.CalendarYear
		inv.InvoiceMonth = &month
		inv.InvoiceCalendarYear = &calYear
	}
	return tx.Create(&inv).Error
}

// GenerateForNewStudent: trigger saat siswa dibuat (manual atau import) —
// generate untuk setiap jenis tagihan yang menyasar siswa ini. minOrder > 0
// dipakai saat pindah masuk tengah tahun (mulai bulan berjalan).
func GenerateForNewStudent(tx *gorm.DB, student *studentmodel.StudentModel, startMonth, minOrder int) (int, error) {
	feeTypes, err := feeservice.ResolveFeeTypesForStudent(tx, student)
	if err != nil {
		return 0, err
	}
	if len(feeTypes) == 0 || student.StudentYearID == nil {
		return 0, nil
	}

	var year yearmodel.AcademicYearModel
	if err := tx.Where("academic_year_id = ?", *student.StudentYearID).First(&year).Error; err != nil {
		return 0, err
	}

	total := 0
	for i := range feeTypes {
		ft := feeTypes[i]
		amount, err := feeservice.ResolveEffectiveAmount(tx, &ft, student)
		if err != nil {
			return total, err
		}
		n, err := GenerateForStudent(tx, student, &ft, &year, amount, startMonth, minOrder)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// GenerateForFeeType: trigger saat jenis tagihan baru dibuat — generate
// untuk semua siswa sasaran. Per siswa jalan di transaksinya sendiri:
// gagal satu siswa tidak membatalkan siswa lain.
func GenerateForFeeType(db *gorm.DB, ft *feemodel.FeeTypeModel, startMonth int) (BulkResult, error) {
	res := BulkResult{}

	students, err := feeservice.ResolveTargetStudents(db, ft)
	if err != nil {
		return res, err
	}

	var year yearmodel.AcademicYearModel
	if err := db.Where("academic_year_id = ?", ft.FeeTypeYearID).First(&year).Error; err != nil {
		return res, err
	}

	for i := range students {
		s := students[i]
		err := db.Transaction(func(tx *gorm.DB) error {
			amount, err := feeservice.ResolveEffectiveAmount(tx, ft, &s)
			if err != nil {
				return err
			}
			n, err := GenerateForStudent(tx, &s, ft, &year, amount, startMonth, 0)
			if err != nil {
				return err
			}
			res.Invoices += n
			return nil
		})
		if err != nil {
			res.Gagal++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", s.StudentNIPD, err))
			continue
		}
		res.Berhasil++
	}
	return res, nil
}
