package service

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	yearmodel "sekolahku_backend/internals/features/academics/years/model"
	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
	invoiceservice "sekolahku_backend/internals/features/billing/invoices/service"
	eventmodel "sekolahku_backend/internals/features/students/enrollment/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
)

// Ringkasan penagihan satu tahun ajaran.
type YearSummary struct {
	YearID          uuid.UUID `json:"year_id"`
	TotalInvoices   int64     `json:"total_invoices"`
	TotalBilledIDR  int64     `json:"total_billed_idr"`
	TotalPaidIDR    int64     `json:"total_paid_idr"`
	TotalSisaIDR    int64     `json:"total_sisa_idr"`
	CountBelumLunas int64     `json:"count_belum_lunas"`
	CountSebagian   int64     `json:"count_sebagian"`
	CountLunas      int64     `json:"count_lunas"`
	StudentCount    int64     `json:"student_count"`
}

// Baris tunggakan per siswa — hanya siswa dengan sisa > 0.
type ArrearsRow struct {
	StudentID       uuid.UUID `json:"student_id"`
	StudentNIPD     string    `json:"student_nipd"`
	StudentName     string    `json:"student_name"`
	ClassSnapshot   *string   `json:"class_snapshot,omitempty"`
	UnpaidInvoices  int       `json:"unpaid_invoices"`
	TotalBilledIDR  int64     `json:"total_billed_idr"`
	TotalPaidIDR    int64     `json:"total_paid_idr"`
	OutstandingIDR  int64     `json:"outstanding_idr"`
}

type ReportFilter struct {
	YearID    uuid.UUID
	ClassID   *uuid.UUID
	FeeTypeID *uuid.UUID
}

type ReportService struct {
	DB         *gorm.DB
	StartMonth int
}

func NewReportService(db *gorm.DB, startMonth int) *ReportService {
	return &ReportService{DB: db, StartMonth: startMonth}
}

// Summarize menghitung ringkasan satu tahun ajaran. Agregat dihitung
// dari himpunan tagihan yang SUDAH melewati filter rentang enrolment —
// angka ringkasan harus konsisten dengan yang dilihat kasir per siswa.
func (s *ReportService) Summarize(yearID uuid.UUID) (*YearSummary, error) {
	var year yearmodel.AcademicYearModel
	if err := s.DB.Where("academic_year_id = ?", yearID).First(&year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return nil, err
	}

	var invoices []invoicemodel.InvoiceModel
	if err := s.DB.
		Where("invoice_year_id = ?", yearID).
		Find(&invoices).Error; err != nil {
		return nil, err
	}

	perStudent := map[uuid.UUID][]invoicemodel.InvoiceModel{}
	for _, inv := range invoices {
		perStudent[inv.InvoiceStudentID] = append(perStudent[inv.InvoiceStudentID], inv)
	}

	out := YearSummary{YearID: yearID}
	for studentID, list := range perStudent {
		var events []eventmodel.EnrollmentEventModel
		if err := s.DB.
			Where("enrollment_event_student_id = ?", studentID).
			Find(&events).Error; err != nil {
			return nil, err
		}

		for _, inv := range invoiceservice.FilterByEnrollment(list, events, s.StartMonth) {
			out.TotalInvoices++
			out.TotalBilledIDR += inv.InvoiceBilledIDR
			out.TotalPaidIDR += inv.InvoicePaidIDR
			switch inv.InvoiceStatus {
			case invoicemodel.StatusBelumLunas:
				out.CountBelumLunas++
			case invoicemodel.StatusSebagian:
				out.CountSebagian++
			case invoicemodel.StatusLunas:
				out.CountLunas++
			}
		}
	}
	out.TotalSisaIDR = out.TotalBilledIDR - out.TotalPaidIDR
	if out.TotalSisaIDR < 0 {
		out.TotalSisaIDR = 0
	}

	if err := s.DB.Model(&studentmodel.StudentModel{}).
		Where("student_year_id = ?", yearID).
		Count(&out.StudentCount).Error; err != nil {
		return nil, err
	}

	return &out, nil
}

// SnapshotYearStats menyimpan ringkasan ke kolom jsonb tahun ajaran —
// cache laporan, bukan sumber kebenaran.
func (s *ReportService) SnapshotYearStats(yearID uuid.UUID) (*YearSummary, error) {
	summary, err := s.Summarize(yearID)
	if err != nil {
		return nil, err
	}

	raw, err := sonic.Marshal(summary)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(&yearmodel.AcademicYearModel{}).
		Where("academic_year_id = ?", yearID).
		Update("academic_year_stats", datatypes.JSON(raw)).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

// Arrears menyusun daftar tunggakan per siswa. Tagihan bulanan di luar
// rentang enrolment siswa TIDAK dihitung tunggakan — filternya sama
// dengan yang dipakai tampilan penagihan.
func (s *ReportService) Arrears(f ReportFilter) ([]ArrearsRow, error) {
	sq := s.DB.Model(&studentmodel.StudentModel{}).
		Where("student_year_id = ?", f.YearID)
	if f.ClassID != nil {
		sq = sq.Where("student_class_id = ?", *f.ClassID)
	}

	var students []studentmodel.StudentModel
	if err := sq.Order("student_name ASC").Find(&students).Error; err != nil {
		return nil, err
	}

	rows := make([]ArrearsRow, 0, len(students))
	for i := range students {
		st := students[i]

		iq := s.DB.Where("invoice_student_id = ? AND invoice_year_id = ?", st.StudentID, f.YearID)
		if f.FeeTypeID != nil {
			iq = iq.Where("invoice_fee_type_id = ?", *f.FeeTypeID)
		}
		var invoices []invoicemodel.InvoiceModel
		if err := iq.Find(&invoices).Error; err != nil {
			return nil, err
		}

		var events []eventmodel.EnrollmentEventModel
		if err := s.DB.
			Where("enrollment_event_student_id = ?", st.StudentID).
			Find(&events).Error; err != nil {
			return nil, err
		}

		visible := invoiceservice.FilterByEnrollment(invoices, events, s.StartMonth)

		row := ArrearsRow{
			StudentID:     st.StudentID,
			StudentNIPD:   st.StudentNIPD,
			StudentName:   st.StudentName,
			ClassSnapshot: st.StudentClassSnapshot,
		}
		for _, inv := range visible {
			row.TotalBilledIDR += inv.InvoiceBilledIDR
			row.TotalPaidIDR += inv.InvoicePaidIDR
			if inv.InvoiceStatus != invoicemodel.StatusLunas {
				row.UnpaidInvoices++
			}
		}
		row.OutstandingIDR = row.TotalBilledIDR - row.TotalPaidIDR
		if row.OutstandingIDR <= 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
