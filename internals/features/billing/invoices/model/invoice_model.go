package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status tagihan: murni fungsi dari paid vs billed.
type InvoiceStatus string

const (
	StatusBelumLunas InvoiceStatus = "BELUM_LUNAS"
	StatusSebagian   InvoiceStatus = "SEBAGIAN"
	StatusLunas      InvoiceStatus = "LUNAS"
)

type InvoiceModel struct {
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invoice_id"`

	InvoiceStudentID uuid.UUID `gorm:"column:invoice_student_id;type:uuid;not null;uniqueIndex:uq_invoices_period;index:idx_invoices_student" json:"invoice_student_id"`
	InvoiceFeeTypeID uuid.UUID `gorm:"column:invoice_fee_type_id;type:uuid;not null;uniqueIndex:uq_invoices_period;index:idx_invoices_fee_type" json:"invoice_fee_type_id"`
	InvoiceYearID    uuid.UUID `gorm:"column:invoice_year_id;type:uuid;not null;index:idx_invoices_year" json:"invoice_year_id"`

	// Snapshot nama jenis tagihan saat invoice dibuat (untuk kuitansi/laporan)
	InvoiceFeeTypeSnapshot string `gorm:"column:invoice_fee_type_snapshot;type:text;not null" json:"invoice_fee_type_snapshot"`

	// Periode: terisi untuk tagihan bulanan, NULL untuk tahunan/insidental.
	InvoiceMonth        *int `gorm:"column:invoice_month;type:smallint;uniqueIndex:uq_invoices_period" json:"invoice_month,omitempty"`         // 1..12
	InvoiceCalendarYear *int `gorm:"column:invoice_calendar_year;type:smallint;uniqueIndex:uq_invoices_period" json:"invoice_calendar_year,omitempty"`

	InvoiceBilledIDR int64 `gorm:"column:invoice_billed_idr;not null;check:invoice_billed_idr >= 0" json:"invoice_billed_idr"`
	// Boleh melebihi billed (kelebihan bayar dicatat sebagai infaq di note pembayaran)
	InvoicePaidIDR int64 `gorm:"column:invoice_paid_idr;not null;default:0;check:invoice_paid_idr >= 0" json:"invoice_paid_idr"`

	InvoiceStatus InvoiceStatus `gorm:"column:invoice_status;type:varchar(12);not null;default:BELUM_LUNAS" json:"invoice_status"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;type:timestamptz;not null;autoCreateTime" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;type:timestamptz;not null;autoUpdateTime" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"invoice_deleted_at,omitempty"`
}

func (InvoiceModel) TableName() string { return "invoices" }

// IsMonthly: invoice periode bulanan (punya month/year).
func (m *InvoiceModel) IsMonthly() bool {
	return m.InvoiceMonth != nil && m.InvoiceCalendarYear != nil
}

// StatusFor: status invoice sebagai fungsi murni paid vs billed.
// paid >= billed → LUNAS; 0 < paid < billed → SEBAGIAN; paid == 0 → BELUM_LUNAS.
func StatusFor(billed, paid int64) InvoiceStatus {
	switch {
	case paid == 0:
		return StatusBelumLunas
	case paid >= billed:
		return StatusLunas
	default:
		return StatusSebagian
	}
}
