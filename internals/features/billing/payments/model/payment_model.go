package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Metode pembayaran yang diterima bendahara.
type PaymentMethod string

const (
	MethodTunai    PaymentMethod = "TUNAI"
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodQRIS     PaymentMethod = "QRIS"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentInvoiceID uuid.UUID `gorm:"column:payment_invoice_id;type:uuid;not null;index:idx_payments_invoice" json:"payment_invoice_id"`

	// Boleh melebihi sisa tagihan; kelebihan dicatat di note sebagai infaq.
	PaymentAmountIDR int64         `gorm:"column:payment_amount_idr;not null;check:payment_amount_idr > 0" json:"payment_amount_idr"`
	PaymentMethod    PaymentMethod `gorm:"column:payment_method;type:varchar(12);not null;default:TUNAI" json:"payment_method"`

	// Nomor kuitansi: unik & immutable setelah terbit.
	PaymentReceiptNo string  `gorm:"column:payment_receipt_no;type:varchar(40);not null;uniqueIndex:uq_payments_receipt_no" json:"payment_receipt_no"`
	PaymentNote      *string `gorm:"column:payment_note;type:text" json:"payment_note,omitempty"`

	PaymentCreatedBy *uuid.UUID `gorm:"column:payment_created_by;type:uuid" json:"payment_created_by,omitempty"`
	PaymentPaidAt    time.Time  `gorm:"column:payment_paid_at;type:timestamptz;not null" json:"payment_paid_at"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;type:timestamptz;not null;autoCreateTime" json:"payment_created_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
