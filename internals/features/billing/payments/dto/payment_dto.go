package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/billing/payments/model"
)

/* =============== REQUESTS =============== */

type RecordPaymentRequest struct {
	InvoiceID uuid.UUID       `json:"invoice_id" validate:"required"`
	AmountIDR int64           `json:"amount_idr" validate:"required,gt=0"`
	Method    m.PaymentMethod `json:"method" validate:"required,oneof=TUNAI TRANSFER QRIS"`
	Note      *string         `json:"note" validate:"omitempty"`
	PaidAt    *time.Time      `json:"paid_at" validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type PaymentResponse struct {
	PaymentID        uuid.UUID       `json:"payment_id"`
	PaymentInvoiceID uuid.UUID       `json:"payment_invoice_id"`
	PaymentAmountIDR int64           `json:"payment_amount_idr"`
	PaymentMethod    m.PaymentMethod `json:"payment_method"`
	PaymentReceiptNo string          `json:"payment_receipt_no"`
	PaymentNote      *string         `json:"payment_note,omitempty"`
	PaymentPaidAt    time.Time       `json:"payment_paid_at"`
	PaymentCreatedAt time.Time       `json:"payment_created_at"`
}

func FromModel(x m.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:        x.PaymentID,
		PaymentInvoiceID: x.PaymentInvoiceID,
		PaymentAmountIDR: x.PaymentAmountIDR,
		PaymentMethod:    x.PaymentMethod,
		PaymentReceiptNo: x.PaymentReceiptNo,
		PaymentNote:      x.PaymentNote,
		PaymentPaidAt:    x.PaymentPaidAt,
		PaymentCreatedAt: x.PaymentCreatedAt,
	}
}

func FromModels(list []m.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
