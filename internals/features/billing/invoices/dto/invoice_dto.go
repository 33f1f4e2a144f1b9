package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/billing/invoices/model"
)

type InvoiceResponse struct {
	InvoiceID              uuid.UUID       `json:"invoice_id"`
	InvoiceStudentID       uuid.UUID       `json:"invoice_student_id"`
	InvoiceFeeTypeID       uuid.UUID       `json:"invoice_fee_type_id"`
	InvoiceYearID          uuid.UUID       `json:"invoice_year_id"`
	InvoiceFeeTypeSnapshot string          `json:"invoice_fee_type_snapshot"`
	InvoiceMonth           *int            `json:"invoice_month,omitempty"`
	InvoiceCalendarYear    *int            `json:"invoice_calendar_year,omitempty"`
	InvoiceBilledIDR       int64           `json:"invoice_billed_idr"`
	InvoicePaidIDR         int64           `json:"invoice_paid_idr"`
	InvoiceSisaIDR         int64           `json:"invoice_sisa_idr"`
	InvoiceStatus          m.InvoiceStatus `json:"invoice_status"`
	InvoiceCreatedAt       time.Time       `json:"invoice_created_at"`
}

func FromModel(x m.InvoiceModel) InvoiceResponse {
	sisa := x.InvoiceBilledIDR - x.InvoicePaidIDR
	if sisa < 0 {
		sisa = 0
	}
	return InvoiceResponse{
		InvoiceID:              x.InvoiceID,
		InvoiceStudentID:       x.InvoiceStudentID,
		InvoiceFeeTypeID:       x.InvoiceFeeTypeID,
		InvoiceYearID:          x.InvoiceYearID,
		InvoiceFeeTypeSnapshot: x.InvoiceFeeTypeSnapshot,
		InvoiceMonth:           x.InvoiceMonth,
		InvoiceCalendarYear:    x.InvoiceCalendarYear,
		InvoiceBilledIDR:       x.InvoiceBilledIDR,
		InvoicePaidIDR:         x.InvoicePaidIDR,
		InvoiceSisaIDR:         sisa,
		InvoiceStatus:          x.InvoiceStatus,
		InvoiceCreatedAt:       x.InvoiceCreatedAt,
	}
}

func FromModels(list []m.InvoiceModel) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

// StudentInvoicesResponse: tampilan penagihan satu siswa setelah filter
// rentang enrolment, plus ringkasan nominal.
type StudentInvoicesResponse struct {
	StudentID      uuid.UUID         `json:"student_id"`
	Invoices       []InvoiceResponse `json:"invoices"`
	TotalBilledIDR int64             `json:"total_billed_idr"`
	TotalPaidIDR   int64             `json:"total_paid_idr"`
	TotalSisaIDR   int64             `json:"total_sisa_idr"`
}

func BuildStudentInvoices(studentID uuid.UUID, list []m.InvoiceModel) StudentInvoicesResponse {
	resp := StudentInvoicesResponse{
		StudentID: studentID,
		Invoices:  FromModels(list),
	}
	for _, inv := range list {
		resp.TotalBilledIDR += inv.InvoiceBilledIDR
		resp.TotalPaidIDR += inv.InvoicePaidIDR
	}
	resp.TotalSisaIDR = resp.TotalBilledIDR - resp.TotalPaidIDR
	if resp.TotalSisaIDR < 0 {
		resp.TotalSisaIDR = 0
	}
	return resp
}
