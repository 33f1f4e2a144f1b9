package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
	"sekolahku_backend/internals/features/billing/payments/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", formatRupiah(0))
	assert.Equal(t, "Rp 500", formatRupiah(500))
	assert.Equal(t, "Rp 150.000", formatRupiah(150000))
	assert.Equal(t, "Rp 1.250.000", formatRupiah(1250000))
}

func TestPeriodLabel(t *testing.T) {
	m, y := 7, 2024
	assert.Equal(t, "Juli 2024", periodLabel(&invoicemodel.InvoiceModel{InvoiceMonth: &m, InvoiceCalendarYear: &y}))
	assert.Equal(t, "-", periodLabel(&invoicemodel.InvoiceModel{}))
}

func TestGenerateReceiptPDF(t *testing.T) {
	m, y := 7, 2024
	kelas := "1A"
	note := "bayar SPP Juli"
	data := ReceiptData{
		Payment: &model.PaymentModel{
			PaymentAmountIDR: 150000,
			PaymentMethod:    model.MethodTunai,
			PaymentReceiptNo: "KW/20240705/0001",
			PaymentNote:      &note,
			PaymentPaidAt:    time.Date(2024, 7, 5, 9, 0, 0, 0, time.UTC),
		},
		Invoice: &invoicemodel.InvoiceModel{
			InvoiceFeeTypeSnapshot: "SPP",
			InvoiceMonth:           &m,
			InvoiceCalendarYear:    &y,
			InvoiceBilledIDR:       150000,
			InvoicePaidIDR:         150000,
			InvoiceStatus:          invoicemodel.StatusLunas,
		},
		Student: &studentmodel.StudentModel{
			StudentNIPD:          "2024001",
			StudentName:          "Budi Santoso",
			StudentClassSnapshot: &kelas,
		},
	}

	pdfBytes, err := GenerateReceiptPDF(data)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
