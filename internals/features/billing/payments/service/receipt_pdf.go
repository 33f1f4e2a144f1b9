package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
	"sekolahku_backend/internals/features/billing/payments/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
)

// ReceiptData: semua yang tercetak di kuitansi, dari snapshot — bukan
// join hidup, supaya kuitansi lama tidak berubah saat master diedit.
type ReceiptData struct {
	Payment *model.PaymentModel
	Invoice *invoicemodel.InvoiceModel
	Student *studentmodel.StudentModel
}

var bulanIndo = []string{"",
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func formatRupiah(n int64) string {
	s := fmt.Sprintf("%d", n)
	out := ""
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += "."
		}
		out += string(c)
	}
	return "Rp " + out
}

func periodLabel(inv *invoicemodel.InvoiceModel) string {
	if inv.InvoiceMonth == nil || inv.InvoiceCalendarYear == nil {
		return "-"
	}
	return fmt.Sprintf("%s %d", bulanIndo[*inv.InvoiceMonth], *inv.InvoiceCalendarYear)
}

// GenerateReceiptPDF menghasilkan kuitansi pembayaran A5 siap cetak.
func GenerateReceiptPDF(data ReceiptData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(186, 10, "KUITANSI PEMBAYARAN", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(186, 6, fmt.Sprintf("No. %s", data.Payment.PaymentReceiptNo), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(186, 7, "Data Siswa", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(93, 6, fmt.Sprintf("Nama: %s", data.Student.StudentName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(93, 6, fmt.Sprintf("NIPD: %s", data.Student.StudentNIPD), "RB", 1, "L", false, 0, "")
	kelas := "-"
	if data.Student.StudentClassSnapshot != nil {
		kelas = *data.Student.StudentClassSnapshot
	}
	pdf.CellFormat(186, 6, fmt.Sprintf("Kelas: %s", kelas), "LRB", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(186, 7, "Rincian Pembayaran", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(93, 6, fmt.Sprintf("Jenis: %s", data.Invoice.InvoiceFeeTypeSnapshot), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(93, 6, fmt.Sprintf("Periode: %s", periodLabel(data.Invoice)), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(93, 6, fmt.Sprintf("Metode: %s", string(data.Payment.PaymentMethod)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(93, 6, fmt.Sprintf("Tanggal: %s", data.Payment.PaymentPaidAt.Format("02-01-2006")), "RB", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 235, 220)
	pdf.CellFormat(186, 10, fmt.Sprintf("Jumlah Dibayar: %s", formatRupiah(data.Payment.PaymentAmountIDR)), "1", 1, "C", true, 0, "")

	if data.Payment.PaymentNote != nil && *data.Payment.PaymentNote != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(186, 5, fmt.Sprintf("Catatan: %s", *data.Payment.PaymentNote), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 9)
	sisa := data.Invoice.InvoiceBilledIDR - data.Invoice.InvoicePaidIDR
	if sisa < 0 {
		sisa = 0
	}
	pdf.CellFormat(93, 5, fmt.Sprintf("Status tagihan: %s", string(data.Invoice.InvoiceStatus)), "", 0, "L", false, 0, "")
	pdf.CellFormat(93, 5, fmt.Sprintf("Sisa tagihan: %s", formatRupiah(sisa)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
