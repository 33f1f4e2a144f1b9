package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
	"sekolahku_backend/internals/features/billing/payments/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

// AnnotateExcess menempelkan catatan kelebihan bayar pada note pembayaran.
// Kelebihan TIDAK ditolak — tetap dicatat penuh, kelebihannya dibukukan
// informal sebagai infaq di note (tanpa entitas ledger donasi terpisah).
func AnnotateExcess(note *string, excess int64) *string {
	if excess <= 0 {
		return note
	}
	annot := fmt.Sprintf("Kelebihan Rp%d dicatat sebagai infaq", excess)
	if note == nil || *note == "" {
		return &annot
	}
	merged := *note + " | " + annot
	return &merged
}

// ApplyPayment: total terbayar dan status invoice setelah satu pembayaran
// masuk. Dipakai RecordPayment; dipisah supaya aritmetika ledger bisa
// diuji tanpa DB.
func ApplyPayment(billed, paid, amount int64) (int64, invoicemodel.InvoiceStatus) {
	newPaid := paid + amount
	return newPaid, invoicemodel.StatusFor(billed, newPaid)
}

// RecomputePaid: total terbayar dan status dari pembayaran yang TERSISA —
// dasar perhitungan ulang setelah reversal.
func RecomputePaid(billed int64, amounts []int64) (int64, invoicemodel.InvoiceStatus) {
	var paid int64
	for _, a := range amounts {
		paid += a
	}
	return paid, invoicemodel.StatusFor(billed, paid)
}

// DailySequence: nomor urut kuitansi berikutnya dari jumlah pembayaran
// yang PERNAH tercatat hari itu, termasuk yang sudah direversal — nomor
// tidak pernah dipakai ulang, jadi tidak bentrok dengan unique index
// baris yang soft-delete.
func DailySequence(recordedToday int64) int {
	return int(recordedToday) + 1
}

type RecordPaymentInput struct {
	AmountIDR int64
	Method    model.PaymentMethod
	Note      *string
	CreatedBy *uuid.UUID
	PaidAt    *time.Time // default sekarang
}

// RecordPayment mencatat pembayaran terhadap satu invoice dalam SATU
// transaksi: insert payment + update paid/status invoice atomik — tidak
// boleh ada momen payment tercatat tapi invoice masih tampak belum bayar.
func RecordPayment(db *gorm.DB, receiptTemplate string, invoiceID uuid.UUID, in RecordPaymentInput) (*model.PaymentModel, *invoicemodel.InvoiceModel, error) {
	if in.AmountIDR <= 0 {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Nominal pembayaran harus lebih dari 0")
	}

	var payment model.PaymentModel
	var invoice invoicemodel.InvoiceModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("invoice_id = ?", invoiceID).
			First(&invoice).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
			}
			return err
		}

		// Hari lokal sekolah, bukan hari server — batas reset nomor kuitansi
		paidAt := dbtime.Now()
		if in.PaidAt != nil {
			paidAt = (*in.PaidAt).In(dbtime.SchoolLocation())
		}

		remaining := invoice.InvoiceBilledIDR - invoice.InvoicePaidIDR
		note := AnnotateExcess(in.Note, in.AmountIDR-remaining)

		seq, err := nextDailySequence(tx, paidAt)
		if err != nil {
			return err
		}

		payment = model.PaymentModel{
			PaymentInvoiceID: invoice.InvoiceID,
			PaymentAmountIDR: in.AmountIDR,
			PaymentMethod:    in.Method,
			PaymentReceiptNo: FormatReceiptNumber(receiptTemplate, paidAt, seq),
			PaymentNote:      note,
			PaymentCreatedBy: in.CreatedBy,
			PaymentPaidAt:    paidAt,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		invoice.InvoicePaidIDR, invoice.InvoiceStatus = ApplyPayment(invoice.InvoiceBilledIDR, invoice.InvoicePaidIDR, in.AmountIDR)
		return tx.Model(&invoicemodel.InvoiceModel{}).
			Where("invoice_id = ?", invoice.InvoiceID).
			Updates(map[string]interface{}{
				"invoice_paid_idr": invoice.InvoicePaidIDR,
				"invoice_status":   invoice.InvoiceStatus,
			}).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &payment, &invoice, nil
}

// ReversePayment menghapus satu pembayaran lalu menghitung ulang paid
// invoice dari JUMLAH pembayaran tersisa (bukan pengurangan sederhana,
// supaya tetap benar di bawah modifikasi konkuren), lalu status dari
// jumlah segar itu.
func ReversePayment(db *gorm.DB, paymentID uuid.UUID) (*invoicemodel.InvoiceModel, error) {
	var invoice invoicemodel.InvoiceModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var payment model.PaymentModel
		if err := tx.Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
			}
			return err
		}

		if err := tx.Delete(&payment).Error; err != nil {
			return err
		}

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("invoice_id = ?", payment.PaymentInvoiceID).
			First(&invoice).Error; err != nil {
			return err
		}

		var amounts []int64
		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_invoice_id = ?", payment.PaymentInvoiceID).
			Pluck("payment_amount_idr", &amounts).Error; err != nil {
			return err
		}

		invoice.InvoicePaidIDR, invoice.InvoiceStatus = RecomputePaid(invoice.InvoiceBilledIDR, amounts)
		return tx.Model(&invoicemodel.InvoiceModel{}).
			Where("invoice_id = ?", invoice.InvoiceID).
			Updates(map[string]interface{}{
				"invoice_paid_idr": invoice.InvoicePaidIDR,
				"invoice_status":   invoice.InvoiceStatus,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// nextDailySequence: nomor urut kuitansi = jumlah pembayaran hari ini + 1.
// Reset harian, bukan monotonic global. Hitungan Unscoped — pembayaran
// yang direversal (soft-delete) tetap dihitung, nomornya masih menempati
// unique index dan tidak boleh diterbitkan ulang. Di bawah tulis konkuren
// hitungan ini bisa balapan; dijalankan di dalam transaksi pencatatan
// supaya jendelanya sekecil mungkin.
func nextDailySequence(tx *gorm.DB, at time.Time) (int, error) {
	dayStart := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	var n int64
	err := tx.Unscoped().Model(&model.PaymentModel{}).
		Where("payment_created_at >= ? AND payment_created_at < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return DailySequence(n), nil
}
