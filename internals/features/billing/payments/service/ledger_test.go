package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
)

func TestAnnotateExcessNoExcess(t *testing.T) {
	note := "bayar SPP Juli"
	assert.Equal(t, &note, AnnotateExcess(&note, 0))
	assert.Equal(t, &note, AnnotateExcess(&note, -5000))
	assert.Nil(t, AnnotateExcess(nil, 0))
}

func TestAnnotateExcessWithoutNote(t *testing.T) {
	got := AnnotateExcess(nil, 25000)
	require.NotNil(t, got)
	assert.Equal(t, "Kelebihan Rp25000 dicatat sebagai infaq", *got)
}

func TestAnnotateExcessMergesExistingNote(t *testing.T) {
	note := "bayar SPP Juli"
	got := AnnotateExcess(&note, 25000)
	require.NotNil(t, got)
	assert.Equal(t, "bayar SPP Juli | Kelebihan Rp25000 dicatat sebagai infaq", *got)
}

func TestApplyPaymentStatusProgression(t *testing.T) {
	paid, status := ApplyPayment(150000, 0, 100000)
	assert.Equal(t, int64(100000), paid)
	assert.Equal(t, invoicemodel.StatusSebagian, status)

	paid, status = ApplyPayment(150000, paid, 50000)
	assert.Equal(t, int64(150000), paid)
	assert.Equal(t, invoicemodel.StatusLunas, status)
}

func TestReverseThenReAddReproducesInvoice(t *testing.T) {
	const billed = int64(150000)

	// Catat dua pembayaran: 100rb lalu 50rb → LUNAS.
	paid, status := ApplyPayment(billed, 0, 100000)
	origPaid, origStatus := ApplyPayment(billed, paid, 50000)
	require.Equal(t, invoicemodel.StatusLunas, origStatus)

	// Reversal pembayaran kedua: hitung ulang dari yang tersisa.
	revPaid, revStatus := RecomputePaid(billed, []int64{100000})
	assert.Equal(t, int64(100000), revPaid)
	assert.Equal(t, invoicemodel.StatusSebagian, revStatus)

	// Catat ulang pembayaran identik: invoice kembali persis seperti semula.
	paid, status = ApplyPayment(billed, revPaid, 50000)
	assert.Equal(t, origPaid, paid)
	assert.Equal(t, origStatus, status)
}

func TestRecomputePaidEmptyAfterFullReversal(t *testing.T) {
	paid, status := RecomputePaid(150000, nil)
	assert.Equal(t, int64(0), paid)
	assert.Equal(t, invoicemodel.StatusBelumLunas, status)
}

func TestDailySequenceNeverReusesReversedNumbers(t *testing.T) {
	at := time.Date(2024, 7, 5, 10, 30, 0, 0, time.UTC)

	// Tiga pembayaran tercatat hari ini, nomor 1..3.
	issued := map[string]bool{}
	for i := int64(0); i < 3; i++ {
		no := FormatReceiptNumber("KW/{tahun}{bulan}{tanggal}/{nomor}", at, DailySequence(i))
		require.False(t, issued[no])
		issued[no] = true
	}

	// Nomor 3 direversal: baris soft-delete masih ikut dihitung, jadi
	// pembayaran berikutnya terbit sebagai nomor 4 — bukan 3 lagi.
	next := FormatReceiptNumber("KW/{tahun}{bulan}{tanggal}/{nomor}", at, DailySequence(3))
	assert.Equal(t, "KW/20240705/0004", next)
	assert.False(t, issued[next])
}

func TestFormatReceiptNumber(t *testing.T) {
	at := time.Date(2024, 7, 5, 10, 30, 0, 0, time.UTC)
	got := FormatReceiptNumber("KW/{tahun}{bulan}{tanggal}/{nomor}", at, 3)
	assert.Equal(t, "KW/20240705/0003", got)
}

func TestFormatReceiptNumberPadding(t *testing.T) {
	at := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	got := FormatReceiptNumber("KW/{tahun}{bulan}{tanggal}/{nomor}", at, 1234)
	assert.Equal(t, "KW/20250102/1234", got)
}
