package service

import (
	feemodel "sekolahku_backend/internals/features/billing/feetypes/model"
)

// Period: satu periode tagihan bulanan (bulan kalender + tahun kalender).
type Period struct {
	Month        int // 1..12
	CalendarYear int
}

// PeriodOrder: posisi bulan dalam urutan tahun ajaran, 0-based sejak bulan
// awal (default Juli). Juli=0, Agustus=1, ..., Juni=11.
func PeriodOrder(month, startMonth int) int {
	return (month - startMonth + 12) % 12
}

// CalendarYearFor: bulan >= bulan awal jatuh di tahun kalender pertama,
// bulan < bulan awal jatuh di tahun kalender berikutnya.
func CalendarYearFor(month, startMonth, startYear int) int {
	if month >= startMonth {
		return startYear
	}
	return startYear + 1
}

// MonthAtOrder: kebalikan PeriodOrder — bulan kalender pada posisi order.
func MonthAtOrder(order, startMonth int) int {
	return ((startMonth - 1 + order) % 12) + 1
}

// PlanPeriods menyusun daftar periode invoice untuk satu jenis tagihan:
//   - kategori memuat BULANAN → tepat 12 periode sejak bulan awal tahun
//     ajaran; minOrder > 0 memotong periode sebelum titik masuk (kasus
//     pindah masuk tengah tahun — bulan sebelumnya tidak ditagih mundur).
//   - selain itu → satu invoice tanpa periode (slice kosong).
func PlanPeriods(ft *feemodel.FeeTypeModel, startYear, startMonth, minOrder int) []Period {
	if !ft.IsMonthly() {
		return nil
	}
	if minOrder < 0 {
		minOrder = 0
	}
	out := make([]Period, 0, 12)
	for order := 0; order < 12; order++ {
		if order < minOrder {
			continue
		}
		month := MonthAtOrder(order, startMonth)
		out = append(out, Period{
			Month:        month,
			CalendarYear: CalendarYearFor(month, startMonth, startYear),
		})
	}
	return out
}
