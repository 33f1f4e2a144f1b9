package service

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/billing/invoices/model"
	eventmodel "sekolahku_backend/internals/features/students/enrollment/model"
)

// FilterByEnrollment menyembunyikan invoice bulanan di luar rentang
// enrolment siswa. Jendela dihitung PER TAHUN AJARAN: event
// PINDAH_MASUK/PINDAH_KELUAR hanya membatasi invoice dengan tahun ajaran
// yang sama — pindah masuk tengah tahun lalu tidak boleh menyembunyikan
// bulan awal tahun ajaran berikutnya.
//   - ada PINDAH_MASUK di tahun itu → invoice dengan order < order masuk
//     dibuang (siswa belum terdaftar saat itu);
//   - ada PINDAH_KELUAR di tahun itu → invoice dengan order > order keluar
//     dibuang (siswa sudah pergi);
//   - invoice tanpa periode (tahunan/insidental) tidak pernah difilter.
//
// Semua tampilan penagihan, penerimaan pembayaran, dan laporan memakai
// fungsi ini — satu implementasi, bukan duplikat per halaman.
func FilterByEnrollment(invoices []model.InvoiceModel, events []eventmodel.EnrollmentEventModel, startMonth int) []model.InvoiceModel {
	type window struct{ min, max *int }
	windows := map[uuid.UUID]window{}

	out := make([]model.InvoiceModel, 0, len(invoices))
	for _, inv := range invoices {
		if !inv.IsMonthly() {
			out = append(out, inv)
			continue
		}

		w, ok := windows[inv.InvoiceYearID]
		if !ok {
			w.min, w.max = enrollmentWindow(events, inv.InvoiceYearID, startMonth)
			windows[inv.InvoiceYearID] = w
		}

		order := PeriodOrder(*inv.InvoiceMonth, startMonth)
		if w.min != nil && order < *w.min {
			continue
		}
		if w.max != nil && order > *w.max {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// enrollmentWindow menurunkan jendela [masuk..keluar] dari histori
// PINDAH_MASUK/PINDAH_KELUAR satu tahun ajaran. Event tahun lain (atau
// tanpa tahun) dilewati; order dihitung dari bulan tanggal kejadian.
func enrollmentWindow(events []eventmodel.EnrollmentEventModel, yearID uuid.UUID, startMonth int) (minOrder, maxOrder *int) {
	for _, ev := range events {
		if ev.EnrollmentEventYearID == nil || *ev.EnrollmentEventYearID != yearID {
			continue
		}
		order := PeriodOrder(int(ev.EnrollmentEventDate.Month()), startMonth)
		switch ev.EnrollmentEventAction {
		case eventmodel.ActionPindahMasuk:
			if minOrder == nil || order < *minOrder {
				o := order
				minOrder = &o
			}
		case eventmodel.ActionPindahKeluar:
			if maxOrder == nil || order > *maxOrder {
				o := order
				maxOrder = &o
			}
		}
	}
	return minOrder, maxOrder
}

// CurrentOrder: order bulan berjalan — titik mulai penagihan untuk siswa
// pindah masuk tengah tahun.
func CurrentOrder(now time.Time, startMonth int) int {
	return PeriodOrder(int(now.Month()), startMonth)
}
