package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/billing/invoices/model"
	eventmodel "sekolahku_backend/internals/features/students/enrollment/model"
)

var (
	thisYearID = uuid.New()
	lastYearID = uuid.New()
)

func monthlyInvoice(yearID uuid.UUID, month, calYear int) model.InvoiceModel {
	m, y := month, calYear
	return model.InvoiceModel{
		InvoiceYearID:       yearID,
		InvoiceMonth:        &m,
		InvoiceCalendarYear: &y,
		InvoiceBilledIDR:    150000,
	}
}

func eventAt(yearID uuid.UUID, action eventmodel.EnrollmentAction, month time.Month, calYear int) eventmodel.EnrollmentEventModel {
	return eventmodel.EnrollmentEventModel{
		EnrollmentEventYearID: &yearID,
		EnrollmentEventAction: action,
		EnrollmentEventDate:   time.Date(calYear, month, 15, 0, 0, 0, 0, time.UTC),
	}
}

func fullYearInvoices(yearID uuid.UUID, startYear int) []model.InvoiceModel {
	out := make([]model.InvoiceModel, 0, 12)
	for order := 0; order < 12; order++ {
		month := MonthAtOrder(order, 7)
		out = append(out, monthlyInvoice(yearID, month, CalendarYearFor(month, 7, startYear)))
	}
	return out
}

func TestFilterNoEventsKeepsAll(t *testing.T) {
	got := FilterByEnrollment(fullYearInvoices(thisYearID, 2024), nil, 7)
	assert.Len(t, got, 12)
}

func TestFilterTransferInHidesEarlierMonths(t *testing.T) {
	// Masuk Oktober (order 3): Juli, Agustus, September disembunyikan
	events := []eventmodel.EnrollmentEventModel{
		eventAt(thisYearID, eventmodel.ActionPindahMasuk, time.October, 2024),
	}
	got := FilterByEnrollment(fullYearInvoices(thisYearID, 2024), events, 7)
	require.Len(t, got, 9)
	assert.Equal(t, 10, *got[0].InvoiceMonth)
}

func TestFilterTransferOutHidesLaterMonths(t *testing.T) {
	// Keluar Februari (order 7): Maret-Juni disembunyikan
	events := []eventmodel.EnrollmentEventModel{
		eventAt(thisYearID, eventmodel.ActionPindahKeluar, time.February, 2025),
	}
	got := FilterByEnrollment(fullYearInvoices(thisYearID, 2024), events, 7)
	require.Len(t, got, 8)
	assert.Equal(t, 2, *got[len(got)-1].InvoiceMonth)
}

func TestFilterWindowBothEnds(t *testing.T) {
	// Masuk Oktober (order 3), keluar Maret (order 8): tersisa order 3..8
	events := []eventmodel.EnrollmentEventModel{
		eventAt(thisYearID, eventmodel.ActionPindahMasuk, time.October, 2024),
		eventAt(thisYearID, eventmodel.ActionPindahKeluar, time.March, 2025),
	}
	got := FilterByEnrollment(fullYearInvoices(thisYearID, 2024), events, 7)
	require.Len(t, got, 6)
	assert.Equal(t, 10, *got[0].InvoiceMonth)
	assert.Equal(t, 3, *got[len(got)-1].InvoiceMonth)
}

func TestFilterScopedToEventYear(t *testing.T) {
	// Pindah masuk Oktober TAHUN LALU: siswa menjalani tahun ini penuh,
	// Juli-September tahun ini tidak boleh ikut tersembunyi.
	events := []eventmodel.EnrollmentEventModel{
		eventAt(lastYearID, eventmodel.ActionPindahMasuk, time.October, 2023),
	}
	got := FilterByEnrollment(fullYearInvoices(thisYearID, 2024), events, 7)
	assert.Len(t, got, 12)
}

func TestFilterWindowsPerYearIndependent(t *testing.T) {
	// Dua tahun ajaran dalam satu daftar: jendela masuk hanya memotong
	// tahun tempat event-nya terjadi.
	invoices := append(fullYearInvoices(lastYearID, 2023), fullYearInvoices(thisYearID, 2024)...)
	events := []eventmodel.EnrollmentEventModel{
		eventAt(lastYearID, eventmodel.ActionPindahMasuk, time.October, 2023),
	}
	got := FilterByEnrollment(invoices, events, 7)
	require.Len(t, got, 21)

	perYear := map[uuid.UUID]int{}
	for _, inv := range got {
		perYear[inv.InvoiceYearID]++
	}
	assert.Equal(t, 9, perYear[lastYearID])
	assert.Equal(t, 12, perYear[thisYearID])
}

func TestFilterIgnoresEventsWithoutYear(t *testing.T) {
	ev := eventmodel.EnrollmentEventModel{
		EnrollmentEventAction: eventmodel.ActionPindahMasuk,
		EnrollmentEventDate:   time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
	}
	got := FilterByEnrollment(fullYearInvoices(thisYearID, 2024), []eventmodel.EnrollmentEventModel{ev}, 7)
	assert.Len(t, got, 12)
}

func TestFilterNeverTouchesNonMonthly(t *testing.T) {
	invoices := append(fullYearInvoices(thisYearID, 2024), model.InvoiceModel{InvoiceYearID: thisYearID, InvoiceBilledIDR: 1000000})
	events := []eventmodel.EnrollmentEventModel{
		eventAt(thisYearID, eventmodel.ActionPindahMasuk, time.October, 2024),
		eventAt(thisYearID, eventmodel.ActionPindahKeluar, time.March, 2025),
	}
	got := FilterByEnrollment(invoices, events, 7)

	found := false
	for _, inv := range got {
		if !inv.IsMonthly() {
			found = true
		}
	}
	assert.True(t, found, "invoice tahunan harus selalu lolos filter")
}

func TestFilterIgnoresOtherActions(t *testing.T) {
	events := []eventmodel.EnrollmentEventModel{
		eventAt(thisYearID, eventmodel.ActionNaikKelas, time.January, 2025),
		eventAt(thisYearID, eventmodel.ActionLulus, time.June, 2025),
	}
	got := FilterByEnrollment(fullYearInvoices(thisYearID, 2024), events, 7)
	assert.Len(t, got, 12)
}

func TestCurrentOrder(t *testing.T) {
	assert.Equal(t, 0, CurrentOrder(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), 7))
	assert.Equal(t, 3, CurrentOrder(time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC), 7))
	assert.Equal(t, 11, CurrentOrder(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), 7))
}
