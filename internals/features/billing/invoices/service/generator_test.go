package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/billing/invoices/model"
)

func invoicesFromPlan(plan []Period) []model.InvoiceModel {
	out := make([]model.InvoiceModel, 0, len(plan))
	for _, p := range plan {
		m, y := p.Month, p.CalendarYear
		out = append(out, model.InvoiceModel{
			InvoiceMonth:        &m,
			InvoiceCalendarYear: &y,
		})
	}
	return out
}

func TestMissingPeriodsFirstRunCreatesAll(t *testing.T) {
	plan := PlanPeriods(monthlyFeeType(), 2024, 7, 0)
	require.Len(t, plan, 12)
	assert.Equal(t, plan, MissingPeriods(nil, plan))
}

func TestMissingPeriodsSecondRunCreatesNothing(t *testing.T) {
	// Generate dua kali: run kedua melihat set lengkap dan tidak
	// menghasilkan periode baru.
	plan := PlanPeriods(monthlyFeeType(), 2024, 7, 0)
	existing := invoicesFromPlan(plan)
	assert.Empty(t, MissingPeriods(existing, plan))
}

func TestMissingPeriodsFillsOnlyGaps(t *testing.T) {
	plan := PlanPeriods(monthlyFeeType(), 2024, 7, 0)
	// Hapus September 2024 dan Januari 2025 dari yang sudah ada.
	existing := invoicesFromPlan(plan)
	partial := make([]model.InvoiceModel, 0, len(existing))
	for _, inv := range existing {
		if *inv.InvoiceMonth == 9 || *inv.InvoiceMonth == 1 {
			continue
		}
		partial = append(partial, inv)
	}

	got := MissingPeriods(partial, plan)
	require.Len(t, got, 2)
	assert.Equal(t, Period{Month: 9, CalendarYear: 2024}, got[0])
	assert.Equal(t, Period{Month: 1, CalendarYear: 2025}, got[1])
}

func TestMissingPeriodsIgnoresUnperiodedInvoices(t *testing.T) {
	// Invoice tahunan (tanpa periode) tidak menutupi periode bulanan mana pun.
	plan := PlanPeriods(monthlyFeeType(), 2024, 7, 0)
	existing := []model.InvoiceModel{{InvoiceBilledIDR: 1000000}}
	assert.Len(t, MissingPeriods(existing, plan), 12)
}
