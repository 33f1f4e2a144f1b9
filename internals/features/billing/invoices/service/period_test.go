package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feemodel "sekolahku_backend/internals/features/billing/feetypes/model"
)

func monthlyFeeType() *feemodel.FeeTypeModel {
	return &feemodel.FeeTypeModel{
		FeeTypeName:       "SPP",
		FeeTypeCategories: "BULANAN",
		FeeTypeAmountIDR:  150000,
	}
}

func TestPeriodOrder(t *testing.T) {
	// Tahun ajaran mulai Juli: Juli=0 ... Juni=11
	assert.Equal(t, 0, PeriodOrder(7, 7))
	assert.Equal(t, 1, PeriodOrder(8, 7))
	assert.Equal(t, 5, PeriodOrder(12, 7))
	assert.Equal(t, 6, PeriodOrder(1, 7))
	assert.Equal(t, 11, PeriodOrder(6, 7))
}

func TestCalendarYearFor(t *testing.T) {
	assert.Equal(t, 2024, CalendarYearFor(7, 7, 2024))
	assert.Equal(t, 2024, CalendarYearFor(12, 7, 2024))
	assert.Equal(t, 2025, CalendarYearFor(1, 7, 2024))
	assert.Equal(t, 2025, CalendarYearFor(6, 7, 2024))
}

func TestMonthAtOrderInversesPeriodOrder(t *testing.T) {
	for startMonth := 1; startMonth <= 12; startMonth++ {
		for order := 0; order < 12; order++ {
			month := MonthAtOrder(order, startMonth)
			assert.Equal(t, order, PeriodOrder(month, startMonth))
		}
	}
}

func TestPlanPeriodsFullYear(t *testing.T) {
	periods := PlanPeriods(monthlyFeeType(), 2024, 7, 0)
	require.Len(t, periods, 12)

	// Urutan akademik: Juli 2024 dulu, Juni 2025 terakhir
	assert.Equal(t, Period{Month: 7, CalendarYear: 2024}, periods[0])
	assert.Equal(t, Period{Month: 12, CalendarYear: 2024}, periods[5])
	assert.Equal(t, Period{Month: 1, CalendarYear: 2025}, periods[6])
	assert.Equal(t, Period{Month: 6, CalendarYear: 2025}, periods[11])
}

func TestPlanPeriodsClippedByMinOrder(t *testing.T) {
	// Pindah masuk Oktober (order 3): Juli-September tidak ditagih
	periods := PlanPeriods(monthlyFeeType(), 2024, 7, 3)
	require.Len(t, periods, 9)
	assert.Equal(t, Period{Month: 10, CalendarYear: 2024}, periods[0])
	assert.Equal(t, Period{Month: 6, CalendarYear: 2025}, periods[8])
}

func TestPlanPeriodsNonMonthly(t *testing.T) {
	ft := &feemodel.FeeTypeModel{
		FeeTypeName:       "Uang Gedung",
		FeeTypeCategories: "TAHUNAN",
		FeeTypeAmountIDR:  1000000,
	}
	assert.Nil(t, PlanPeriods(ft, 2024, 7, 0))
}

func TestPlanPeriodsMixedCategoriesStillMonthly(t *testing.T) {
	ft := &feemodel.FeeTypeModel{
		FeeTypeName:       "SPP Plus",
		FeeTypeCategories: "BULANAN,INSIDENTAL",
		FeeTypeAmountIDR:  200000,
	}
	assert.Len(t, PlanPeriods(ft, 2024, 7, 0), 12)
}
