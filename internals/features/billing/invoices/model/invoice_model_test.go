package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusBelumLunas, StatusFor(150000, 0))
	assert.Equal(t, StatusSebagian, StatusFor(150000, 50000))
	assert.Equal(t, StatusLunas, StatusFor(150000, 150000))

	// Kelebihan bayar tetap LUNAS
	assert.Equal(t, StatusLunas, StatusFor(150000, 200000))
}

func TestIsMonthly(t *testing.T) {
	m, y := 7, 2024
	assert.True(t, (&InvoiceModel{InvoiceMonth: &m, InvoiceCalendarYear: &y}).IsMonthly())
	assert.False(t, (&InvoiceModel{}).IsMonthly())
	assert.False(t, (&InvoiceModel{InvoiceMonth: &m}).IsMonthly())
}
