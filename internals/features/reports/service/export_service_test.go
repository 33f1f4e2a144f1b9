package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportArrearsExcel(t *testing.T) {
	kelas := "2B"
	rows := []ArrearsRow{
		{
			StudentNIPD:    "2024001",
			StudentName:    "Budi Santoso",
			ClassSnapshot:  &kelas,
			UnpaidInvoices: 3,
			TotalBilledIDR: 450000,
			TotalPaidIDR:   150000,
			OutstandingIDR: 300000,
		},
		{
			StudentNIPD:    "2024002",
			StudentName:    "Siti Aminah",
			UnpaidInvoices: 1,
			TotalBilledIDR: 150000,
			OutstandingIDR: 150000,
		},
	}

	buf, filename, err := ExportArrearsExcel("2024/2025", rows)
	require.NoError(t, err)
	assert.Equal(t, "tunggakan_2024-2025.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Tunggakan", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", name)

	outstanding, err := f.GetCellValue("Tunggakan", "G4")
	require.NoError(t, err)
	assert.Equal(t, "150000", outstanding)
}

func TestExportArrearsExcelEmpty(t *testing.T) {
	buf, _, err := ExportArrearsExcel("2024/2025", nil)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
