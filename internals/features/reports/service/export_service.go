package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExportArrearsExcel menulis daftar tunggakan ke workbook xlsx.
func ExportArrearsExcel(yearName string, rows []ArrearsRow) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Tunggakan"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 10)
	f.SetColWidth(sheetName, "E", "G", 16)
	f.SetColWidth(sheetName, "H", "H", 18)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Laporan Tunggakan SPP %s", yearName))
	f.MergeCell(sheetName, "A1", "H1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	headers := []string{"No", "NIPD", "Nama", "Kelas", "Total Tagihan", "Total Bayar", "Tunggakan", "Tagihan Belum Lunas"}
	for i, hd := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", col), hd)
		f.SetCellStyle(sheetName, fmt.Sprintf("%s2", col), fmt.Sprintf("%s2", col), headerStyle)
	}

	row := 3
	for i, r := range rows {
		kelas := "-"
		if r.ClassSnapshot != nil {
			kelas = *r.ClassSnapshot
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.StudentNIPD)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.StudentName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), kelas)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.TotalBilledIDR)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.TotalPaidIDR)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.OutstandingIDR)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.UnpaidInvoices)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("tunggakan_%s.xlsx", strings.ReplaceAll(yearName, "/", "-"))
	return buf, filename, nil
}
