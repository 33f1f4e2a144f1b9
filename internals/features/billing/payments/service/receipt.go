package service

import (
	"fmt"
	"strings"
	"time"
)

// FormatReceiptNumber merender template nomor kuitansi sekolah.
// Placeholder: {tahun} {bulan} {tanggal} {nomor}.
// Contoh "KW/{tahun}{bulan}{tanggal}/{nomor}" → "KW/20240705/0003".
func FormatReceiptNumber(template string, at time.Time, seq int) string {
	r := strings.NewReplacer(
		"{tahun}", fmt.Sprintf("%04d", at.Year()),
		"{bulan}", fmt.Sprintf("%02d", int(at.Month())),
		"{tanggal}", fmt.Sprintf("%02d", at.Day()),
		"{nomor}", fmt.Sprintf("%04d", seq),
	)
	return r.Replace(template)
}
