// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"os"
	"strings"
	"sync"
	"time"
)

var (
	locOnce sync.Once
	loc     *time.Location
)

// SchoolLocation: zona waktu sekolah dari SCHOOL_TIMEZONE (default
// Asia/Jakarta, fallback terakhir UTC). Dipakai untuk batas hari nomor
// kuitansi dan tanggal tercetak — batas "hari ini" harus hari lokal
// sekolah, bukan hari server.
func SchoolLocation() *time.Location {
	locOnce.Do(func() {
		name := strings.TrimSpace(os.Getenv("SCHOOL_TIMEZONE"))
		if name == "" {
			name = "Asia/Jakarta"
		}
		l, err := time.LoadLocation(name)
		if err != nil {
			l = time.UTC
		}
		loc = l
	})
	return loc
}

// Now: waktu sekarang dalam zona sekolah.
func Now() time.Time {
	return time.Now().In(SchoolLocation())
}
