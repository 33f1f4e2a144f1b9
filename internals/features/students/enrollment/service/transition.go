package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classmodel "sekolahku_backend/internals/features/academics/classes/model"
	"sekolahku_backend/internals/features/students/enrollment/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
)

// Satu-satunya modul yang menulis transisi status siswa. Logika maju dan
// logika pembatalan tinggal berdampingan di sini supaya tidak pernah
// menyimpang antar endpoint.

// ClassifyMove menentukan jenis perpindahan kelas dari perbandingan
// tingkat: tujuan > asal → NAIK_KELAS; sama → PINDAH_KELAS;
// lebih rendah → TINGGAL_KELAS.
func ClassifyMove(srcGrade, dstGrade int) model.EnrollmentAction {
	switch {
	case dstGrade > srcGrade:
		return model.ActionNaikKelas
	case dstGrade == srcGrade:
		return model.ActionPindahKelas
	default:
		return model.ActionTinggalKelas
	}
}

// AppendEvent menulis tepat satu baris histori dengan tahun & kelas yang
// berlaku pada siswa SAAT ini (snapshot). when zero → sekarang.
func AppendEvent(tx *gorm.DB, student *studentmodel.StudentModel, action model.EnrollmentAction, note *string, when time.Time) (*model.EnrollmentEventModel, error) {
	if when.IsZero() {
		when = time.Now()
	}
	ev := model.EnrollmentEventModel{
		EnrollmentEventStudentID:     student.StudentID,
		EnrollmentEventYearID:        student.StudentYearID,
		EnrollmentEventClassID:       student.StudentClassID,
		EnrollmentEventClassSnapshot: student.StudentClassSnapshot,
		EnrollmentEventAction:        action,
		EnrollmentEventNote:          note,
		EnrollmentEventDate:          when,
	}
	if err := tx.Create(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// MoveClass: promosi/pindah lateral/tinggal kelas — diklasifikasi otomatis.
// Siswa tetap AKTIF; pointer kelas/tahun dan snapshot nama kelas diganti.
func MoveClass(tx *gorm.DB, student *studentmodel.StudentModel, src, dst *classmodel.ClassSectionModel, note *string, when time.Time) (*model.EnrollmentEventModel, error) {
	if student.StudentStatus != studentmodel.StudentAktif {
		return nil, fiber.NewError(fiber.StatusConflict, "Hanya siswa AKTIF yang bisa dipindah kelas")
	}

	srcGrade := 0
	if src != nil {
		srcGrade = src.ClassSectionGrade
	}
	action := ClassifyMove(srcGrade, dst.ClassSectionGrade)

	name := dst.ClassSectionName
	yearID := dst.ClassSectionYearID
	student.StudentClassID = &dst.ClassSectionID
	student.StudentClassSnapshot = &name
	student.StudentYearID = &yearID

	if err := tx.Model(&studentmodel.StudentModel{}).
		Where("student_id = ?", student.StudentID).
		Updates(map[string]interface{}{
			"student_class_id":       dst.ClassSectionID,
			"student_class_snapshot": name,
			"student_year_id":        yearID,
		}).Error; err != nil {
		return nil, err
	}

	return AppendEvent(tx, student, action, note, when)
}

// MarkExit: AKTIF → PINDAH / KELUAR / LULUS. Kelas TIDAK diubah — hanya
// status; histori menyimpan kelas saat keluar (dipakai saat pembatalan).
func MarkExit(tx *gorm.DB, student *studentmodel.StudentModel, action model.EnrollmentAction, note *string, when time.Time, reason *string) (*model.EnrollmentEventModel, error) {
	if student.StudentStatus != studentmodel.StudentAktif {
		return nil, fiber.NewError(fiber.StatusConflict, "Siswa tidak berstatus AKTIF")
	}

	var status studentmodel.StudentStatus
	switch action {
	case model.ActionPindahKeluar:
		status = studentmodel.StudentPindah
	case model.ActionKeluar:
		status = studentmodel.StudentKeluar
	case model.ActionLulus:
		status = studentmodel.StudentLulus
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "Aksi keluar tidak dikenal: "+string(action))
	}

	if when.IsZero() {
		when = time.Now()
	}

	if err := tx.Model(&studentmodel.StudentModel{}).
		Where("student_id = ?", student.StudentID).
		Updates(map[string]interface{}{
			"student_status":      status,
			"student_aktif":       false,
			"student_exit_date":   when,
			"student_exit_reason": reason,
		}).Error; err != nil {
		return nil, err
	}
	student.StudentStatus = status
	student.StudentAktif = false
	student.StudentExitDate = &when
	student.StudentExitReason = reason

	return AppendEvent(tx, student, action, note, when)
}

// ReverseGraduation (BATAL_LULUS): butuh event LULUS terakhir; status
// kembali AKTIF dan kelas/tahun direstorasi ke nilai yang terekam di event
// kelulusan itu, lalu satu event BATAL_LULUS ditulis sebagai kompensasi.
func ReverseGraduation(db *gorm.DB, studentID uuid.UUID, note *string) (*model.EnrollmentEventModel, error) {
	var out *model.EnrollmentEventModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var student studentmodel.StudentModel
		if err := tx.Where("student_id = ?", studentID).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
			}
			return err
		}
		if student.StudentStatus != studentmodel.StudentLulus {
			return fiber.NewError(fiber.StatusConflict, "Siswa tidak berstatus LULUS")
		}

		var lulus model.EnrollmentEventModel
		if err := tx.
			Where("enrollment_event_student_id = ? AND enrollment_event_action = ?", studentID, model.ActionLulus).
			Order("enrollment_event_date DESC, enrollment_event_created_at DESC").
			First(&lulus).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Event LULUS tidak ditemukan")
			}
			return err
		}

		if err := tx.Model(&studentmodel.StudentModel{}).
			Where("student_id = ?", studentID).
			Updates(map[string]interface{}{
				"student_status":         studentmodel.StudentAktif,
				"student_aktif":          true,
				"student_class_id":       lulus.EnrollmentEventClassID,
				"student_class_snapshot": lulus.EnrollmentEventClassSnapshot,
				"student_year_id":        lulus.EnrollmentEventYearID,
				"student_exit_date":      nil,
				"student_exit_reason":    nil,
			}).Error; err != nil {
			return err
		}

		student.StudentStatus = studentmodel.StudentAktif
		student.StudentAktif = true
		student.StudentClassID = lulus.EnrollmentEventClassID
		student.StudentClassSnapshot = lulus.EnrollmentEventClassSnapshot
		student.StudentYearID = lulus.EnrollmentEventYearID

		ev, err := AppendEvent(tx, &student, model.ActionBatalLulus, note, time.Time{})
		if err != nil {
			return err
		}
		out = ev
		return nil
	})
	return out, err
}

// ReverseTransferOut: pembatalan PINDAH_KELUAR — status kembali AKTIF dan
// exit date dihapus; kelas tidak direstorasi karena memang tidak pernah
// diubah saat keluar. Event PINDAH_KELUAR-nya dihapus (pembatalan, bukan
// kompensasi).
func ReverseTransferOut(db *gorm.DB, studentID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var student studentmodel.StudentModel
		if err := tx.Where("student_id = ?", studentID).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
			}
			return err
		}
		if student.StudentStatus != studentmodel.StudentPindah {
			return fiber.NewError(fiber.StatusConflict, "Siswa tidak berstatus PINDAH")
		}

		var ev model.EnrollmentEventModel
		if err := tx.
			Where("enrollment_event_student_id = ? AND enrollment_event_action = ?", studentID, model.ActionPindahKeluar).
			Order("enrollment_event_date DESC, enrollment_event_created_at DESC").
			First(&ev).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Event PINDAH_KELUAR tidak ditemukan")
			}
			return err
		}
		if err := tx.Delete(&ev).Error; err != nil {
			return err
		}

		return tx.Model(&studentmodel.StudentModel{}).
			Where("student_id = ?", studentID).
			Updates(map[string]interface{}{
				"student_status":      studentmodel.StudentAktif,
				"student_aktif":       true,
				"student_exit_date":   nil,
				"student_exit_reason": nil,
			}).Error
	})
}

// ReverseTransferIn: pembatalan PINDAH_MASUK — siswa dibuat baru saat
// pindah masuk (tidak punya riwayat lokal sebelumnya), jadi kompensasinya
// menonaktifkan record siswa seluruhnya, bukan merestorasi state lama.
func ReverseTransferIn(db *gorm.DB, studentID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var student studentmodel.StudentModel
		if err := tx.Where("student_id = ?", studentID).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
			}
			return err
		}

		var n int64
		if err := tx.Model(&model.EnrollmentEventModel{}).
			Where("enrollment_event_student_id = ? AND enrollment_event_action = ?", studentID, model.ActionPindahMasuk).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Event PINDAH_MASUK tidak ditemukan")
		}

		if err := tx.Model(&studentmodel.StudentModel{}).
			Where("student_id = ?", studentID).
			Updates(map[string]interface{}{
				"student_status": studentmodel.StudentTidakAktif,
				"student_aktif":  false,
			}).Error; err != nil {
			return err
		}
		return tx.Where("student_id = ?", studentID).Delete(&studentmodel.StudentModel{}).Error
	})
}
