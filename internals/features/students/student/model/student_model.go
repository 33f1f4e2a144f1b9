package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status enrolment siswa.
type StudentStatus string

const (
	StudentAktif      StudentStatus = "AKTIF"
	StudentTidakAktif StudentStatus = "TIDAK_AKTIF"
	StudentPindah     StudentStatus = "PINDAH"
	StudentKeluar     StudentStatus = "KELUAR"
	StudentLulus      StudentStatus = "LULUS"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// NIPD: nomor induk peserta didik, unik se-sekolah
	StudentNIPD string `gorm:"column:student_nipd;type:varchar(30);not null;uniqueIndex:uq_students_nipd" json:"student_nipd"`
	StudentName string `gorm:"column:student_name;type:text;not null" json:"student_name"`
	StudentSex  *string `gorm:"column:student_sex;type:varchar(1)" json:"student_sex,omitempty"` // L / P

	// Kelas & tahun berjalan. Snapshot nama kelas dibekukan saat di-set,
	// tidak ikut berubah kalau kelas di-rename belakangan.
	StudentClassID       *uuid.UUID `gorm:"column:student_class_id;type:uuid;index:idx_students_class" json:"student_class_id,omitempty"`
	StudentClassSnapshot *string    `gorm:"column:student_class_snapshot;type:varchar(50)" json:"student_class_snapshot,omitempty"`
	StudentYearID        *uuid.UUID `gorm:"column:student_year_id;type:uuid;index:idx_students_year" json:"student_year_id,omitempty"`

	StudentStatus StudentStatus `gorm:"column:student_status;type:varchar(20);not null;default:AKTIF" json:"student_status"`
	StudentAktif  bool          `gorm:"column:student_aktif;not null;default:true" json:"student_aktif"`

	StudentEntryYear  *int       `gorm:"column:student_entry_year;type:smallint" json:"student_entry_year,omitempty"`
	StudentExitDate   *time.Time `gorm:"column:student_exit_date;type:date" json:"student_exit_date,omitempty"`
	StudentExitReason *string    `gorm:"column:student_exit_reason;type:text" json:"student_exit_reason,omitempty"`

	// Kontak wali
	StudentParentName  *string `gorm:"column:student_parent_name;type:text" json:"student_parent_name,omitempty"`
	StudentParentPhone *string `gorm:"column:student_parent_phone;type:varchar(20)" json:"student_parent_phone,omitempty"`

	// Akun login wali yang tertaut (maksimal satu)
	StudentParentUserID *uuid.UUID `gorm:"column:student_parent_user_id;type:uuid" json:"student_parent_user_id,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentNIPD = strings.TrimSpace(m.StudentNIPD)
	m.StudentName = strings.TrimSpace(m.StudentName)
	return nil
}
