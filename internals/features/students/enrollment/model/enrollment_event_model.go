package model

import (
	"time"

	"github.com/google/uuid"
)

// Jenis aksi pada histori enrolment siswa.
type EnrollmentAction string

const (
	ActionMasukBaru    EnrollmentAction = "MASUK_BARU"
	ActionNaikKelas    EnrollmentAction = "NAIK_KELAS"
	ActionPindahKelas  EnrollmentAction = "PINDAH_KELAS"
	ActionTinggalKelas EnrollmentAction = "TINGGAL_KELAS"
	ActionPindahMasuk  EnrollmentAction = "PINDAH_MASUK"
	ActionPindahKeluar EnrollmentAction = "PINDAH_KELUAR"
	ActionKeluar       EnrollmentAction = "KELUAR"
	ActionLulus        EnrollmentAction = "LULUS"
	ActionBatalLulus   EnrollmentAction = "BATAL_LULUS"
	ActionTarifKhusus  EnrollmentAction = "TARIF_KHUSUS"
)

// EnrollmentEventModel: histori append-only transisi siswa (siswa_histori).
// Kelas/tahun di sini adalah nilai yang berlaku SAAT transisi — snapshot,
// bukan referensi hidup.
type EnrollmentEventModel struct {
	EnrollmentEventID uuid.UUID `gorm:"column:enrollment_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_event_id"`

	EnrollmentEventStudentID uuid.UUID  `gorm:"column:enrollment_event_student_id;type:uuid;not null;index:idx_enrollment_events_student" json:"enrollment_event_student_id"`
	EnrollmentEventYearID    *uuid.UUID `gorm:"column:enrollment_event_year_id;type:uuid;index:idx_enrollment_events_year" json:"enrollment_event_year_id,omitempty"`

	EnrollmentEventClassID       *uuid.UUID `gorm:"column:enrollment_event_class_id;type:uuid" json:"enrollment_event_class_id,omitempty"`
	EnrollmentEventClassSnapshot *string    `gorm:"column:enrollment_event_class_snapshot;type:varchar(50)" json:"enrollment_event_class_snapshot,omitempty"`

	EnrollmentEventAction EnrollmentAction `gorm:"column:enrollment_event_action;type:varchar(20);not null" json:"enrollment_event_action"`
	EnrollmentEventNote   *string          `gorm:"column:enrollment_event_note;type:text" json:"enrollment_event_note,omitempty"`

	// Default "sekarang"; bisa di-backdate (mis. pindah masuk tengah tahun).
	EnrollmentEventDate time.Time `gorm:"column:enrollment_event_date;type:timestamptz;not null" json:"enrollment_event_date"`

	EnrollmentEventCreatedAt time.Time `gorm:"column:enrollment_event_created_at;type:timestamptz;not null;autoCreateTime" json:"enrollment_event_created_at"`
}

func (EnrollmentEventModel) TableName() string { return "enrollment_events" }
