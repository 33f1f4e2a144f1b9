package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/students/enrollment/model"
)

/* =============== REQUESTS =============== */

// MoveClass: promosi, pindah lateral, atau tinggal kelas — jenisnya
// diklasifikasi otomatis dari perbandingan tingkat.
type MoveClassRequest struct {
	StudentID     uuid.UUID  `json:"student_id" validate:"required"`
	TargetClassID uuid.UUID  `json:"target_class_id" validate:"required"`
	Note          *string    `json:"note" validate:"omitempty"`
	EffectiveDate *time.Time `json:"effective_date" validate:"omitempty"`
}

// BulkPromote: promosi massal satu kelas asal ke satu kelas tujuan.
// Per siswa transaksinya sendiri.
type BulkPromoteRequest struct {
	SourceClassID uuid.UUID  `json:"source_class_id" validate:"required"`
	TargetClassID uuid.UUID  `json:"target_class_id" validate:"required"`
	Note          *string    `json:"note" validate:"omitempty"`
	EffectiveDate *time.Time `json:"effective_date" validate:"omitempty"`
}

// MarkExit: pindah-keluar / keluar / lulus.
type MarkExitRequest struct {
	StudentID     uuid.UUID  `json:"student_id" validate:"required"`
	Note          *string    `json:"note" validate:"omitempty"`
	Reason        *string    `json:"reason" validate:"omitempty"`
	EffectiveDate *time.Time `json:"effective_date" validate:"omitempty"`
}

type ReverseRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Note      *string   `json:"note" validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type EnrollmentEventResponse struct {
	EnrollmentEventID            uuid.UUID          `json:"enrollment_event_id"`
	EnrollmentEventStudentID     uuid.UUID          `json:"enrollment_event_student_id"`
	EnrollmentEventYearID        *uuid.UUID         `json:"enrollment_event_year_id,omitempty"`
	EnrollmentEventClassID       *uuid.UUID         `json:"enrollment_event_class_id,omitempty"`
	EnrollmentEventClassSnapshot *string            `json:"enrollment_event_class_snapshot,omitempty"`
	EnrollmentEventAction        m.EnrollmentAction `json:"enrollment_event_action"`
	EnrollmentEventNote          *string            `json:"enrollment_event_note,omitempty"`
	EnrollmentEventDate          time.Time          `json:"enrollment_event_date"`
	EnrollmentEventCreatedAt     time.Time          `json:"enrollment_event_created_at"`
}

func FromModel(x m.EnrollmentEventModel) EnrollmentEventResponse {
	return EnrollmentEventResponse{
		EnrollmentEventID:            x.EnrollmentEventID,
		EnrollmentEventStudentID:     x.EnrollmentEventStudentID,
		EnrollmentEventYearID:        x.EnrollmentEventYearID,
		EnrollmentEventClassID:       x.EnrollmentEventClassID,
		EnrollmentEventClassSnapshot: x.EnrollmentEventClassSnapshot,
		EnrollmentEventAction:        x.EnrollmentEventAction,
		EnrollmentEventNote:          x.EnrollmentEventNote,
		EnrollmentEventDate:          x.EnrollmentEventDate,
		EnrollmentEventCreatedAt:     x.EnrollmentEventCreatedAt,
	}
}

func FromModels(list []m.EnrollmentEventModel) []EnrollmentEventResponse {
	out := make([]EnrollmentEventResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
