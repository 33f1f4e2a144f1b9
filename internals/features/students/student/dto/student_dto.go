package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/students/student/model"
)

/* =============== REQUESTS =============== */

type CreateStudentRequest struct {
	StudentNIPD    string    `json:"student_nipd" validate:"required,min=3,max=30"`
	StudentName    string    `json:"student_name" validate:"required,min=2"`
	StudentSex     *string   `json:"student_sex" validate:"omitempty,oneof=L P"`
	StudentClassID uuid.UUID `json:"student_class_id" validate:"required"`

	StudentEntryYear   *int    `json:"student_entry_year" validate:"omitempty,gte=2000,lte=2100"`
	StudentParentName  *string `json:"student_parent_name" validate:"omitempty"`
	StudentParentPhone *string `json:"student_parent_phone" validate:"omitempty,max=20"`
}

type UpdateStudentRequest struct {
	StudentName        *string `json:"student_name" validate:"omitempty,min=2"`
	StudentSex         *string `json:"student_sex" validate:"omitempty,oneof=L P"`
	StudentParentName  *string `json:"student_parent_name" validate:"omitempty"`
	StudentParentPhone *string `json:"student_parent_phone" validate:"omitempty,max=20"`
}

// TransferIn: siswa pindahan tengah tahun. EffectiveDate boleh backdate;
// tagihan digenerate mulai bulan efektif, tidak pernah mundur.
type TransferInRequest struct {
	CreateStudentRequest
	EffectiveDate *time.Time `json:"effective_date" validate:"omitempty"`
	Note          *string    `json:"note" validate:"omitempty"`
}

// ImportRow: satu baris hasil parse Excel yang SUDAH tervalidasi bentuknya.
// Import memakai jalur pembuatan siswa yang sama dengan entri manual —
// termasuk generate tagihan.
type ImportRow struct {
	StudentNIPD        string  `json:"student_nipd" validate:"required,min=3,max=30"`
	StudentName        string  `json:"student_name" validate:"required,min=2"`
	ClassName          string  `json:"class_name" validate:"required"`
	StudentSex         *string `json:"student_sex" validate:"omitempty,oneof=L P"`
	StudentParentName  *string `json:"student_parent_name" validate:"omitempty"`
	StudentParentPhone *string `json:"student_parent_phone" validate:"omitempty,max=20"`
}

type ImportStudentsRequest struct {
	YearID uuid.UUID   `json:"year_id" validate:"required"`
	Rows   []ImportRow `json:"rows" validate:"required,min=1,dive"`
}

/* =============== RESPONSES =============== */

type StudentResponse struct {
	StudentID            uuid.UUID       `json:"student_id"`
	StudentNIPD          string          `json:"student_nipd"`
	StudentName          string          `json:"student_name"`
	StudentSex           *string         `json:"student_sex,omitempty"`
	StudentClassID       *uuid.UUID      `json:"student_class_id,omitempty"`
	StudentClassSnapshot *string         `json:"student_class_snapshot,omitempty"`
	StudentYearID        *uuid.UUID      `json:"student_year_id,omitempty"`
	StudentStatus        m.StudentStatus `json:"student_status"`
	StudentAktif         bool            `json:"student_aktif"`
	StudentEntryYear     *int            `json:"student_entry_year,omitempty"`
	StudentExitDate      *time.Time      `json:"student_exit_date,omitempty"`
	StudentExitReason    *string         `json:"student_exit_reason,omitempty"`
	StudentParentName    *string         `json:"student_parent_name,omitempty"`
	StudentParentPhone   *string         `json:"student_parent_phone,omitempty"`
}

func FromModel(x m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:            x.StudentID,
		StudentNIPD:          x.StudentNIPD,
		StudentName:          x.StudentName,
		StudentSex:           x.StudentSex,
		StudentClassID:       x.StudentClassID,
		StudentClassSnapshot: x.StudentClassSnapshot,
		StudentYearID:        x.StudentYearID,
		StudentStatus:        x.StudentStatus,
		StudentAktif:         x.StudentAktif,
		StudentEntryYear:     x.StudentEntryYear,
		StudentExitDate:      x.StudentExitDate,
		StudentExitReason:    x.StudentExitReason,
		StudentParentName:    x.StudentParentName,
		StudentParentPhone:   x.StudentParentPhone,
	}
}

func FromModels(list []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
