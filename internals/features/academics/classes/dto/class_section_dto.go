package dto

import (
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/academics/classes/model"
)

/* =============== REQUESTS =============== */

type CreateClassSectionRequest struct {
	ClassSectionName   string    `json:"class_section_name" validate:"required,min=1,max=50"`
	ClassSectionGrade  int       `json:"class_section_grade" validate:"required,min=1,max=12"`
	ClassSectionYearID uuid.UUID `json:"class_section_year_id" validate:"required"`
}

func (r CreateClassSectionRequest) ToModel() *m.ClassSectionModel {
	return &m.ClassSectionModel{
		ClassSectionName:   r.ClassSectionName,
		ClassSectionGrade:  r.ClassSectionGrade,
		ClassSectionYearID: r.ClassSectionYearID,
	}
}

type UpdateClassSectionRequest struct {
	ClassSectionName  *string `json:"class_section_name" validate:"omitempty,min=1,max=50"`
	ClassSectionGrade *int    `json:"class_section_grade" validate:"omitempty,min=1,max=12"`
}

// GenerateGrid: roster standar nama kelas × tingkat untuk satu tahun,
// upsert by (name, year) — aman dijalankan ulang.
type GenerateGridRequest struct {
	YearID   uuid.UUID `json:"year_id" validate:"required"`
	MaxGrade int       `json:"max_grade" validate:"required,min=1,max=12"`
	Sections []string  `json:"sections" validate:"required,min=1,dive,min=1,max=5"` // mis. ["A","B"]
}

/* =============== RESPONSES =============== */

type ClassSectionResponse struct {
	ClassSectionID     uuid.UUID `json:"class_section_id"`
	ClassSectionName   string    `json:"class_section_name"`
	ClassSectionGrade  int       `json:"class_section_grade"`
	ClassSectionYearID uuid.UUID `json:"class_section_year_id"`
}

func FromModel(x m.ClassSectionModel) ClassSectionResponse {
	return ClassSectionResponse{
		ClassSectionID:     x.ClassSectionID,
		ClassSectionName:   x.ClassSectionName,
		ClassSectionGrade:  x.ClassSectionGrade,
		ClassSectionYearID: x.ClassSectionYearID,
	}
}

func FromModels(list []m.ClassSectionModel) []ClassSectionResponse {
	out := make([]ClassSectionResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
