package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/academics/years/model"
)

/* =============== REQUESTS =============== */

type CreateAcademicYearRequest struct {
	AcademicYearName      string `json:"academic_year_name" validate:"omitempty,min=4"`
	AcademicYearStartYear int    `json:"academic_year_start_year" validate:"required,gte=2000,lte=2100"`
	AcademicYearEndYear   int    `json:"academic_year_end_year" validate:"required,gte=2000,lte=2100,gtefield=AcademicYearStartYear"`
}

func (r CreateAcademicYearRequest) ToModel() *m.AcademicYearModel {
	return &m.AcademicYearModel{
		AcademicYearName:      r.AcademicYearName,
		AcademicYearStartYear: r.AcademicYearStartYear,
		AcademicYearEndYear:   r.AcademicYearEndYear,
	}
}

// Update (partial)
type UpdateAcademicYearRequest struct {
	AcademicYearName      *string `json:"academic_year_name" validate:"omitempty,min=4"`
	AcademicYearStartYear *int    `json:"academic_year_start_year" validate:"omitempty,gte=2000,lte=2100"`
	AcademicYearEndYear   *int    `json:"academic_year_end_year" validate:"omitempty,gte=2000,lte=2100"`
}

/* =============== RESPONSES =============== */

type AcademicYearResponse struct {
	AcademicYearID        uuid.UUID `json:"academic_year_id"`
	AcademicYearName      string    `json:"academic_year_name"`
	AcademicYearStartYear int       `json:"academic_year_start_year"`
	AcademicYearEndYear   int       `json:"academic_year_end_year"`
	AcademicYearIsActive  bool      `json:"academic_year_is_active"`
	AcademicYearCreatedAt time.Time `json:"academic_year_created_at"`
}

func FromModel(x m.AcademicYearModel) AcademicYearResponse {
	return AcademicYearResponse{
		AcademicYearID:        x.AcademicYearID,
		AcademicYearName:      x.AcademicYearName,
		AcademicYearStartYear: x.AcademicYearStartYear,
		AcademicYearEndYear:   x.AcademicYearEndYear,
		AcademicYearIsActive:  x.AcademicYearIsActive,
		AcademicYearCreatedAt: x.AcademicYearCreatedAt,
	}
}

func FromModels(list []m.AcademicYearModel) []AcademicYearResponse {
	out := make([]AcademicYearResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
