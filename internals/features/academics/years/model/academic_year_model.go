package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AcademicYearModel struct {
	AcademicYearID uuid.UUID `gorm:"column:academic_year_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_year_id"`

	// Contoh name: "2024/2025"
	AcademicYearName      string `gorm:"column:academic_year_name;type:text;not null" json:"academic_year_name"`
	AcademicYearStartYear int    `gorm:"column:academic_year_start_year;type:smallint;not null" json:"academic_year_start_year"`
	AcademicYearEndYear   int    `gorm:"column:academic_year_end_year;type:smallint;not null" json:"academic_year_end_year"`

	// Maksimal satu tahun ajaran aktif; hanya ditulis oleh operasi set-active.
	AcademicYearIsActive bool `gorm:"column:academic_year_is_active;not null;default:false" json:"academic_year_is_active"`

	// Snapshot agregat laporan (diisi ulang oleh service reports)
	AcademicYearStats datatypes.JSON `gorm:"column:academic_year_stats;type:jsonb" json:"academic_year_stats,omitempty"`

	AcademicYearCreatedAt time.Time      `gorm:"column:academic_year_created_at;type:timestamptz;not null;autoCreateTime" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"column:academic_year_updated_at;type:timestamptz;not null;autoUpdateTime" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"academic_year_deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

func (m *AcademicYearModel) BeforeSave(tx *gorm.DB) error {
	if m.AcademicYearEndYear < m.AcademicYearStartYear {
		return errors.New("academic_year_end_year must be >= academic_year_start_year")
	}
	m.AcademicYearName = strings.TrimSpace(m.AcademicYearName)
	if m.AcademicYearName == "" {
		m.AcademicYearName = fmt.Sprintf("%d/%d", m.AcademicYearStartYear, m.AcademicYearEndYear)
	}
	return nil
}
