package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassSectionModel struct {
	ClassSectionID uuid.UUID `gorm:"column:class_section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_section_id"`

	// Contoh name: "4B"; unik per tahun ajaran
	ClassSectionName  string `gorm:"column:class_section_name;type:varchar(50);not null;uniqueIndex:uq_class_sections_name_year" json:"class_section_name"`
	ClassSectionGrade int    `gorm:"column:class_section_grade;type:smallint;not null" json:"class_section_grade"` // tingkat 1..n

	ClassSectionYearID uuid.UUID `gorm:"column:class_section_year_id;type:uuid;not null;uniqueIndex:uq_class_sections_name_year;index:idx_class_sections_year" json:"class_section_year_id"`

	ClassSectionCreatedAt time.Time      `gorm:"column:class_section_created_at;type:timestamptz;not null;autoCreateTime" json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time      `gorm:"column:class_section_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_section_updated_at"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_section_deleted_at;index" json:"class_section_deleted_at,omitempty"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }

func (m *ClassSectionModel) BeforeSave(tx *gorm.DB) error {
	m.ClassSectionName = strings.ToUpper(strings.TrimSpace(m.ClassSectionName))
	return nil
}
