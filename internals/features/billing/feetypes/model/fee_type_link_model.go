package model

import (
	"time"

	"github.com/google/uuid"
)

// Link jenis tagihan → kelas (target BY_CLASS), dengan tarif override
// opsional per kelas.
type FeeTypeClassModel struct {
	FeeTypeClassID uuid.UUID `gorm:"column:fee_type_class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_type_class_id"`

	FeeTypeClassFeeTypeID uuid.UUID `gorm:"column:fee_type_class_fee_type_id;type:uuid;not null;uniqueIndex:uq_fee_type_classes;index:idx_fee_type_classes_fee_type" json:"fee_type_class_fee_type_id"`
	FeeTypeClassClassID   uuid.UUID `gorm:"column:fee_type_class_class_id;type:uuid;not null;uniqueIndex:uq_fee_type_classes" json:"fee_type_class_class_id"`

	FeeTypeClassAmountIDR *int64 `gorm:"column:fee_type_class_amount_idr;check:fee_type_class_amount_idr > 0" json:"fee_type_class_amount_idr,omitempty"`

	FeeTypeClassCreatedAt time.Time `gorm:"column:fee_type_class_created_at;type:timestamptz;not null;autoCreateTime" json:"fee_type_class_created_at"`
}

func (FeeTypeClassModel) TableName() string { return "fee_type_classes" }

// Link jenis tagihan → siswa (target BY_STUDENT / tarif khusus), dengan
// tarif override opsional per siswa (beasiswa/diskon).
type FeeTypeStudentModel struct {
	FeeTypeStudentID uuid.UUID `gorm:"column:fee_type_student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_type_student_id"`

	FeeTypeStudentFeeTypeID uuid.UUID `gorm:"column:fee_type_student_fee_type_id;type:uuid;not null;uniqueIndex:uq_fee_type_students;index:idx_fee_type_students_fee_type" json:"fee_type_student_fee_type_id"`
	FeeTypeStudentStudentID uuid.UUID `gorm:"column:fee_type_student_student_id;type:uuid;not null;uniqueIndex:uq_fee_type_students" json:"fee_type_student_student_id"`

	FeeTypeStudentAmountIDR *int64 `gorm:"column:fee_type_student_amount_idr;check:fee_type_student_amount_idr > 0" json:"fee_type_student_amount_idr,omitempty"`

	FeeTypeStudentCreatedAt time.Time `gorm:"column:fee_type_student_created_at;type:timestamptz;not null;autoCreateTime" json:"fee_type_student_created_at"`
}

func (FeeTypeStudentModel) TableName() string { return "fee_type_students" }
