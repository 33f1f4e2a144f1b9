package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/billing/feetypes/model"
)

/* =============== REQUESTS =============== */

type CreateFeeTypeRequest struct {
	FeeTypeName       string        `json:"fee_type_name" validate:"required,min=2"`
	FeeTypeCategories []string      `json:"fee_type_categories" validate:"required,min=1,dive,oneof=BULANAN TAHUNAN INSIDENTAL"`
	FeeTypeAmountIDR  int64         `json:"fee_type_amount_idr" validate:"required,gt=0"`
	FeeTypeTarget     m.FeeTarget   `json:"fee_type_target" validate:"required,oneof=ALL BY_CLASS BY_STUDENT"`
	FeeTypeYearID     uuid.UUID     `json:"fee_type_year_id" validate:"required"`
	ClassIDs          []uuid.UUID   `json:"class_ids" validate:"omitempty"`
	StudentIDs        []uuid.UUID   `json:"student_ids" validate:"omitempty"`
}

func (r CreateFeeTypeRequest) ToModel() *m.FeeTypeModel {
	cats := make([]m.FeeCategory, 0, len(r.FeeTypeCategories))
	for _, c := range r.FeeTypeCategories {
		cats = append(cats, m.FeeCategory(c))
	}
	return &m.FeeTypeModel{
		FeeTypeName:       r.FeeTypeName,
		FeeTypeCategories: m.JoinCategories(cats),
		FeeTypeAmountIDR:  r.FeeTypeAmountIDR,
		FeeTypeTarget:     r.FeeTypeTarget,
		FeeTypeIsActive:   true,
		FeeTypeYearID:     r.FeeTypeYearID,
	}
}

type UpdateFeeTypeRequest struct {
	FeeTypeName       *string      `json:"fee_type_name" validate:"omitempty,min=2"`
	FeeTypeCategories []string     `json:"fee_type_categories" validate:"omitempty,min=1,dive,oneof=BULANAN TAHUNAN INSIDENTAL"`
	FeeTypeAmountIDR  *int64       `json:"fee_type_amount_idr" validate:"omitempty,gt=0"`
	FeeTypeTarget     *m.FeeTarget `json:"fee_type_target" validate:"omitempty,oneof=ALL BY_CLASS BY_STUDENT"`
	FeeTypeIsActive   *bool        `json:"fee_type_is_active" validate:"omitempty"`
	ClassIDs          []uuid.UUID  `json:"class_ids" validate:"omitempty"`
	StudentIDs        []uuid.UUID  `json:"student_ids" validate:"omitempty"`
}

// SetSpecialRate: tarif khusus (beasiswa/diskon) per (siswa, jenis tagihan).
type SetSpecialRateRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	AmountIDR int64     `json:"amount_idr" validate:"required,gt=0"`
	Cascade   bool      `json:"cascade"`
}

/* =============== RESPONSES =============== */

type FeeTypeResponse struct {
	FeeTypeID         uuid.UUID     `json:"fee_type_id"`
	FeeTypeName       string        `json:"fee_type_name"`
	FeeTypeCategories []m.FeeCategory `json:"fee_type_categories"`
	FeeTypeAmountIDR  int64         `json:"fee_type_amount_idr"`
	FeeTypeTarget     m.FeeTarget   `json:"fee_type_target"`
	FeeTypeIsActive   bool          `json:"fee_type_is_active"`
	FeeTypeYearID     uuid.UUID     `json:"fee_type_year_id"`
	FeeTypeCreatedAt  time.Time     `json:"fee_type_created_at"`
}

func FromModel(x m.FeeTypeModel) FeeTypeResponse {
	return FeeTypeResponse{
		FeeTypeID:         x.FeeTypeID,
		FeeTypeName:       x.FeeTypeName,
		FeeTypeCategories: x.CategorySet(),
		FeeTypeAmountIDR:  x.FeeTypeAmountIDR,
		FeeTypeTarget:     x.FeeTypeTarget,
		FeeTypeIsActive:   x.FeeTypeIsActive,
		FeeTypeYearID:     x.FeeTypeYearID,
		FeeTypeCreatedAt:  x.FeeTypeCreatedAt,
	}
}

func FromModels(list []m.FeeTypeModel) []FeeTypeResponse {
	out := make([]FeeTypeResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
