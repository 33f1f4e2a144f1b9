package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kategori jenis tagihan. Satu jenis tagihan boleh membawa beberapa
// kategori sekaligus; di DB disimpan comma-joined, di code dipakai
// sebagai set lewat CategorySet/HasCategory.
type FeeCategory string

const (
	CategoryBulanan    FeeCategory = "BULANAN"
	CategoryTahunan    FeeCategory = "TAHUNAN"
	CategoryInsidental FeeCategory = "INSIDENTAL"
)

// Aturan target jenis tagihan.
type FeeTarget string

const (
	TargetAll       FeeTarget = "ALL"
	TargetByClass   FeeTarget = "BY_CLASS"
	TargetByStudent FeeTarget = "BY_STUDENT"
)

type FeeTypeModel struct {
	FeeTypeID uuid.UUID `gorm:"column:fee_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_type_id"`

	FeeTypeName       string `gorm:"column:fee_type_name;type:text;not null" json:"fee_type_name"`
	FeeTypeCategories string `gorm:"column:fee_type_categories;type:text;not null" json:"fee_type_categories"` // "BULANAN,TAHUNAN"
	FeeTypeAmountIDR  int64  `gorm:"column:fee_type_amount_idr;not null;check:fee_type_amount_idr > 0" json:"fee_type_amount_idr"`

	FeeTypeTarget   FeeTarget `gorm:"column:fee_type_target;type:varchar(12);not null;default:ALL" json:"fee_type_target"`
	FeeTypeIsActive bool      `gorm:"column:fee_type_is_active;not null;default:true" json:"fee_type_is_active"`

	FeeTypeYearID uuid.UUID `gorm:"column:fee_type_year_id;type:uuid;not null;index:idx_fee_types_year" json:"fee_type_year_id"`

	FeeTypeCreatedAt time.Time      `gorm:"column:fee_type_created_at;type:timestamptz;not null;autoCreateTime" json:"fee_type_created_at"`
	FeeTypeUpdatedAt time.Time      `gorm:"column:fee_type_updated_at;type:timestamptz;not null;autoUpdateTime" json:"fee_type_updated_at"`
	FeeTypeDeletedAt gorm.DeletedAt `gorm:"column:fee_type_deleted_at;index" json:"fee_type_deleted_at,omitempty"`
}

func (FeeTypeModel) TableName() string { return "fee_types" }

func (m *FeeTypeModel) BeforeSave(tx *gorm.DB) error {
	m.FeeTypeName = strings.TrimSpace(m.FeeTypeName)
	m.FeeTypeCategories = JoinCategories(m.CategorySet())
	return nil
}

// CategorySet memecah kolom comma-joined menjadi set kategori.
func (m *FeeTypeModel) CategorySet() []FeeCategory {
	return SplitCategories(m.FeeTypeCategories)
}

func (m *FeeTypeModel) HasCategory(cat FeeCategory) bool {
	for _, c := range m.CategorySet() {
		if c == cat {
			return true
		}
	}
	return false
}

// IsMonthly: true bila set kategori memuat BULANAN.
func (m *FeeTypeModel) IsMonthly() bool { return m.HasCategory(CategoryBulanan) }

func SplitCategories(joined string) []FeeCategory {
	seen := map[FeeCategory]bool{}
	out := []FeeCategory{}
	for _, part := range strings.Split(joined, ",") {
		c := FeeCategory(strings.ToUpper(strings.TrimSpace(part)))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func JoinCategories(set []FeeCategory) string {
	parts := make([]string, 0, len(set))
	for _, c := range set {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ",")
}
