package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCategories(t *testing.T) {
	assert.Equal(t, []FeeCategory{CategoryBulanan}, SplitCategories("BULANAN"))
	assert.Equal(t, []FeeCategory{CategoryBulanan, CategoryTahunan}, SplitCategories("BULANAN,TAHUNAN"))

	// Normalisasi: spasi, huruf kecil, duplikat, elemen kosong
	assert.Equal(t, []FeeCategory{CategoryBulanan, CategoryInsidental},
		SplitCategories(" bulanan , BULANAN,, insidental "))
	assert.Empty(t, SplitCategories(""))
}

func TestJoinCategories(t *testing.T) {
	assert.Equal(t, "BULANAN,TAHUNAN", JoinCategories([]FeeCategory{CategoryBulanan, CategoryTahunan}))
	assert.Equal(t, "", JoinCategories(nil))
}

func TestHasCategoryAndIsMonthly(t *testing.T) {
	ft := FeeTypeModel{FeeTypeCategories: "BULANAN,INSIDENTAL"}
	assert.True(t, ft.HasCategory(CategoryBulanan))
	assert.True(t, ft.HasCategory(CategoryInsidental))
	assert.False(t, ft.HasCategory(CategoryTahunan))
	assert.True(t, ft.IsMonthly())

	assert.False(t, (&FeeTypeModel{FeeTypeCategories: "TAHUNAN"}).IsMonthly())
}
