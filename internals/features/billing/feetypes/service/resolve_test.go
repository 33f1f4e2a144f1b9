package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64ptr(v int64) *int64 { return &v }

func TestEffectiveAmountBaseOnly(t *testing.T) {
	assert.Equal(t, int64(150000), EffectiveAmount(150000, nil, nil))
}

func TestEffectiveAmountClassOverride(t *testing.T) {
	assert.Equal(t, int64(120000), EffectiveAmount(150000, int64ptr(120000), nil))
}

func TestEffectiveAmountStudentBeatsClass(t *testing.T) {
	// Tarif khusus per siswa selalu menang
	assert.Equal(t, int64(75000), EffectiveAmount(150000, int64ptr(120000), int64ptr(75000)))
	assert.Equal(t, int64(75000), EffectiveAmount(150000, nil, int64ptr(75000)))
}
