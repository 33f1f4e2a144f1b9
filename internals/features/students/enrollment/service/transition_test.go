package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/features/students/enrollment/model"
)

func TestClassifyMove(t *testing.T) {
	assert.Equal(t, model.ActionNaikKelas, ClassifyMove(1, 2))
	assert.Equal(t, model.ActionNaikKelas, ClassifyMove(5, 6))

	// Tingkat sama: pindah lateral antar seksi
	assert.Equal(t, model.ActionPindahKelas, ClassifyMove(3, 3))

	assert.Equal(t, model.ActionTinggalKelas, ClassifyMove(4, 3))
}

func TestClassifyMoveFromNoClass(t *testing.T) {
	// Siswa tanpa kelas asal (grade 0) selalu terhitung naik
	assert.Equal(t, model.ActionNaikKelas, ClassifyMove(0, 1))
}
