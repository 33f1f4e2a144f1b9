package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 3, p.TotalPages)
}

func TestBuildPaginationFromPageExactDivision(t *testing.T) {
	p := BuildPaginationFromPage(40, 1, 20)
	assert.Equal(t, 2, p.TotalPages)
}

func TestBuildPaginationFromPageEmpty(t *testing.T) {
	p := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
