package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsPerPage(t *testing.T) {
	cases := map[float64]int{
		0:       1,
		375:     1,
		639.999: 1,
		640:     2,
		800:     2,
		2560:    2,
	}
	for width, want := range cases {
		assert.Equal(t, want, ItemsPerPage(width), "width %v", width)
	}
	assert.Equal(t, 2, ItemsPerPageAt(500, 480))
	assert.Equal(t, 1, ItemsPerPageAt(500, 0), "non-positive breakpoint falls back to the default")
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 2))
	assert.Equal(t, 7, TotalPages(7, 1))
	assert.Equal(t, 3, TotalPages(5, 2))
	assert.Equal(t, 2, TotalPages(4, 2))
	assert.Equal(t, 3, TotalPages(3, 0))
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, ClampIndex(-3, 7, 1))
	assert.Equal(t, 6, ClampIndex(99, 7, 1))
	assert.Equal(t, 3, ClampIndex(4, 5, 2))
	assert.Equal(t, 0, ClampIndex(2, 1, 2))
	assert.Equal(t, 0, ClampIndex(5, 0, 1))
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 2000.0, ContentWidth(800, 5, 2))
	assert.Equal(t, 375.0, ItemWidth(375, 0))
}
