package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInPlaceFilter(t *testing.T) {
	numbers := []int{1, 2, 3, 4, 5, 6}
	InPlaceFilter(&numbers, func(n int) bool { return n%2 == 0 })

	assert.Equal(t, []int{2, 4, 6}, numbers)
}

func TestPaginateSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name     string
		page     int
		pageSize int
		expected []string
	}{
		{"first page", 1, 2, []string{"a", "b"}},
		{"middle page", 2, 2, []string{"c", "d"}},
		{"partial last page", 3, 2, []string{"e"}},
		{"page past end", 4, 2, []string{}},
		{"zero page clamps to first", 0, 3, []string{"a", "b", "c"}},
		{"page size larger than slice", 1, 50, []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PaginateSlice(items, tt.page, tt.pageSize))
		})
	}
}
