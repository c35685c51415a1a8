package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intSeq(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i + 1
	}
	return seq
}

func TestPaginate(t *testing.T) {
	seq := intSeq(14)

	tests := []struct {
		name        string
		number      int
		wantItems   []int
		wantNumber  int
		hasNext     bool
		hasPrevious bool
	}{
		{
			name:        "first page holds ten elements",
			number:      1,
			wantItems:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			wantNumber:  1,
			hasNext:     true,
			hasPrevious: false,
		},
		{
			name:        "second page holds the remaining four",
			number:      2,
			wantItems:   []int{11, 12, 13, 14},
			wantNumber:  2,
			hasNext:     false,
			hasPrevious: true,
		},
		{
			name:        "page past the end clamps to the last page",
			number:      3,
			wantItems:   []int{11, 12, 13, 14},
			wantNumber:  2,
			hasNext:     false,
			hasPrevious: true,
		},
		{
			name:        "zero defaults to page one",
			number:      0,
			wantItems:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			wantNumber:  1,
			hasNext:     true,
			hasPrevious: false,
		},
		{
			name:        "negative defaults to page one",
			number:      -4,
			wantItems:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			wantNumber:  1,
			hasNext:     true,
			hasPrevious: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(seq, DefaultPageSize, tt.number)
			assert.Equal(t, tt.wantItems, page.Items)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, 2, page.TotalPages)
			assert.Equal(t, 14, page.Count)
			assert.Equal(t, tt.hasNext, page.HasNext)
			assert.Equal(t, tt.hasPrevious, page.HasPrevious)
		})
	}
}

func TestPaginateClampEqualsLastPage(t *testing.T) {
	seq := intSeq(14)
	last := Paginate(seq, DefaultPageSize, 2)
	clamped := Paginate(seq, DefaultPageSize, 3)
	assert.Equal(t, last, clamped)
}

func TestPaginateEmptySequence(t *testing.T) {
	page := Paginate([]string{}, DefaultPageSize, 1)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.Count)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestPaginateExactMultiple(t *testing.T) {
	page := Paginate(intSeq(20), DefaultPageSize, 2)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
}

func TestPaginateSizeFallback(t *testing.T) {
	page := Paginate(intSeq(14), 0, 1)
	assert.Len(t, page.Items, DefaultPageSize)
}
