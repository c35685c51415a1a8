// Package pagination slices ordered result lists into fixed-size pages.
package pagination

// DefaultPageSize is the page size shared by every list view.
const DefaultPageSize = 10

// Page is a bounded contiguous slice of an ordered result list plus
// navigation metadata.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	TotalPages  int  `json:"total_pages"`
	Count       int  `json:"count"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate returns page `number` of `items`, `size` elements per page.
// Number defaults to 1 when zero or negative. Numbers past the last page
// clamp to the last valid page rather than erroring, mirroring paginator
// widgets that existing consumers expect.
func Paginate[T any](items []T, size, number int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	if number < 1 {
		number = 1
	}

	count := len(items)
	totalPages := (count + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := start + size
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	return Page[T]{
		Items:       items[start:end],
		Number:      number,
		TotalPages:  totalPages,
		Count:       count,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}
