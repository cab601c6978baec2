package service

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is one slice of an ordered result set.
type Page[T any] struct {
	Items      []T
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrevious reports whether an earlier page exists.
func (p Page[T]) HasPrevious() bool {
	return p.Page > 1
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

func calculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	if total == 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
