package util

func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	i := 0
	for _, e := range *s {
		if p(e) {
			(*s)[i] = e
			i++
		}
	}
	*s = (*s)[:i]
}

// PaginateSlice returns the window of s for a 1-indexed page of pageSize
// elements. Out of range pages return an empty slice.
func PaginateSlice[T any](s []T, page int, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	lower := (page - 1) * pageSize
	if lower >= len(s) {
		return []T{}
	}

	upper := lower + pageSize
	if upper > len(s) {
		upper = len(s)
	}

	return s[lower:upper]
}
