package catalog

import (
	"strings"

	"watchshelf/internal/models"
)

// PageSize is the fixed number of items per page, matching the original
// list views.
const PageSize = 6

// Filter returns the items whose searchable fields contain query,
// case-insensitively. An empty query keeps everything. The fields hook
// selects what is searchable per kind (title/genre/director for movies,
// title/genre for shows).
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)

	var out []T
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// MovieFields selects the searchable fields of a movie.
func MovieFields(m models.Movie) []string {
	return []string{m.Title, m.Genre, m.Director}
}

// ShowFields selects the searchable fields of a TV show.
func ShowFields(s models.TVShow) []string {
	return []string{s.Title, s.Genre}
}

// Paginate returns the 1-based page of items, PageSize at a time. Pages past
// the end are empty.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return nil
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages reports how many pages n items occupy. Zero items is zero
// pages.
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}
