package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"watchshelf/internal/models"
)

func TestFilter(t *testing.T) {
	movies := []models.Movie{
		{ID: "1", Title: "The Dark Knight", Genre: "Action", Director: "Christopher Nolan"},
		{ID: "2", Title: "Inception", Genre: "Sci-Fi", Director: "Christopher Nolan"},
		{ID: "3", Title: "The Shawshank Redemption", Genre: "Drama", Director: "Frank Darabont"},
	}

	tests := []struct {
		query   string
		wantIDs []string
	}{
		{"", []string{"1", "2", "3"}},
		{"dark", []string{"1"}},
		{"NOLAN", []string{"1", "2"}},
		{"drama", []string{"3"}},
		{"the", []string{"1", "3"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("query=%q", tt.query), func(t *testing.T) {
			got := Filter(movies, tt.query, MovieFields)
			var ids []string
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterShowFieldsExcludeNumbers(t *testing.T) {
	shows := []models.TVShow{
		{ID: "1", Title: "Breaking Bad", Genre: "Crime", Seasons: 5},
		{ID: "2", Title: "The Crown", Genre: "Drama", Seasons: 6},
	}

	require.Len(t, Filter(shows, "crime", ShowFields), 1)
	require.Empty(t, Filter(shows, "5", ShowFields))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 14)
	for i := range items {
		items[i] = i
	}

	t.Run("first page holds PageSize items", func(t *testing.T) {
		page := Paginate(items, 1)
		require.Len(t, page, PageSize)
		require.Equal(t, 0, page[0])
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		page := Paginate(items, 3)
		require.Len(t, page, 2)
		require.Equal(t, 12, page[0])
	})

	t.Run("past the end is empty", func(t *testing.T) {
		require.Empty(t, Paginate(items, 4))
	})

	t.Run("page zero clamps to the first page", func(t *testing.T) {
		require.Equal(t, Paginate(items, 1), Paginate(items, 0))
	})
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 0, TotalPages(0))
	require.Equal(t, 1, TotalPages(1))
	require.Equal(t, 1, TotalPages(6))
	require.Equal(t, 2, TotalPages(7))
	require.Equal(t, 3, TotalPages(14))
}
