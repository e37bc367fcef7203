package catalog

import "watchshelf/internal/models"

// Seed data written on first run, carried over from the original demo.

func sampleMovies() []models.Movie {
	return []models.Movie{
		{
			ID:          "1",
			Title:       "The Shawshank Redemption",
			Year:        1994,
			Genre:       "Drama",
			Director:    "Frank Darabont",
			Rating:      9.3,
			Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			Poster:      "https://images.unsplash.com/photo-1478720568477-152d9b164e26?w=400&h=600&fit=crop",
			UserID:      SampleOwnerID,
		},
		{
			ID:          "2",
			Title:       "The Dark Knight",
			Year:        2008,
			Genre:       "Action",
			Director:    "Christopher Nolan",
			Rating:      9.0,
			Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests.",
			Poster:      "https://images.unsplash.com/photo-1509347528160-9a9e33742cdb?w=400&h=600&fit=crop",
			UserID:      SampleOwnerID,
		},
		{
			ID:          "3",
			Title:       "Inception",
			Year:        2010,
			Genre:       "Sci-Fi",
			Director:    "Christopher Nolan",
			Rating:      8.8,
			Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea.",
			Poster:      "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=400&h=600&fit=crop",
			UserID:      SampleOwnerID,
		},
	}
}

func sampleShows() []models.TVShow {
	return []models.TVShow{
		{
			ID:          "1",
			Title:       "Breaking Bad",
			Year:        2008,
			Genre:       "Crime",
			Seasons:     5,
			Episodes:    62,
			Rating:      9.5,
			Description: "A high school chemistry teacher turned methamphetamine manufacturer partners with a former student.",
			Poster:      "https://images.unsplash.com/photo-1574267432644-f610a51acebd?w=400&h=600&fit=crop",
			UserID:      SampleOwnerID,
		},
		{
			ID:          "2",
			Title:       "Stranger Things",
			Year:        2016,
			Genre:       "Sci-Fi",
			Seasons:     4,
			Episodes:    42,
			Rating:      8.7,
			Description: "When a young boy disappears, his mother, a police chief and his friends must confront terrifying supernatural forces.",
			Poster:      "https://images.unsplash.com/photo-1594908900066-3f47337549d8?w=400&h=600&fit=crop",
			UserID:      SampleOwnerID,
		},
		{
			ID:          "3",
			Title:       "The Crown",
			Year:        2016,
			Genre:       "Drama",
			Seasons:     6,
			Episodes:    60,
			Rating:      8.6,
			Description: "Follows the political rivalries and romance of Queen Elizabeth II's reign and the events that shaped the second half of the 20th century.",
			Poster:      "https://images.unsplash.com/photo-1542204165-65bf26472b9b?w=400&h=600&fit=crop",
			UserID:      SampleOwnerID,
		},
	}
}
