package models

// TVShow is a catalog item in the TV shows collection.
type TVShow struct {
	// ID is unique within the shows collection (UUIDv7).
	ID string `json:"id"`

	Title string `json:"title" validate:"required"`
	Year  int    `json:"year" validate:"required,gt=0"`
	Genre string `json:"genre" validate:"required"`

	Seasons  int `json:"seasons" validate:"gte=0"`
	Episodes int `json:"episodes" validate:"gte=0"`

	// Rating is on a 0-10 scale.
	Rating float64 `json:"rating" validate:"gte=0,lte=10"`

	Description string `json:"description"`

	// Poster is an optional image URL.
	Poster string `json:"poster,omitempty"`

	// UserID identifies the user who added the item. Stamped on add,
	// never used to restrict access.
	UserID string `json:"userId"`
}

// TVShowPatch is a partial update; nil fields are left untouched.
type TVShowPatch struct {
	Title       *string  `json:"title"`
	Year        *int     `json:"year"`
	Genre       *string  `json:"genre"`
	Seasons     *int     `json:"seasons"`
	Episodes    *int     `json:"episodes"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
	Poster      *string  `json:"poster"`
}

// Apply merges the set fields of the patch into s.
func (p TVShowPatch) Apply(s *TVShow) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Year != nil {
		s.Year = *p.Year
	}
	if p.Genre != nil {
		s.Genre = *p.Genre
	}
	if p.Seasons != nil {
		s.Seasons = *p.Seasons
	}
	if p.Episodes != nil {
		s.Episodes = *p.Episodes
	}
	if p.Rating != nil {
		s.Rating = *p.Rating
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Poster != nil {
		s.Poster = *p.Poster
	}
}
