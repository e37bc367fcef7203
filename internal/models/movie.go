package models

// Movie is a catalog item in the movies collection.
type Movie struct {
	// ID is unique within the movies collection (UUIDv7).
	ID string `json:"id"`

	Title    string `json:"title" validate:"required"`
	Year     int    `json:"year" validate:"required,gt=0"`
	Genre    string `json:"genre" validate:"required"`
	Director string `json:"director" validate:"required"`

	// Rating is on a 0-10 scale.
	Rating float64 `json:"rating" validate:"gte=0,lte=10"`

	Description string `json:"description"`

	// Poster is an optional image URL.
	Poster string `json:"poster,omitempty"`

	// UserID identifies the user who added the item. Stamped on add,
	// never used to restrict access.
	UserID string `json:"userId"`
}

// MoviePatch is a partial update; nil fields are left untouched.
type MoviePatch struct {
	Title       *string  `json:"title"`
	Year        *int     `json:"year"`
	Genre       *string  `json:"genre"`
	Director    *string  `json:"director"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
	Poster      *string  `json:"poster"`
}

// Apply merges the set fields of the patch into m.
func (p MoviePatch) Apply(m *Movie) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.Genre != nil {
		m.Genre = *p.Genre
	}
	if p.Director != nil {
		m.Director = *p.Director
	}
	if p.Rating != nil {
		m.Rating = *p.Rating
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Poster != nil {
		m.Poster = *p.Poster
	}
}
