package model

import "time"

// Movie is a catalogue entry whose filming locations can be shown on the map.
type Movie struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Year        string `json:"year" db:"year"`
	Director    string `json:"director" db:"director"`
	Genre       string `json:"genre" db:"genre"`
	PosterURL   string `json:"poster_url" db:"poster_url"`
	UserID      string `json:"user_id,omitempty" db:"user_id"`
}

// Location is a single filming location of a movie. The ID is the database
// key and is treated as opaque by the routing engine.
type Location struct {
	ID          string   `json:"id" db:"id"`
	MovieID     string   `json:"movie_id" db:"movie_id"`
	Title       string   `json:"title" db:"title"`
	Coordinates GeoPoint `json:"coordinates" db:"coordinates"`
}

// Comment is a user comment attached to a movie.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	MovieID   string    `json:"movie_id" db:"movie_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
