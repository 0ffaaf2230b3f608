package entity

import "time"

// Genre is a TMDB genre id and its display name.
type Genre struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	UpdatedAt time.Time `db:"updated_at"`
}
