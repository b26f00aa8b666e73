package domain

import "time"

// RatingEvent is the wire payload published for every accepted rating. The ID
// is producer-generated and is the deduplication key downstream.
type RatingEvent struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
	Origin    string    `json:"origin"`
}
