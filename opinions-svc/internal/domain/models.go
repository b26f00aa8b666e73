package domain

import "time"

// RatingEvent mirrors the payload published by the rating service.
type RatingEvent struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
	Origin    string    `json:"origin"`
}

// Opinion is the append-only ledger record, one per distinct event id ever
// processed. MessageID equals the event id and is unique across the
// collection; that uniqueness is the idempotency guarantee.
type Opinion struct {
	MovieID    string    `bson:"movie_id" json:"movie_id"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    *string   `bson:"comment,omitempty" json:"comment"`
	ReceivedAt time.Time `bson:"received_at" json:"received_at"`
	Source     string    `bson:"source" json:"source"`
	MessageID  string    `bson:"message_id" json:"message_id"`
}

// MovieAggregate keeps a running sum and count per movie, both bumped by a
// single atomic $inc. The average is derived at read time, never stored, so
// two concurrent updates can never overwrite each other's effect.
type MovieAggregate struct {
	MovieID      string `bson:"movie_id" json:"movie_id"`
	RatingSum    int64  `bson:"rating_sum" json:"-"`
	RatingsCount int64  `bson:"ratings_count" json:"ratings_count"`
}

func (a MovieAggregate) AvgRating() float64 {
	if a.RatingsCount == 0 {
		return 0
	}
	return float64(a.RatingSum) / float64(a.RatingsCount)
}
