package domain

// MovieStats is the read model for one movie's aggregate: the average is
// derived from the stored running sum and count, never persisted itself.
type MovieStats struct {
	MovieID      string  `json:"movie_id"`
	AvgRating    float64 `json:"avg_rating"`
	RatingsCount int64   `json:"ratings_count"`
}

// TrendingMovie ranks movies by how many ratings arrived today.
type TrendingMovie struct {
	MovieID      string `json:"movie_id"`
	RatingsToday int64  `json:"ratings_today"`
}

// Movie is the slice of a catalog document the recommender scores on. The
// catalog is owned elsewhere; only these fields are ever read.
type Movie struct {
	ID        string   `bson:"_id" json:"movie_id"`
	Title     string   `bson:"title" json:"title"`
	Year      int      `bson:"year" json:"year"`
	Genres    []string `bson:"genres" json:"genres"`
	Cast      []string `bson:"cast" json:"cast"`
	Directors []string `bson:"directors" json:"directors"`
	FullPlot  string   `bson:"fullplot" json:"-"`
}

// Recommendation is a candidate movie with its best similarity score against
// the current top-rated set.
type Recommendation struct {
	Movie
	Score float64 `json:"score"`
}
