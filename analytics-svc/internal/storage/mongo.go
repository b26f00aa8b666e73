// Package storage gives the analytics service read-only access to the
// collections maintained by the opinions consumer. Nothing here ever writes.
package storage

import (
	"context"
	"fmt"
	"strconv"

	"movierama/analytics-svc/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	opinionsCollection   = "opinions"
	aggregatesCollection = "movieaggregates"
	moviesCollection     = "movies"
)

type Store struct {
	opinions   *mongo.Collection
	aggregates *mongo.Collection
	movies     *mongo.Collection
}

func NewStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		opinions:   db.Collection(opinionsCollection),
		aggregates: db.Collection(aggregatesCollection),
		movies:     db.Collection(moviesCollection),
	}
}

type aggregateDoc struct {
	MovieID      string `bson:"movie_id"`
	RatingSum    int64  `bson:"rating_sum"`
	RatingsCount int64  `bson:"ratings_count"`
}

func (d aggregateDoc) stats() domain.MovieStats {
	stats := domain.MovieStats{MovieID: d.MovieID, RatingsCount: d.RatingsCount}
	if d.RatingsCount > 0 {
		stats.AvgRating = float64(d.RatingSum) / float64(d.RatingsCount)
	}
	return stats
}

// GetAggregate returns nil when the movie has no ratings yet.
func (s *Store) GetAggregate(ctx context.Context, movieID string) (*domain.MovieStats, error) {
	var doc aggregateDoc
	err := s.aggregates.FindOne(ctx, bson.M{"movie_id": movieID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	stats := doc.stats()
	return &stats, nil
}

// TopAggregates sorts by the average derived inside the pipeline, so the
// ordering matches what readers see.
func (s *Store) TopAggregates(ctx context.Context, limit int) ([]domain.MovieStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.D{
			{Key: "avg_rating", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$gt", Value: bson.A{"$ratings_count", 0}}},
				bson.D{{Key: "$divide", Value: bson.A{"$rating_sum", "$ratings_count"}}},
				0,
			}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "avg_rating", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := s.aggregates.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate top movies: %w", err)
	}
	defer cursor.Close(ctx)

	var top []domain.MovieStats
	for cursor.Next(ctx) {
		var row struct {
			MovieID      string  `bson:"movie_id"`
			AvgRating    float64 `bson:"avg_rating"`
			RatingsCount int64   `bson:"ratings_count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		top = append(top, domain.MovieStats{
			MovieID:      row.MovieID,
			AvgRating:    row.AvgRating,
			RatingsCount: row.RatingsCount,
		})
	}
	return top, cursor.Err()
}

// MoviesByID fetches catalog documents for the given movie ids. Ids with no
// catalog entry are silently absent from the result.
func (s *Store) MoviesByID(ctx context.Context, ids []string) ([]domain.Movie, error) {
	cursor, err := s.movies.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer cursor.Close(ctx)

	var movies []domain.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// SampleMovies draws a random candidate pool from the catalog.
func (s *Store) SampleMovies(ctx context.Context, size int) ([]domain.Movie, error) {
	cursor, err := s.movies.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: size}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("sample movies: %w", err)
	}
	defer cursor.Close(ctx)

	var movies []domain.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// RatingDistribution counts opinions per rating value 1..5; movieID "" means
// the whole ledger.
func (s *Store) RatingDistribution(ctx context.Context, movieID string) (map[string]int, error) {
	pipeline := mongo.Pipeline{}
	if movieID != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"movie_id": movieID}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$rating"},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}})

	cursor, err := s.opinions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate rating distribution: %w", err)
	}
	defer cursor.Close(ctx)

	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for cursor.Next(ctx) {
		var row struct {
			Rating int `bson:"_id"`
			Count  int `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		distribution[strconv.Itoa(row.Rating)] = row.Count
	}
	return distribution, cursor.Err()
}
