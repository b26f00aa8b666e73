package storage

import (
	"context"
	"errors"
	"fmt"

	"movierama/opinions-svc/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateOpinion reports that an opinion with the same message id was
// already recorded; redelivered events hit this and must be acked as no-ops.
var ErrDuplicateOpinion = errors.New("opinion already recorded for this message id")

const (
	opinionsCollection   = "opinions"
	aggregatesCollection = "movieaggregates"
)

// Store is the sole writer of the opinions ledger and the movie aggregates.
type Store struct {
	client     *mongo.Client
	opinions   *mongo.Collection
	aggregates *mongo.Collection
}

func NewStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		client:     client,
		opinions:   db.Collection(opinionsCollection),
		aggregates: db.Collection(aggregatesCollection),
	}
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.opinions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "message_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create opinions index: %w", err)
	}

	_, err = s.aggregates.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "movie_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create aggregates index: %w", err)
	}
	return nil
}

func (s *Store) HasOpinion(ctx context.Context, messageID string) (bool, error) {
	err := s.opinions.FindOne(ctx, bson.M{"message_id": messageID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RecordOpinion appends the opinion and bumps the movie's running sum and
// count in one transaction: a crash between the two writes can never strand
// the aggregate behind the ledger. Requires the server to run as a replica
// set. Returns the aggregate as of this write.
func (s *Store) RecordOpinion(ctx context.Context, opinion domain.Opinion) (domain.MovieAggregate, error) {
	session, err := s.client.StartSession()
	if err != nil {
		return domain.MovieAggregate{}, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.opinions.InsertOne(sc, opinion); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicateOpinion
			}
			return nil, fmt.Errorf("insert opinion: %w", err)
		}

		update := bson.M{
			"$inc":         bson.M{"rating_sum": opinion.Rating, "ratings_count": 1},
			"$setOnInsert": bson.M{"movie_id": opinion.MovieID},
		}
		opts := options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After)

		var agg domain.MovieAggregate
		if err := s.aggregates.FindOneAndUpdate(sc, bson.M{"movie_id": opinion.MovieID}, update, opts).Decode(&agg); err != nil {
			return nil, fmt.Errorf("update aggregate: %w", err)
		}
		return agg, nil
	})
	if err != nil {
		return domain.MovieAggregate{}, err
	}
	return result.(domain.MovieAggregate), nil
}

// RecomputeAggregates rebuilds every movie's sum and count from the opinions
// ledger. This is the repair pass for aggregates written before the
// transactional path existed, or damaged by operator error; the ledger is the
// source of truth.
func (s *Store) RecomputeAggregates(ctx context.Context) (int, error) {
	cursor, err := s.opinions.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$movie_id"},
			{Key: "rating_sum", Value: bson.D{{Key: "$sum", Value: "$rating"}}},
			{Key: "ratings_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	})
	if err != nil {
		return 0, fmt.Errorf("aggregate opinions ledger: %w", err)
	}
	defer cursor.Close(ctx)

	count := 0
	for cursor.Next(ctx) {
		var row struct {
			MovieID      string `bson:"_id"`
			RatingSum    int64  `bson:"rating_sum"`
			RatingsCount int64  `bson:"ratings_count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return count, err
		}

		agg := domain.MovieAggregate{
			MovieID:      row.MovieID,
			RatingSum:    row.RatingSum,
			RatingsCount: row.RatingsCount,
		}
		opts := options.Replace().SetUpsert(true)
		if _, err := s.aggregates.ReplaceOne(ctx, bson.M{"movie_id": row.MovieID}, agg, opts); err != nil {
			return count, fmt.Errorf("replace aggregate for %s: %w", row.MovieID, err)
		}
		count++
	}
	return count, cursor.Err()
}
