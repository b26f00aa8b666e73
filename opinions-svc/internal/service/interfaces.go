package service

import (
	"context"

	"movierama/opinions-svc/internal/domain"
	"movierama/opinions-svc/internal/storage"
)

type OpinionStore interface {
	HasOpinion(ctx context.Context, messageID string) (bool, error)
	RecordOpinion(ctx context.Context, opinion domain.Opinion) (domain.MovieAggregate, error)
}

type AggregateCache interface {
	RecordRating(ctx context.Context, agg domain.MovieAggregate) error
}

var _ OpinionStore = (*storage.Store)(nil)
var _ AggregateCache = (*storage.AggregateCache)(nil)
