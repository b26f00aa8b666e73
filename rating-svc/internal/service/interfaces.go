package service

import (
	"context"

	"movierama/rating-svc/internal/domain"
	"movierama/rating-svc/internal/storage"
)

type RatingServiceInterface interface {
	Submit(ctx context.Context, movieID string, rating int, comment *string) (domain.RatingEvent, error)
}

type EventPublisher interface {
	Connected() bool
	Publish(ctx context.Context, event domain.RatingEvent) error
}

var _ RatingServiceInterface = (*RatingService)(nil)
var _ EventPublisher = (*storage.EventPublisher)(nil)
