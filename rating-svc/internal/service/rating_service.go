package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"movierama/broker"
	"movierama/rating-svc/internal/domain"

	"github.com/google/uuid"
)

var ErrMessagingUnavailable = errors.New("messaging service unavailable")

const eventOrigin = "rating-service"

type RatingService struct {
	publisher EventPublisher
}

func NewRatingService(publisher EventPublisher) *RatingService {
	return &RatingService{publisher: publisher}
}

// Submit stamps a validated rating with a fresh event id and publishes it.
// There is no local buffering: while the broker is unreachable every
// submission fails with ErrMessagingUnavailable and no event is created.
func (s *RatingService) Submit(ctx context.Context, movieID string, rating int, comment *string) (domain.RatingEvent, error) {
	if !s.publisher.Connected() {
		return domain.RatingEvent{}, ErrMessagingUnavailable
	}

	event := domain.RatingEvent{
		ID:        uuid.NewString(),
		MovieID:   movieID,
		Rating:    rating,
		Comment:   comment,
		Timestamp: time.Now().UTC(),
		Origin:    eventOrigin,
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		// The broker can drop between the Connected check and the publish.
		if errors.Is(err, broker.ErrNotConnected) {
			return domain.RatingEvent{}, ErrMessagingUnavailable
		}
		return domain.RatingEvent{}, fmt.Errorf("failed to publish rating event: %w", err)
	}

	log.Printf("Published rating event: %s", event.ID)
	return event, nil
}
