package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"movierama/broker"
	"movierama/opinions-svc/internal/domain"
	"movierama/opinions-svc/internal/storage"
)

// Outcome classifies one processed delivery and decides its acknowledgment.
type Outcome int

const (
	// OutcomeProcessed: opinion appended and aggregate updated; ack.
	OutcomeProcessed Outcome = iota
	// OutcomeDuplicate: event id already processed; ack without writes.
	OutcomeDuplicate
	// OutcomeMalformed: payload can never be processed; discard to the DLQ.
	OutcomeMalformed
	// OutcomeFailed: transient store failure; requeue for redelivery.
	OutcomeFailed
)

type Consumer struct {
	Opinions OpinionStore
	Cache    AggregateCache
}

func NewConsumer(opinions OpinionStore, cache AggregateCache) *Consumer {
	return &Consumer{Opinions: opinions, Cache: cache}
}

// Start drains deliveries until ctx is cancelled or the channel closes. The
// in-flight message is always acked or nacked before returning, so a graceful
// shutdown never leaves a delivery dangling.
func (c *Consumer) Start(ctx context.Context, deliveries <-chan broker.Delivery) {
	log.Println("Waiting for rating events...")
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			c.settle(d, c.HandleMessage(ctx, d.Body()))
		}
	}
}

func (c *Consumer) settle(d broker.Delivery, outcome Outcome) {
	var err error
	switch outcome {
	case OutcomeProcessed, OutcomeDuplicate:
		err = d.Ack()
	case OutcomeMalformed:
		err = d.Discard()
	case OutcomeFailed:
		err = d.Requeue()
	}
	if err != nil {
		log.Printf("Error settling delivery: %v", err)
	}
}

// HandleMessage runs the per-message state machine:
// parse -> idempotency check -> append opinion + update aggregate.
// Redelivering an already-processed event id is a successful no-op.
func (c *Consumer) HandleMessage(ctx context.Context, body []byte) Outcome {
	var event domain.RatingEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Printf("Discarding malformed payload: %v", err)
		return OutcomeMalformed
	}
	if event.ID == "" || event.MovieID == "" || event.Rating < 1 || event.Rating > 5 {
		log.Printf("Discarding event with invalid contents: id=%q movie_id=%q rating=%d",
			event.ID, event.MovieID, event.Rating)
		return OutcomeMalformed
	}

	exists, err := c.Opinions.HasOpinion(ctx, event.ID)
	if err != nil {
		log.Printf("Error checking for duplicate %s: %v", event.ID, err)
		return OutcomeFailed
	}
	if exists {
		log.Printf("Duplicate message %s, skipping.", event.ID)
		return OutcomeDuplicate
	}

	opinion := domain.Opinion{
		MovieID:    event.MovieID,
		Rating:     event.Rating,
		Comment:    event.Comment,
		ReceivedAt: time.Now().UTC(),
		Source:     event.Origin,
		MessageID:  event.ID,
	}

	agg, err := c.Opinions.RecordOpinion(ctx, opinion)
	if errors.Is(err, storage.ErrDuplicateOpinion) {
		// Lost the race against a concurrent redelivery; same no-op as above.
		log.Printf("Duplicate message %s, skipping.", event.ID)
		return OutcomeDuplicate
	}
	if err != nil {
		log.Printf("Error recording opinion %s: %v", event.ID, err)
		return OutcomeFailed
	}

	if c.Cache != nil {
		if err := c.Cache.RecordRating(ctx, agg); err != nil {
			// Cache refresh is best-effort; the durable writes succeeded.
			log.Printf("Warning: failed to refresh aggregate cache for %s: %v", event.MovieID, err)
		}
	}

	log.Printf("Processed rating for movie %s", event.MovieID)
	return OutcomeProcessed
}
