package storage

import (
	"context"
	"encoding/json"
	"sync"

	"movierama/broker"
	"movierama/rating-svc/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventPublisher publishes rating events through the shared broker connector.
// The connector owns reconnects; the publisher only uses whatever channel is
// currently live.
type EventPublisher struct {
	connector *broker.Connector

	// amqp channels are not safe for concurrent publishes.
	mu sync.Mutex
}

func NewEventPublisher(connector *broker.Connector) *EventPublisher {
	return &EventPublisher{connector: connector}
}

func (p *EventPublisher) Connected() bool {
	return p.connector.State() == broker.StateConnected
}

// Publish sends the event to the ratings exchange with the persistent flag
// set, so the broker writes it to disk before delivery.
func (p *EventPublisher) Publish(ctx context.Context, event domain.RatingEvent) error {
	ch, ok := p.connector.Channel()
	if !ok {
		// The connector can drop between the caller's Connected check and
		// here; the sentinel lets callers treat both the same way.
		return broker.ErrNotConnected
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return ch.PublishWithContext(ctx,
		broker.ExchangeName,
		broker.RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Timestamp:    event.Timestamp,
			Body:         payload,
		},
	)
}
