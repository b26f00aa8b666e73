// Package broker wraps RabbitMQ for the rating event pipeline.
//
// One durable direct exchange carries rating events to one durable queue.
// Messages are published with the persistent flag and consumed with manual
// acknowledgment, so a rating survives a broker restart and is redelivered
// after a missed ack. Payloads that can never be processed are dead-lettered
// to a separate queue instead of being retried forever.
package broker

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ratings_exchange"
	RoutingKey   = "rating.created"
	QueueName    = "opinions_queue"

	DLXName = "ratings_dlx"
	DLQName = "opinions_dlq"
)

// DeclareTopology declares the exchange, queue and dead-letter pair. It is
// idempotent and shared by the publisher and consumer sides so both always
// agree on the same durable layout.
func DeclareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dead-letter exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(DLQName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dead-letter queue: %w", err)
	}

	// Dead-lettered messages keep their original routing key.
	if err := ch.QueueBind(DLQName, RoutingKey, DLXName, false, nil); err != nil {
		return fmt.Errorf("bind dead-letter queue: %w", err)
	}

	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange": DLXName,
	}); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(QueueName, RoutingKey, ExchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}
