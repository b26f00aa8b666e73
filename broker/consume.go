package broker

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Delivery is one message handed to the consumer. Every delivery must end in
// exactly one of Ack, Requeue or Discard.
type Delivery interface {
	Body() []byte
	// Ack removes the message from the queue.
	Ack() error
	// Requeue returns the message to the queue for redelivery.
	Requeue() error
	// Discard rejects the message without requeueing; the queue's
	// dead-letter exchange routes it to the DLQ.
	Discard() error
}

type amqpDelivery struct {
	d amqp.Delivery
}

func (a amqpDelivery) Body() []byte   { return a.d.Body }
func (a amqpDelivery) Ack() error     { return a.d.Ack(false) }
func (a amqpDelivery) Requeue() error { return a.d.Nack(false, true) }
func (a amqpDelivery) Discard() error { return a.d.Nack(false, false) }

// Consume starts a manual-ack subscription on the opinions queue. prefetch
// bounds the unacknowledged deliveries in flight. The returned channel closes
// when the AMQP channel does.
func Consume(ch *amqp.Channel, prefetch int) (<-chan Delivery, error) {
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, fmt.Errorf("set qos: %w", err)
	}

	msgs, err := ch.Consume(
		QueueName,
		"",    // consumer tag, auto-generated
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("consume: %w", err)
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		for d := range msgs {
			out <- amqpDelivery{d: d}
		}
	}()
	return out, nil
}
