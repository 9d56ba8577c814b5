package events

import (
	"context"

	"github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher is the part of *amqp091.Channel the publisher needs.
type AMQPPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// AMQPConsumer is the part of *amqp091.Channel the consumer needs.
type AMQPConsumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
}

type PatientCacheInvalidator interface {
	InvalidatePatient(ctx context.Context, patientID string) error
}
