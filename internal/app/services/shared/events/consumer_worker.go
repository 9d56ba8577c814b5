package events

import (
	"context"
	"sync"

	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer drops local cache entries for patients changed by other instances.
type Consumer struct {
	log         *zap.Logger
	source      AMQPConsumer
	queue       string
	instanceID  string
	invalidator PatientCacheInvalidator
	stop        chan struct{}
	stopOnce    sync.Once
	done        chan struct{}
}

func NewConsumer(log *zap.Logger, source AMQPConsumer, queue, instanceID string, invalidator PatientCacheInvalidator) *Consumer {
	return &Consumer{
		log:         log,
		source:      source,
		queue:       queue,
		instanceID:  instanceID,
		invalidator: invalidator,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start begins consuming in the background. The returned stop function waits
// for the loop to exit.
func (c *Consumer) Start(ctx context.Context) (stop func(), err error) {
	deliveries, err := c.source.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQConsumeQueue(err, c.queue)
	}

	c.log.Info("events.Consumer started",
		zap.String(constvars.LoggingQueueKey, c.queue),
	)

	go func() {
		defer close(c.done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					c.log.Warn("events.Consumer delivery channel closed",
						zap.String(constvars.LoggingQueueKey, c.queue),
					)
					return
				}
				c.handle(ctx, delivery)
			}
		}
	}()

	return func() {
		c.stopOnce.Do(func() { close(c.stop) })
		<-c.done
	}, nil
}

func (c *Consumer) handle(ctx context.Context, delivery amqp091.Delivery) {
	var event models.PatientEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		c.log.Error("events.Consumer dropping unreadable event",
			zap.String(constvars.LoggingQueueKey, c.queue),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	if event.Origin != "" && event.Origin == c.instanceID {
		delivery.Ack(false)
		return
	}

	if err := c.invalidator.InvalidatePatient(ctx, event.PatientID); err != nil {
		c.log.Warn("events.Consumer cache invalidation failed",
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.String(constvars.LoggingPatientIDKey, event.PatientID),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	c.log.Info("events.Consumer invalidated patient cache",
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingPatientIDKey, event.PatientID),
	)
	delivery.Ack(false)
}
