package events

import (
	"context"
	"sync"
	"time"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitPublisher struct {
	mu         sync.Mutex
	Channel    AMQPPublisher
	Exchange   string
	InstanceID string
	Log        *zap.Logger
}

func NewRabbitPublisher(channel AMQPPublisher, exchange, instanceID string, logger *zap.Logger) contracts.EventPublisher {
	return &rabbitPublisher{
		Channel:    channel,
		Exchange:   exchange,
		InstanceID: instanceID,
		Log:        logger,
	}
}

func (p *rabbitPublisher) Publish(ctx context.Context, event models.PatientEvent) error {
	requestID := utils.GetRequestID(ctx)
	if event.Origin == "" {
		event.Origin = p.InstanceID
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		MessageId:    requestID,
	}

	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, p.Exchange, "", false, false, message)
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("rabbitPublisher.Publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.String(constvars.LoggingPatientIDKey, event.PatientID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Exchange)
	}

	p.Log.Info("rabbitPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingPatientIDKey, event.PatientID),
	)
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when RabbitMQ is disabled.
func NewNoopPublisher() contracts.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event models.PatientEvent) error {
	return nil
}
