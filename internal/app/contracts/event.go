package contracts

import (
	"context"

	"patient-records-service/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event models.PatientEvent) error
}
