package contracts

import (
	"context"
	"time"

	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/dto/responses"
)

type ChatService interface {
	StartSession(ctx context.Context, patientID string) (*models.ChatSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error)
	SendMessage(ctx context.Context, sessionID, text string) (*responses.ChatExchange, error)
	EndSession(ctx context.Context, sessionID string) error
	StartCleanup(ctx context.Context, interval time.Duration)
}

type RemedyService interface {
	FindByDisease(disease string) (*models.Remedies, bool)
}
