package chat

import (
	"context"

	"patient-records-service/internal/app/models"
)

// PatientFinder resolves the patient a chat session talks about.
type PatientFinder interface {
	FindPatient(ctx context.Context, patientID string) (*models.Patient, error)
}
