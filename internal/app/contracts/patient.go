package contracts

import (
	"context"

	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/dto/responses"
)

// PatientRecordClient binds the upstream patient endpoints. Detail and
// mutation payloads are returned decoded but unshaped.
type PatientRecordClient interface {
	GetPatients(ctx context.Context) ([]responses.PatientBasic, error)
	GetPatientRecord(ctx context.Context, patientID string) (interface{}, error)
	GetPatient(ctx context.Context, patientID string) (interface{}, error)
	CreatePatient(ctx context.Context, payload *requests.UpstreamPatientPayload) (interface{}, error)
	UpdatePatient(ctx context.Context, patientID string, payload *requests.UpstreamPatientPayload) (interface{}, error)
	DeletePatient(ctx context.Context, patientID string) error
	InvalidatePatient(ctx context.Context, patientID string) error
	ClearCache(ctx context.Context) error
}

type PatientUsecase interface {
	RefreshPatients(ctx context.Context) ([]models.Patient, error)
	ListPatients(ctx context.Context, filter requests.PatientFilter) (*responses.PatientList, error)
	Stats(ctx context.Context) (*models.PatientStats, error)
	Diseases(ctx context.Context) ([]string, error)
	FindPatient(ctx context.Context, patientID string) (*models.Patient, error)
	AddPatient(ctx context.Context, request *requests.PatientRequest) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.PatientRequest) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	SelectPatient(ctx context.Context, patientID string) (*models.Patient, error)
	SelectedPatient(ctx context.Context) (*models.Patient, error)
	GetProfile(ctx context.Context, patientID string) (*responses.PatientProfile, error)
	ClearCache(ctx context.Context) error
	InvalidatePatient(ctx context.Context, patientID string) error
}
