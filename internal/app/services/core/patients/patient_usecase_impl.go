package patients

import (
	"context"
	"sync/atomic"
	"time"

	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/normalization"
	"patient-records-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrentFetches = 8

type patientUsecase struct {
	RecordClient   contracts.PatientRecordClient
	RemedyService  contracts.RemedyService
	EventPublisher contracts.EventPublisher
	State          *PatientState
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewPatientUsecase(
	recordClient contracts.PatientRecordClient,
	remedyService contracts.RemedyService,
	eventPublisher contracts.EventPublisher,
	state *PatientState,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		RecordClient:   recordClient,
		RemedyService:  remedyService,
		EventPublisher: eventPublisher,
		State:          state,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

// RefreshPatients reloads the listing and every detail record. A failed
// detail fetch degrades that patient to listing data only; a failed listing
// empties the state and is returned.
func (uc *patientUsecase) RefreshPatients(ctx context.Context) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	generation := uc.State.BeginRefresh()
	uc.Log.Info("patientUsecase.RefreshPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)

	basics, err := uc.RecordClient.GetPatients(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.RefreshPatients error fetching listing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.State.FinishRefresh(generation, nil, err)
		return nil, err
	}

	patients := make([]models.Patient, len(basics))
	var failed int32

	group := new(errgroup.Group)
	group.SetLimit(uc.maxConcurrentFetches())
	for i := range basics {
		i := i
		group.Go(func() error {
			basic := basics[i]
			detail, err := uc.RecordClient.GetPatientRecord(ctx, basic.ID.String())
			if err != nil {
				atomic.AddInt32(&failed, 1)
				uc.Log.Warn("patientUsecase.RefreshPatients detail fetch failed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingPatientIDKey, basic.ID.String()),
					zap.Error(err),
				)
				detail = nil
			}
			patients[i] = normalization.NormalizePatient(basic, detail)
			return nil
		})
	}
	group.Wait()

	if !uc.State.FinishRefresh(generation, patients, nil) {
		uc.Log.Info("patientUsecase.RefreshPatients discarded superseded result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return uc.State.Snapshot().Patients, nil
	}

	uc.Log.Info("patientUsecase.RefreshPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
		zap.Int32(constvars.LoggingFailedFetchesKey, failed),
	)
	return patients, nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context, filter requests.PatientFilter) (*responses.PatientList, error) {
	patients, err := uc.currentPatients(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterPatients(patients, filter)
	return &responses.PatientList{
		Patients: filtered,
		Total:    len(filtered),
	}, nil
}

func (uc *patientUsecase) Stats(ctx context.Context) (*models.PatientStats, error) {
	patients, err := uc.currentPatients(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(patients, uc.now())
	return &stats, nil
}

func (uc *patientUsecase) Diseases(ctx context.Context) ([]string, error) {
	patients, err := uc.currentPatients(ctx)
	if err != nil {
		return nil, err
	}
	return UniqueDiseases(patients), nil
}

func (uc *patientUsecase) FindPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	if _, err := uc.currentPatients(ctx); err != nil {
		return nil, err
	}

	patient, ok := uc.State.Find(patientID)
	if !ok {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	return &patient, nil
}

func (uc *patientUsecase) AddPatient(ctx context.Context, request *requests.PatientRequest) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.AddPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	data, err := uc.RecordClient.CreatePatient(ctx, request.ToUpstreamPayload())
	if err != nil {
		return nil, err
	}

	patient := mergePatient(patientFromRequest("", request), data)
	if patient.ID == "" {
		// Without an id the new entry cannot be addressed, so reload the list
		// instead of appending a placeholder.
		uc.Log.Warn("patientUsecase.AddPatient upstream returned no id, refreshing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		if _, err := uc.RefreshPatients(ctx); err != nil {
			return nil, err
		}
	} else {
		uc.State.Add(patient)
		uc.publish(ctx, constvars.PatientEventCreated, patient.ID)
	}

	uc.Log.Info("patientUsecase.AddPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return &patient, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.PatientRequest) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	data, err := uc.RecordClient.UpdatePatient(ctx, patientID, request.ToUpstreamPayload())
	if err != nil {
		return nil, err
	}

	patient := mergePatient(patientFromRequest(patientID, request), data)
	patient.ID = patientID
	if !uc.State.Replace(patient) {
		uc.State.Add(patient)
	}
	uc.publish(ctx, constvars.PatientEventUpdated, patientID)

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if err := uc.RecordClient.DeletePatient(ctx, patientID); err != nil {
		return err
	}

	uc.State.Remove(patientID)
	uc.publish(ctx, constvars.PatientEventDeleted, patientID)

	uc.Log.Info("patientUsecase.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func (uc *patientUsecase) SelectPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	if _, err := uc.currentPatients(ctx); err != nil {
		return nil, err
	}

	patient, ok := uc.State.Select(patientID)
	if !ok {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	return &patient, nil
}

func (uc *patientUsecase) SelectedPatient(ctx context.Context) (*models.Patient, error) {
	selected := uc.State.Snapshot().Selected
	if selected == nil {
		return nil, exceptions.ErrNoPatientSelected(nil)
	}
	return selected, nil
}

// GetProfile selects the patient and attaches the remedies for its disease.
func (uc *patientUsecase) GetProfile(ctx context.Context, patientID string) (*responses.PatientProfile, error) {
	patient, err := uc.SelectPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	profile := &responses.PatientProfile{Patient: *patient}
	if remedies, ok := uc.RemedyService.FindByDisease(patient.Disease); ok {
		profile.Remedies = remedies
	} else {
		profile.RemediesNotice = constvars.RemediesNotAvailableNotice
	}
	return profile, nil
}

func (uc *patientUsecase) ClearCache(ctx context.Context) error {
	return utils.LogOperation(uc.Log, "patientUsecase.ClearCache", utils.GetRequestID(ctx), func() error {
		return uc.RecordClient.ClearCache(ctx)
	})
}

// InvalidatePatient drops the cached upstream views of one patient and marks
// the list stale. Peer instances call it when another instance mutated data.
func (uc *patientUsecase) InvalidatePatient(ctx context.Context, patientID string) error {
	uc.Log.Info("patientUsecase.InvalidatePatient called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	uc.State.Invalidate()
	return uc.RecordClient.InvalidatePatient(ctx, patientID)
}

// currentPatients loads the list on first use, and again after a failed load.
func (uc *patientUsecase) currentPatients(ctx context.Context) ([]models.Patient, error) {
	snapshot := uc.State.Snapshot()
	if snapshot.Loaded {
		return snapshot.Patients, nil
	}
	return uc.RefreshPatients(ctx)
}

func (uc *patientUsecase) publish(ctx context.Context, eventType, patientID string) {
	err := uc.EventPublisher.Publish(ctx, models.PatientEvent{
		Type:      eventType,
		PatientID: patientID,
	})
	if err != nil {
		uc.Log.Warn("patientUsecase failed to publish patient event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}

func (uc *patientUsecase) maxConcurrentFetches() int {
	if uc.InternalConfig != nil && uc.InternalConfig.Upstream.MaxConcurrentFetches > 0 {
		return uc.InternalConfig.Upstream.MaxConcurrentFetches
	}
	return defaultMaxConcurrentFetches
}
