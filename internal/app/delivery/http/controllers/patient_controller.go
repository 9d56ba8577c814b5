package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	oncePatientController.Do(func() {
		instance := &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
		}
		patientControllerInstance = instance
	})
	return patientControllerInstance
}

func (ctrl *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	filter := utils.BuildPatientFilter(r, false)

	result, err := ctrl.PatientUsecase.ListPatients(r.Context(), filter)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, result)
}

func (ctrl *PatientController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := ctrl.PatientUsecase.Stats(r.Context())
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientStatsSuccessMessage, stats)
}

func (ctrl *PatientController) GetDiseases(w http.ResponseWriter, r *http.Request) {
	diseases, err := ctrl.PatientUsecase.Diseases(r.Context())
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiseasesSuccessMessage, diseases)
}

func (ctrl *PatientController) RefreshPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := ctrl.PatientUsecase.RefreshPatients(r.Context())
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshPatientsSuccessMessage, patients)
}

func (ctrl *PatientController) GetSelectedPatient(w http.ResponseWriter, r *http.Request) {
	patient, err := ctrl.PatientUsecase.SelectedPatient(r.Context())
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSelectedSuccessMessage, patient)
}

func (ctrl *PatientController) GetProfile(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		ctrl.writeError(w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	profile, err := ctrl.PatientUsecase.GetProfile(r.Context(), patientID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, profile)
}

func (ctrl *PatientController) writeError(w http.ResponseWriter, err error) {
	writeError(ctrl.Log, w, err)
}

// writeError maps request deadline errors before building the envelope.
func writeError(log *zap.Logger, w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if errors.Is(err, context.DeadlineExceeded) && !errors.As(err, &customErr) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(log, w, err)
}
