package controllers

import (
	"net/http"
	"sync"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminController serves the patient management panel.
type AdminController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

var (
	adminControllerInstance *AdminController
	onceAdminController     sync.Once
)

func NewAdminController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *AdminController {
	onceAdminController.Do(func() {
		instance := &AdminController{
			Log:            logger,
			PatientUsecase: patientUsecase,
		}
		adminControllerInstance = instance
	})
	return adminControllerInstance
}

func (ctrl *AdminController) ListPatients(w http.ResponseWriter, r *http.Request) {
	filter := utils.BuildPatientFilter(r, true)

	result, err := ctrl.PatientUsecase.ListPatients(r.Context(), filter)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, result)
}

func (ctrl *AdminController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	// Bind and validate body
	request := new(requests.PatientRequest)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	// Send it to be processed by usecase
	patient, err := ctrl.PatientUsecase.AddPatient(r.Context(), request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, patient)
}

func (ctrl *AdminController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		writeError(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	// Bind and validate body
	request := new(requests.PatientRequest)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	patient, err := ctrl.PatientUsecase.UpdatePatient(r.Context(), patientID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, patient)
}

func (ctrl *AdminController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		writeError(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	if err := ctrl.PatientUsecase.DeletePatient(r.Context(), patientID); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, nil)
}

func (ctrl *AdminController) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.PatientUsecase.ClearCache(r.Context()); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearCacheSuccessMessage, nil)
}
