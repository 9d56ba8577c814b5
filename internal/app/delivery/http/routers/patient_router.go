package routers

import (
	"patient-records-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.ListPatients)
	router.Get("/stats", patientController.GetStats)
	router.Get("/diseases", patientController.GetDiseases)
	router.Get("/selected", patientController.GetSelectedPatient)
	router.Post("/refresh", patientController.RefreshPatients)
	router.Get("/{patient_id}/profile", patientController.GetProfile)
}
