package routers

import (
	"patient-records-service/internal/app/delivery/http/controllers"
	"patient-records-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *controllers.AdminController) {
	router.Use(middlewares.RequireAdminAPIKey)

	router.Get("/patients", adminController.ListPatients)
	router.Post("/patients", adminController.CreatePatient)
	router.Put("/patients/{patient_id}", adminController.UpdatePatient)
	router.Delete("/patients/{patient_id}", adminController.DeletePatient)
	router.Delete("/cache", adminController.ClearCache)
}
