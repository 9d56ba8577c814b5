package routers

import (
	"patient-records-service/internal/app/delivery/http/controllers"
	"patient-records-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.RequireAdminAPIKey).Put("/token", authController.SetToken)
	router.With(middlewares.RequireAdminAPIKey).Delete("/token", authController.ClearToken)
}
