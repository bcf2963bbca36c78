package routers

import (
	"medibridge-service/internal/app/delivery/http/controllers"
	"medibridge-service/internal/app/delivery/http/middlewares"
	"medibridge-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).
		Post("/", prescriptionController.Create)
	router.With(middlewares.RequireRoles(constvars.RolePatient, constvars.RoleDoctor)).
		Get("/", prescriptionController.List)
	router.With(middlewares.RequireRoles(constvars.RolePatient, constvars.RoleDoctor)).
		Get("/{prescriptionID}", prescriptionController.GetByID)
}
