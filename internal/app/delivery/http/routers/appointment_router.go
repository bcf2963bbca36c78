package routers

import (
	"medibridge-service/internal/app/delivery/http/controllers"
	"medibridge-service/internal/app/delivery/http/middlewares"
	"medibridge-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RolePatient)).
		Post("/book", appointmentController.Book)
	router.With(middlewares.RequireRoles(constvars.RolePatient, constvars.RoleDoctor)).
		Get("/", appointmentController.List)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).
		Put("/{appointmentID}/status", appointmentController.UpdateStatus)
	router.With(middlewares.RequireRoles(constvars.RolePatient, constvars.RoleDoctor)).
		Put("/{appointmentID}/cancel", appointmentController.Cancel)
}
