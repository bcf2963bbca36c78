package routers

import (
	"medibridge-service/internal/app/delivery/http/controllers"
	"medibridge-service/internal/app/delivery/http/middlewares"
	"medibridge-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, middlewares *middlewares.Middlewares, orderController *controllers.OrderController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RolePatient)).
		Post("/", orderController.Create)
	router.With(middlewares.RequireRoles(constvars.RolePatient, constvars.RoleShop)).
		Get("/", orderController.List)
	router.With(middlewares.RequireRoles(constvars.RoleShop)).
		Put("/{orderID}/status", orderController.UpdateStatus)
	router.With(middlewares.RequireRoles(constvars.RolePatient, constvars.RoleShop)).
		Put("/{orderID}/cancel", orderController.Cancel)
}
