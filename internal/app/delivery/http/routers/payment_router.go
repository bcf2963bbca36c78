package routers

import (
	"medibridge-service/internal/app/delivery/http/controllers"
	"medibridge-service/internal/app/delivery/http/middlewares"
	"medibridge-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	paymentController *controllers.PaymentController,
	webhookController *controllers.WebhookController,
) {
	// The gateway calls the webhook directly, so it stays outside Authenticate.
	router.Post("/webhook", webhookController.HandlePaymentWebhook)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.With(middlewares.RequireRoles(constvars.RolePatient)).
			Post("/create-order", paymentController.CreateOrder)
		r.With(middlewares.RequireRoles(constvars.RolePatient)).
			Post("/verify", paymentController.Verify)
		r.Get("/history", paymentController.History)
		r.With(middlewares.RequireRoles(constvars.RolePatient)).
			Post("/{paymentID}/refund", paymentController.RecordRefund)
	})
}
