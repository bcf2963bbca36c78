package routers

import (
	"time"

	"medibridge-service/internal/app/config"
	"medibridge-service/internal/app/delivery/http/controllers"
	"medibridge-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	appointmentController *controllers.AppointmentController,
	orderController *controllers.OrderController,
	prescriptionController *controllers.PrescriptionController,
	paymentController *controllers.PaymentController,
	webhookController *controllers.WebhookController,
	uploadController *controllers.UploadController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)

	router.Handle("/metrics", promhttp.Handler())

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})
		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})
		r.Route("/orders", func(r chi.Router) {
			attachOrderRoutes(r, middlewares, orderController)
		})
		r.Route("/prescriptions", func(r chi.Router) {
			attachPrescriptionRoutes(r, middlewares, prescriptionController)
		})
		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, middlewares, paymentController, webhookController)
		})
		r.Route("/uploads", func(r chi.Router) {
			attachUploadRoutes(r, middlewares, uploadController)
		})
	})
}
