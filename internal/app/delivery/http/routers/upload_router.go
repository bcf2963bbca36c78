package routers

import (
	"medibridge-service/internal/app/delivery/http/controllers"
	"medibridge-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUploadRoutes(router chi.Router, middlewares *middlewares.Middlewares, uploadController *controllers.UploadController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", uploadController.Upload)
}
