package routers

import (
	"adhd-intake-service/internal/app/delivery/http/controllers"
	"adhd-intake-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachFormRoutes(router chi.Router, middlewares *middlewares.Middlewares, formController *controllers.FormController) {
	router.Get("/", formController.GetForm)
}

func attachScoreRoutes(router chi.Router, middlewares *middlewares.Middlewares, formController *controllers.FormController) {
	router.Post("/asrs", formController.ScoreASRS)
}
