package routers

import (
	"adhd-intake-service/internal/app/delivery/http/controllers"
	"adhd-intake-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	writeRateLimitRequests  = 30
	writeRateLimitPer       = time.Minute
	writeRateLimitBlockTime = 5 * time.Minute
)

func attachIntakeSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, intakeSessionController *controllers.IntakeSessionController) {
	writeLimiter := middlewares.CreateRateLimiter(writeRateLimitRequests, writeRateLimitPer, writeRateLimitBlockTime)

	router.With(writeLimiter).Post("/", intakeSessionController.StartSession)

	router.Route("/{session_id}", func(r chi.Router) {
		r.Use(middlewares.RequireSessionToken)
		r.Get("/", intakeSessionController.GetSession)
		r.Put("/draft", intakeSessionController.SaveDraft)
		r.Put("/suicidality", intakeSessionController.SetSuicidality)
		r.With(writeLimiter).Post("/submit", intakeSessionController.Submit)
	})
}
