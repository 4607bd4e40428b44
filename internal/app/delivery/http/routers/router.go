package routers

import (
	"adhd-intake-service/internal/app/config"
	"adhd-intake-service/internal/app/delivery/http/controllers"
	"adhd-intake-service/internal/app/delivery/http/middlewares"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/metrics"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	formController *controllers.FormController,
	intakeSessionController *controllers.IntakeSessionController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.CorsAllowedOrigins),
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)
	router.Use(middlewares.LimitBody)

	router.Handle("/metrics", metrics.Handler())

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))
	versionPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.Version, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceForm, func(r chi.Router) {
				attachFormRoutes(r, middlewares, formController)
			})

			r.Route("/"+constvars.ResourceScore, func(r chi.Router) {
				attachScoreRoutes(r, middlewares, formController)
			})

			r.Route("/"+constvars.ResourceSessions, func(r chi.Router) {
				attachIntakeSessionRoutes(r, middlewares, intakeSessionController)
			})
		})
	})
}

func allowedOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
