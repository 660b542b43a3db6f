package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/empowerhub/empowerhub-api/internal/api"
	apiMiddleware "github.com/empowerhub/empowerhub-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService)
	learningHandler := api.NewLearningHandler(app.learningService)
	healthHandler := api.NewHealthHandler(app.healthService)
	nutritionHandler := api.NewNutritionHandler(app.nutritionService)
	dashboardHandler := api.NewDashboardHandler(app.dashboardService)
	statusHandler := api.NewStatusHandler()

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		r.Get("/status", statusHandler.Status)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Education endpoints
			r.Post("/learning-paths", learningHandler.GeneratePath)
			r.Post("/questions", learningHandler.AskQuestion)

			// Health endpoints
			r.Post("/mental-health", healthHandler.AnalyzeMood)
			r.Post("/wellness", healthHandler.TrackWellness)
			r.Post("/health-questions", healthHandler.AnswerHealthQuestion)

			// Nutrition endpoints
			r.Post("/meal-plans", nutritionHandler.GenerateMealPlan)
			r.Post("/waste-reductions", nutritionHandler.ReduceWaste)
			r.Post("/nutrition-advice", nutritionHandler.AnswerNutritionQuestion)

			// Aggregated views
			r.Get("/dashboard", dashboardHandler.Dashboard)
			r.Get("/history/{category}", dashboardHandler.History)
		})
	})

	r.Get("/healthz", statusHandler.Healthz)

	return r
}
