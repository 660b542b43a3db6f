package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/empowerhub/empowerhub-api/internal/config"
	"github.com/empowerhub/empowerhub-api/internal/domain/scoring"
	"github.com/empowerhub/empowerhub-api/internal/generation"
	"github.com/empowerhub/empowerhub-api/internal/platform/gemini"
	"github.com/empowerhub/empowerhub-api/internal/platform/knowledge"
	"github.com/empowerhub/empowerhub-api/internal/platform/postgres"
	"github.com/empowerhub/empowerhub-api/internal/service"
	"github.com/empowerhub/empowerhub-api/internal/service/auth"
	"github.com/empowerhub/empowerhub-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore       store.UserStore
	learningStore   store.LearningStore
	wellnessStore   store.WellnessStore
	assessmentStore store.AssessmentStore
	mealPlanStore   store.MealPlanStore
	wasteStore      store.WasteStore
	qaStore         store.QAStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	scorer           scoring.Service
	userService      service.UserService
	learningService  service.LearningService
	healthService    service.HealthService
	nutritionService service.NutritionService
	dashboardService service.DashboardService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.learningStore = postgres.NewPostgresLearningStore(db, logger)
	app.wellnessStore = postgres.NewPostgresWellnessStore(db, logger)
	app.assessmentStore = postgres.NewPostgresAssessmentStore(db, logger)
	app.mealPlanStore = postgres.NewPostgresMealPlanStore(db, logger)
	app.wasteStore = postgres.NewPostgresWasteStore(db, logger)
	app.qaStore = postgres.NewPostgresQAStore(db, logger)

	app.scorer = scoring.NewDefaultService()

	// The Gemini generator is optional. Without an API key the learning
	// service serves template-generated paths instead.
	var generator generation.Generator
	if cfg.LLM.GeminiAPIKey != "" {
		geminiGen, err := gemini.NewGenerator(
			ctx,
			logger.With("component", "llm_generator"),
			cfg.LLM,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		generator = geminiGen
		logger.Info("LLM generator initialized successfully")
	} else {
		logger.Info("LLM generator disabled, using template learning paths")
	}

	wikipedia := knowledge.NewWikipediaClient(nil, logger)
	mealdb := knowledge.NewMealDBClient(nil, logger)
	advice := knowledge.NewAdviceClient(nil, logger)

	app.userService, err = service.NewUserService(
		app.userStore,
		app.passwordVerifier,
		app.jwtService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.learningService, err = service.NewLearningService(
		app.learningStore,
		app.qaStore,
		generator,
		wikipedia,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create learning service: %w", err)
	}

	app.healthService, err = service.NewHealthService(
		app.wellnessStore,
		app.assessmentStore,
		app.qaStore,
		app.scorer,
		advice,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health service: %w", err)
	}

	app.nutritionService, err = service.NewNutritionService(
		app.mealPlanStore,
		app.wasteStore,
		app.qaStore,
		app.scorer,
		mealdb,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition service: %w", err)
	}

	app.dashboardService, err = service.NewDashboardService(
		app.userStore,
		app.learningStore,
		app.wellnessStore,
		app.mealPlanStore,
		app.wasteStore,
		app.qaStore,
		app.scorer,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
