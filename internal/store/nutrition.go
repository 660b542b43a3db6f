package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// MealPlanStore defines the interface for meal plan persistence.
type MealPlanStore interface {
	// Create saves a new meal plan.
	// Returns validation errors from the domain entity if data is invalid.
	Create(ctx context.Context, plan *domain.MealPlan) error

	// CountByUser returns the number of meal plans for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// AverageScoreByUser returns the mean nutrition score across a user's
	// meal plans, or 0 when the user has none.
	AverageScoreByUser(ctx context.Context, userID uuid.UUID) (float64, error)

	// RecentByUser returns up to limit meal plans for a user, ordered by
	// creation time descending.
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.MealPlan, error)
}

// WasteStore defines the interface for waste reduction persistence.
type WasteStore interface {
	// Create saves a new waste reduction action.
	// Returns validation errors from the domain entity if data is invalid.
	Create(ctx context.Context, reduction *domain.WasteReduction) error

	// CountByUser returns the number of waste reduction actions for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// AverageScoreByUser returns the mean impact score across a user's
	// actions, or 0 when the user has none.
	AverageScoreByUser(ctx context.Context, userID uuid.UUID) (float64, error)
}
