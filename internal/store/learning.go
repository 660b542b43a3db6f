package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// LearningStore defines the interface for learning activity persistence.
// The aggregate methods return pre-computed statistics so callers never
// touch raw history; averages over an empty history are 0.
type LearningStore interface {
	// Create saves a new learning activity.
	// Returns validation errors from the domain entity if data is invalid.
	Create(ctx context.Context, activity *domain.LearningActivity) error

	// CountByUser returns the number of learning activities for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// AverageProgressByUser returns the mean progress across a user's
	// activities, or 0 when the user has none.
	AverageProgressByUser(ctx context.Context, userID uuid.UUID) (float64, error)

	// RecentByUser returns up to limit activities for a user, ordered by
	// creation time descending.
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.LearningActivity, error)
}
