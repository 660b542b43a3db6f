package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// WellnessStore defines the interface for wellness tracking persistence.
type WellnessStore interface {
	// Create saves a new wellness entry.
	// Returns validation errors from the domain entity if data is invalid.
	Create(ctx context.Context, entry *domain.WellnessEntry) error

	// CountByUser returns the number of tracking entries for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// AverageScoreByUser returns the mean overall wellness score across a
	// user's entries, or 0 when the user has none.
	AverageScoreByUser(ctx context.Context, userID uuid.UUID) (float64, error)

	// RecentByUser returns up to limit entries for a user, ordered by
	// creation time descending.
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.WellnessEntry, error)
}

// AssessmentStore defines the interface for mood assessment persistence.
type AssessmentStore interface {
	// Create saves a new mood assessment.
	// Returns validation errors from the domain entity if data is invalid.
	Create(ctx context.Context, assessment *domain.MoodAssessment) error

	// RecentByUser returns up to limit assessments for a user, ordered by
	// creation time descending.
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.MoodAssessment, error)
}
