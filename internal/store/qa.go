package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// QAStore defines the interface for question-answer history persistence.
type QAStore interface {
	// Create saves a new QA record.
	// Returns validation errors from the domain entity if data is invalid.
	Create(ctx context.Context, record *domain.QARecord) error

	// RecentByUserAndCategory returns up to limit records for a user in the
	// given category, ordered by creation time descending.
	RecentByUserAndCategory(
		ctx context.Context,
		userID uuid.UUID,
		category domain.Category,
		limit int,
	) ([]*domain.QARecord, error)
}
