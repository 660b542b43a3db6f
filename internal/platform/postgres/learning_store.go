package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/platform/logger"
	"github.com/empowerhub/empowerhub-api/internal/store"
)

// PostgresLearningStore implements the store.LearningStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLearningStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLearningStore creates a new PostgreSQL implementation of the
// LearningStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresLearningStore(db store.DBTX, logger *slog.Logger) *PostgresLearningStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLearningStore{
		db:     db,
		logger: logger.With(slog.String("component", "learning_store")),
	}
}

// Ensure PostgresLearningStore implements store.LearningStore interface
var _ store.LearningStore = (*PostgresLearningStore)(nil)

// Create implements store.LearningStore.Create
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresLearningStore) Create(ctx context.Context, activity *domain.LearningActivity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := activity.Validate(); err != nil {
		log.Warn("learning activity validation failed during create",
			slog.String("error", err.Error()),
			slog.String("activity_id", activity.ID.String()))
		return err
	}

	query := `
		INSERT INTO learning_activities (id, user_id, topic, level, learning_path, progress, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		activity.ID,
		activity.UserID,
		activity.Topic,
		activity.Level,
		activity.LearningPath,
		activity.Progress,
		activity.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during learning activity creation",
				slog.String("activity_id", activity.ID.String()),
				slog.String("user_id", activity.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, activity.UserID)
		}

		log.Error("failed to create learning activity",
			slog.String("error", err.Error()),
			slog.String("activity_id", activity.ID.String()))
		return err
	}

	log.Info("learning activity created successfully",
		slog.String("activity_id", activity.ID.String()),
		slog.String("user_id", activity.UserID.String()),
		slog.String("topic", activity.Topic))
	return nil
}

// CountByUser implements store.LearningStore.CountByUser
func (s *PostgresLearningStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT COUNT(*) FROM learning_activities WHERE user_id = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Error("failed to count learning activities",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}

	return count, nil
}

// AverageProgressByUser implements store.LearningStore.AverageProgressByUser
// Returns 0 when the user has no activities.
func (s *PostgresLearningStore) AverageProgressByUser(
	ctx context.Context,
	userID uuid.UUID,
) (float64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT COALESCE(AVG(progress), 0) FROM learning_activities WHERE user_id = $1`

	var avg float64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&avg); err != nil {
		log.Error("failed to average learning progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}

	return avg, nil
}

// RecentByUser implements store.LearningStore.RecentByUser
func (s *PostgresLearningStore) RecentByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.LearningActivity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, topic, level, learning_path, progress, created_at
		FROM learning_activities
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		log.Error("failed to list recent learning activities",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var activities []*domain.LearningActivity
	for rows.Next() {
		var activity domain.LearningActivity
		var level string
		if err := rows.Scan(
			&activity.ID,
			&activity.UserID,
			&activity.Topic,
			&level,
			&activity.LearningPath,
			&activity.Progress,
			&activity.CreatedAt,
		); err != nil {
			log.Error("failed to scan learning activity row",
				slog.String("error", err.Error()))
			return nil, err
		}
		activity.Level = domain.LearningLevel(level)
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating learning activity rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return activities, nil
}
