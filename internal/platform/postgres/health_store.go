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

// PostgresWellnessStore implements the store.WellnessStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWellnessStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWellnessStore creates a new PostgreSQL implementation of the
// WellnessStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresWellnessStore(db store.DBTX, logger *slog.Logger) *PostgresWellnessStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWellnessStore{
		db:     db,
		logger: logger.With(slog.String("component", "wellness_store")),
	}
}

// Ensure PostgresWellnessStore implements store.WellnessStore interface
var _ store.WellnessStore = (*PostgresWellnessStore)(nil)

// Create implements store.WellnessStore.Create
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresWellnessStore) Create(ctx context.Context, entry *domain.WellnessEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("wellness entry validation failed during create",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	query := `
		INSERT INTO health_tracking
			(id, user_id, type, sleep_hours, exercise_minutes, water_glasses,
			 sleep_score, exercise_score, water_score, overall_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.UserID,
		entry.Type,
		entry.SleepHours,
		entry.ExerciseMinutes,
		entry.WaterGlasses,
		entry.SleepScore,
		entry.ExerciseScore,
		entry.WaterScore,
		entry.OverallScore,
		entry.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during wellness entry creation",
				slog.String("entry_id", entry.ID.String()),
				slog.String("user_id", entry.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, entry.UserID)
		}

		log.Error("failed to create wellness entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	log.Info("wellness entry created successfully",
		slog.String("entry_id", entry.ID.String()),
		slog.String("user_id", entry.UserID.String()),
		slog.Int("overall_score", entry.OverallScore))
	return nil
}

// CountByUser implements store.WellnessStore.CountByUser
func (s *PostgresWellnessStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT COUNT(*) FROM health_tracking WHERE user_id = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Error("failed to count wellness entries",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}

	return count, nil
}

// AverageScoreByUser implements store.WellnessStore.AverageScoreByUser
// Returns 0 when the user has no entries.
func (s *PostgresWellnessStore) AverageScoreByUser(
	ctx context.Context,
	userID uuid.UUID,
) (float64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT COALESCE(AVG(overall_score), 0) FROM health_tracking WHERE user_id = $1`

	var avg float64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&avg); err != nil {
		log.Error("failed to average wellness scores",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}

	return avg, nil
}

// RecentByUser implements store.WellnessStore.RecentByUser
func (s *PostgresWellnessStore) RecentByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.WellnessEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, type, sleep_hours, exercise_minutes, water_glasses,
		       sleep_score, exercise_score, water_score, overall_score, created_at
		FROM health_tracking
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		log.Error("failed to list recent wellness entries",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []*domain.WellnessEntry
	for rows.Next() {
		var entry domain.WellnessEntry
		var trackingType string
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&trackingType,
			&entry.SleepHours,
			&entry.ExerciseMinutes,
			&entry.WaterGlasses,
			&entry.SleepScore,
			&entry.ExerciseScore,
			&entry.WaterScore,
			&entry.OverallScore,
			&entry.CreatedAt,
		); err != nil {
			log.Error("failed to scan wellness entry row",
				slog.String("error", err.Error()))
			return nil, err
		}
		entry.Type = domain.TrackingType(trackingType)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating wellness entry rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return entries, nil
}

// PostgresAssessmentStore implements the store.AssessmentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAssessmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAssessmentStore creates a new PostgreSQL implementation of the
// AssessmentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAssessmentStore(db store.DBTX, logger *slog.Logger) *PostgresAssessmentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAssessmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "assessment_store")),
	}
}

// Ensure PostgresAssessmentStore implements store.AssessmentStore interface
var _ store.AssessmentStore = (*PostgresAssessmentStore)(nil)

// Create implements store.AssessmentStore.Create
// Recommendations are stored as a JSONB array alongside the assessment.
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresAssessmentStore) Create(ctx context.Context, assessment *domain.MoodAssessment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := assessment.Validate(); err != nil {
		log.Warn("mood assessment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("assessment_id", assessment.ID.String()))
		return err
	}

	recommendations, err := encodeStrings(assessment.Recommendations)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO mental_health_assessments
			(id, user_id, text, sentiment, confidence, recommendations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		assessment.ID,
		assessment.UserID,
		assessment.Text,
		assessment.Sentiment,
		assessment.Confidence,
		recommendations,
		assessment.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during mood assessment creation",
				slog.String("assessment_id", assessment.ID.String()),
				slog.String("user_id", assessment.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, assessment.UserID)
		}

		log.Error("failed to create mood assessment",
			slog.String("error", err.Error()),
			slog.String("assessment_id", assessment.ID.String()))
		return err
	}

	log.Info("mood assessment created successfully",
		slog.String("assessment_id", assessment.ID.String()),
		slog.String("user_id", assessment.UserID.String()),
		slog.String("sentiment", string(assessment.Sentiment)))
	return nil
}

// RecentByUser implements store.AssessmentStore.RecentByUser
func (s *PostgresAssessmentStore) RecentByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.MoodAssessment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, text, sentiment, confidence, recommendations, created_at
		FROM mental_health_assessments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		log.Error("failed to list recent mood assessments",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var assessments []*domain.MoodAssessment
	for rows.Next() {
		var assessment domain.MoodAssessment
		var sentiment string
		var recommendations []byte
		if err := rows.Scan(
			&assessment.ID,
			&assessment.UserID,
			&assessment.Text,
			&sentiment,
			&assessment.Confidence,
			&recommendations,
			&assessment.CreatedAt,
		); err != nil {
			log.Error("failed to scan mood assessment row",
				slog.String("error", err.Error()))
			return nil, err
		}
		assessment.Sentiment = domain.Sentiment(sentiment)
		assessment.Recommendations, err = decodeStrings(recommendations)
		if err != nil {
			log.Error("failed to decode assessment recommendations",
				slog.String("error", err.Error()),
				slog.String("assessment_id", assessment.ID.String()))
			return nil, err
		}
		assessments = append(assessments, &assessment)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating mood assessment rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return assessments, nil
}
