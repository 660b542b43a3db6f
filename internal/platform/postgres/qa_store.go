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

// PostgresQAStore implements the store.QAStore interface
// using a PostgreSQL database as the storage backend.
type PostgresQAStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQAStore creates a new PostgreSQL implementation of the QAStore
// interface.
// If logger is nil, a default logger will be used.
func NewPostgresQAStore(db store.DBTX, logger *slog.Logger) *PostgresQAStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQAStore{
		db:     db,
		logger: logger.With(slog.String("component", "qa_store")),
	}
}

// Ensure PostgresQAStore implements store.QAStore interface
var _ store.QAStore = (*PostgresQAStore)(nil)

// Create implements store.QAStore.Create
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresQAStore) Create(ctx context.Context, record *domain.QARecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("qa record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	query := `
		INSERT INTO qa_history (id, user_id, question, answer, category, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.Question,
		record.Answer,
		record.Category,
		record.Confidence,
		record.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during qa record creation",
				slog.String("record_id", record.ID.String()),
				slog.String("user_id", record.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, record.UserID)
		}

		log.Error("failed to create qa record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	log.Info("qa record created successfully",
		slog.String("record_id", record.ID.String()),
		slog.String("user_id", record.UserID.String()),
		slog.String("category", string(record.Category)))
	return nil
}

// RecentByUserAndCategory implements store.QAStore.RecentByUserAndCategory
func (s *PostgresQAStore) RecentByUserAndCategory(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
	limit int,
) ([]*domain.QARecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, question, answer, category, confidence, created_at
		FROM qa_history
		WHERE user_id = $1 AND category = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, category, limit)
	if err != nil {
		log.Error("failed to list recent qa records",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("category", string(category)))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []*domain.QARecord
	for rows.Next() {
		var record domain.QARecord
		var recordCategory string
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Question,
			&record.Answer,
			&recordCategory,
			&record.Confidence,
			&record.CreatedAt,
		); err != nil {
			log.Error("failed to scan qa record row",
				slog.String("error", err.Error()))
			return nil, err
		}
		record.Category = domain.Category(recordCategory)
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating qa record rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}
