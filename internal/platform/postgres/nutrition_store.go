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

// PostgresMealPlanStore implements the store.MealPlanStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMealPlanStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMealPlanStore creates a new PostgreSQL implementation of the
// MealPlanStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresMealPlanStore(db store.DBTX, logger *slog.Logger) *PostgresMealPlanStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMealPlanStore{
		db:     db,
		logger: logger.With(slog.String("component", "meal_plan_store")),
	}
}

// Ensure PostgresMealPlanStore implements store.MealPlanStore interface
var _ store.MealPlanStore = (*PostgresMealPlanStore)(nil)

// Create implements store.MealPlanStore.Create
// Ingredients are stored as a JSONB array preserving caller order.
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresMealPlanStore) Create(ctx context.Context, plan *domain.MealPlan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := plan.Validate(); err != nil {
		log.Warn("meal plan validation failed during create",
			slog.String("error", err.Error()),
			slog.String("plan_id", plan.ID.String()))
		return err
	}

	ingredients, err := encodeStrings(plan.Ingredients)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO meal_plans
			(id, user_id, ingredients, dietary_restriction, plan_content,
			 nutrition_score, estimated_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		plan.ID,
		plan.UserID,
		ingredients,
		plan.DietaryRestriction,
		plan.PlanContent,
		plan.NutritionScore,
		plan.EstimatedCost,
		plan.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during meal plan creation",
				slog.String("plan_id", plan.ID.String()),
				slog.String("user_id", plan.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, plan.UserID)
		}

		log.Error("failed to create meal plan",
			slog.String("error", err.Error()),
			slog.String("plan_id", plan.ID.String()))
		return err
	}

	log.Info("meal plan created successfully",
		slog.String("plan_id", plan.ID.String()),
		slog.String("user_id", plan.UserID.String()),
		slog.Int("nutrition_score", plan.NutritionScore))
	return nil
}

// CountByUser implements store.MealPlanStore.CountByUser
func (s *PostgresMealPlanStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT COUNT(*) FROM meal_plans WHERE user_id = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Error("failed to count meal plans",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}

	return count, nil
}

// AverageScoreByUser implements store.MealPlanStore.AverageScoreByUser
// Returns 0 when the user has no meal plans.
func (s *PostgresMealPlanStore) AverageScoreByUser(
	ctx context.Context,
	userID uuid.UUID,
) (float64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT COALESCE(AVG(nutrition_score), 0) FROM meal_plans WHERE user_id = $1`

	var avg float64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&avg); err != nil {
		log.Error("failed to average nutrition scores",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}

	return avg, nil
}

// RecentByUser implements store.MealPlanStore.RecentByUser
func (s *PostgresMealPlanStore) RecentByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.MealPlan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, ingredients, dietary_restriction, plan_content,
		       nutrition_score, estimated_cost, created_at
		FROM meal_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		log.Error("failed to list recent meal plans",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var plans []*domain.MealPlan
	for rows.Next() {
		var plan domain.MealPlan
		var ingredients []byte
		if err := rows.Scan(
			&plan.ID,
			&plan.UserID,
			&ingredients,
			&plan.DietaryRestriction,
			&plan.PlanContent,
			&plan.NutritionScore,
			&plan.EstimatedCost,
			&plan.CreatedAt,
		); err != nil {
			log.Error("failed to scan meal plan row",
				slog.String("error", err.Error()))
			return nil, err
		}
		plan.Ingredients, err = decodeStrings(ingredients)
		if err != nil {
			log.Error("failed to decode meal plan ingredients",
				slog.String("error", err.Error()),
				slog.String("plan_id", plan.ID.String()))
			return nil, err
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating meal plan rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return plans, nil
}

// PostgresWasteStore implements the store.WasteStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWasteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWasteStore creates a new PostgreSQL implementation of the
// WasteStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresWasteStore(db store.DBTX, logger *slog.Logger) *PostgresWasteStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWasteStore{
		db:     db,
		logger: logger.With(slog.String("component", "waste_store")),
	}
}

// Ensure PostgresWasteStore implements store.WasteStore interface
var _ store.WasteStore = (*PostgresWasteStore)(nil)

// Create implements store.WasteStore.Create
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresWasteStore) Create(ctx context.Context, reduction *domain.WasteReduction) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reduction.Validate(); err != nil {
		log.Warn("waste reduction validation failed during create",
			slog.String("error", err.Error()),
			slog.String("reduction_id", reduction.ID.String()))
		return err
	}

	items, err := encodeStrings(reduction.ExpiringItems)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO food_waste_reduction
			(id, user_id, expiring_items, suggestions, impact_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		reduction.ID,
		reduction.UserID,
		items,
		reduction.Suggestions,
		reduction.ImpactScore,
		reduction.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during waste reduction creation",
				slog.String("reduction_id", reduction.ID.String()),
				slog.String("user_id", reduction.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, reduction.UserID)
		}

		log.Error("failed to create waste reduction",
			slog.String("error", err.Error()),
			slog.String("reduction_id", reduction.ID.String()))
		return err
	}

	log.Info("waste reduction created successfully",
		slog.String("reduction_id", reduction.ID.String()),
		slog.String("user_id", reduction.UserID.String()),
		slog.Int("impact_score", reduction.ImpactScore))
	return nil
}

// CountByUser implements store.WasteStore.CountByUser
func (s *PostgresWasteStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT COUNT(*) FROM food_waste_reduction WHERE user_id = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Error("failed to count waste reductions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}

	return count, nil
}

// AverageScoreByUser implements store.WasteStore.AverageScoreByUser
// Returns 0 when the user has no waste reduction actions.
func (s *PostgresWasteStore) AverageScoreByUser(
	ctx context.Context,
	userID uuid.UUID,
) (float64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT COALESCE(AVG(impact_score), 0) FROM food_waste_reduction WHERE user_id = $1`

	var avg float64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&avg); err != nil {
		log.Error("failed to average waste impact scores",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}

	return avg, nil
}
