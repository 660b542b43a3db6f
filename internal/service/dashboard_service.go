package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/domain/scoring"
	"github.com/empowerhub/empowerhub-api/internal/platform/logger"
	"github.com/empowerhub/empowerhub-api/internal/store"
)

// Recent-list limits used by the dashboard and history views.
const (
	dashboardRecentLimit = 5
	historyLimit         = 20
)

// UserProfile is the account summary shown on the dashboard.
type UserProfile struct {
	Email          string     `json:"email"`
	IsPremium      bool       `json:"is_premium"`
	PremiumExpires *time.Time `json:"premium_expires"`
	MemberSince    time.Time  `json:"member_since"`
}

// ActivityCounts aggregates per-domain record counts for a user.
type ActivityCounts struct {
	LearningActivities int `json:"learning_activities"`
	HealthTracking     int `json:"health_tracking"`
	MealPlans          int `json:"meal_plans"`
	WasteReduction     int `json:"waste_reduction"`
}

// RecentLearning is one row of the dashboard's recent learning list.
type RecentLearning struct {
	Topic    string    `json:"topic"`
	Level    string    `json:"level"`
	Progress int       `json:"progress"`
	Date     time.Time `json:"date"`
}

// RecentHealth is one row of the dashboard's recent health list.
type RecentHealth struct {
	Type  string    `json:"type"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// DomainProgress groups the three per-domain progress summaries.
type DomainProgress struct {
	Education scoring.EducationProgress `json:"education"`
	Health    scoring.HealthProgress    `json:"health"`
	Nutrition scoring.NutritionProgress `json:"nutrition"`
}

// DashboardView is the complete dashboard payload for one user.
type DashboardView struct {
	UserInfo         UserProfile      `json:"user_info"`
	ActivityCounts   ActivityCounts   `json:"activity_counts"`
	WellnessScore    float64          `json:"wellness_score"`
	RecentActivities []RecentLearning `json:"recent_activities"`
	RecentHealth     []RecentHealth   `json:"recent_health"`
	SDGProgress      DomainProgress   `json:"sdg_progress"`
}

// HistoryEntry is one row of a category history listing. Only the fields
// relevant to the requested category are populated.
type HistoryEntry struct {
	// Education
	Question   string  `json:"question,omitempty"`
	Answer     string  `json:"answer,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`

	// Health
	Type  string `json:"type,omitempty"`
	Score int    `json:"score,omitempty"`

	// Nutrition
	Ingredients    []string `json:"ingredients,omitempty"`
	NutritionScore int      `json:"nutrition_score,omitempty"`

	Date time.Time `json:"date"`
}

// DashboardService assembles the per-user dashboard and history views from
// the per-domain stores.
type DashboardService interface {
	// Dashboard builds the complete dashboard view for a user.
	// Returns store.ErrUserNotFound for unknown users.
	Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardView, error)

	// History returns up to 20 entries for the category, newest first.
	History(ctx context.Context, userID uuid.UUID, category domain.Category) ([]HistoryEntry, error)
}

// dashboardServiceImpl implements the DashboardService interface.
type dashboardServiceImpl struct {
	userStore     store.UserStore
	learningStore store.LearningStore
	wellnessStore store.WellnessStore
	mealPlanStore store.MealPlanStore
	wasteStore    store.WasteStore
	qaStore       store.QAStore
	scorer        scoring.Service
	logger        *slog.Logger
}

// Ensure dashboardServiceImpl implements DashboardService interface
var _ DashboardService = (*dashboardServiceImpl)(nil)

// NewDashboardService creates a new DashboardService with the given
// dependencies.
func NewDashboardService(
	userStore store.UserStore,
	learningStore store.LearningStore,
	wellnessStore store.WellnessStore,
	mealPlanStore store.MealPlanStore,
	wasteStore store.WasteStore,
	qaStore store.QAStore,
	scorer scoring.Service,
	log *slog.Logger,
) (DashboardService, error) {
	if userStore == nil {
		return nil, errors.New("user store cannot be nil")
	}
	if learningStore == nil {
		return nil, errors.New("learning store cannot be nil")
	}
	if wellnessStore == nil {
		return nil, errors.New("wellness store cannot be nil")
	}
	if mealPlanStore == nil {
		return nil, errors.New("meal plan store cannot be nil")
	}
	if wasteStore == nil {
		return nil, errors.New("waste store cannot be nil")
	}
	if qaStore == nil {
		return nil, errors.New("qa store cannot be nil")
	}
	if scorer == nil {
		return nil, errors.New("scoring service cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &dashboardServiceImpl{
		userStore:     userStore,
		learningStore: learningStore,
		wellnessStore: wellnessStore,
		mealPlanStore: mealPlanStore,
		wasteStore:    wasteStore,
		qaStore:       qaStore,
		scorer:        scorer,
		logger:        log.With(slog.String("component", "dashboard_service")),
	}, nil
}

// Dashboard implements DashboardService.Dashboard
func (s *dashboardServiceImpl) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	learningCount, err := s.learningStore.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	healthCount, err := s.wellnessStore.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	mealPlanCount, err := s.mealPlanStore.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	wasteCount, err := s.wasteStore.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	avgWellness, err := s.wellnessStore.AverageScoreByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	avgProgress, err := s.learningStore.AverageProgressByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	avgNutrition, err := s.mealPlanStore.AverageScoreByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	avgImpact, err := s.wasteStore.AverageScoreByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	recentLearning, err := s.learningStore.RecentByUser(ctx, userID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	recentHealth, err := s.wellnessStore.RecentByUser(ctx, userID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	// The stores return newest-first, already limited; the view uses their
	// ordering as-is.
	learningRows := make([]RecentLearning, 0, len(recentLearning))
	for _, activity := range recentLearning {
		learningRows = append(learningRows, RecentLearning{
			Topic:    activity.Topic,
			Level:    string(activity.Level),
			Progress: activity.Progress,
			Date:     activity.CreatedAt,
		})
	}

	healthRows := make([]RecentHealth, 0, len(recentHealth))
	for _, entry := range recentHealth {
		healthRows = append(healthRows, RecentHealth{
			Type:  string(entry.Type),
			Score: entry.OverallScore,
			Date:  entry.CreatedAt,
		})
	}

	log.Debug("dashboard assembled",
		slog.String("user_id", userID.String()),
		slog.Int("learning_count", learningCount),
		slog.Int("health_count", healthCount))

	return &DashboardView{
		UserInfo: UserProfile{
			Email:          user.Email,
			IsPremium:      user.IsPremium,
			PremiumExpires: user.PremiumExpires,
			MemberSince:    user.CreatedAt,
		},
		ActivityCounts: ActivityCounts{
			LearningActivities: learningCount,
			HealthTracking:     healthCount,
			MealPlans:          mealPlanCount,
			WasteReduction:     wasteCount,
		},
		WellnessScore:    math.Round(avgWellness*100) / 100,
		RecentActivities: learningRows,
		RecentHealth:     healthRows,
		SDGProgress: DomainProgress{
			Education: s.scorer.EducationProgress(learningCount, avgProgress),
			Health:    s.scorer.HealthProgress(healthCount, avgWellness),
			Nutrition: s.scorer.NutritionProgress(mealPlanCount, avgNutrition, wasteCount, avgImpact),
		},
	}, nil
}

// History implements DashboardService.History
func (s *dashboardServiceImpl) History(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
) ([]HistoryEntry, error) {
	switch category {
	case domain.CategoryEducation:
		records, err := s.qaStore.RecentByUserAndCategory(ctx, userID, category, historyLimit)
		if err != nil {
			return nil, err
		}
		entries := make([]HistoryEntry, 0, len(records))
		for _, record := range records {
			entries = append(entries, HistoryEntry{
				Question:   record.Question,
				Answer:     record.Answer,
				Confidence: record.Confidence,
				Date:       record.CreatedAt,
			})
		}
		return entries, nil

	case domain.CategoryHealth:
		items, err := s.wellnessStore.RecentByUser(ctx, userID, historyLimit)
		if err != nil {
			return nil, err
		}
		entries := make([]HistoryEntry, 0, len(items))
		for _, entry := range items {
			entries = append(entries, HistoryEntry{
				Type:  string(entry.Type),
				Score: entry.OverallScore,
				Date:  entry.CreatedAt,
			})
		}
		return entries, nil

	case domain.CategoryNutrition:
		plans, err := s.mealPlanStore.RecentByUser(ctx, userID, historyLimit)
		if err != nil {
			return nil, err
		}
		entries := make([]HistoryEntry, 0, len(plans))
		for _, plan := range plans {
			entries = append(entries, HistoryEntry{
				Ingredients:    plan.Ingredients,
				NutritionScore: plan.NutritionScore,
				Date:           plan.CreatedAt,
			})
		}
		return entries, nil

	default:
		return nil, domain.ErrUnknownCategory
	}
}
