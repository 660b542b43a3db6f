package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/service"
)

// Function-field stubs for the service interfaces the handlers depend on.
// Tests set only the methods they expect to be called; anything else panics.

type stubUserService struct {
	registerFn func(ctx context.Context, email, password, phone string) (*service.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*service.AuthResult, error)
	refreshFn  func(ctx context.Context, refreshToken string) (*service.AuthResult, error)
}

func (s *stubUserService) Register(
	ctx context.Context,
	email, password, phone string,
) (*service.AuthResult, error) {
	return s.registerFn(ctx, email, password, phone)
}

func (s *stubUserService) Login(
	ctx context.Context,
	email, password string,
) (*service.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Refresh(
	ctx context.Context,
	refreshToken string,
) (*service.AuthResult, error) {
	return s.refreshFn(ctx, refreshToken)
}

type stubLearningService struct {
	generatePathFn func(ctx context.Context, userID uuid.UUID, topic string, level domain.LearningLevel) (*domain.LearningActivity, error)
	askQuestionFn  func(ctx context.Context, userID uuid.UUID, question string) (*domain.QARecord, error)
}

func (s *stubLearningService) GeneratePath(
	ctx context.Context,
	userID uuid.UUID,
	topic string,
	level domain.LearningLevel,
) (*domain.LearningActivity, error) {
	return s.generatePathFn(ctx, userID, topic, level)
}

func (s *stubLearningService) AskQuestion(
	ctx context.Context,
	userID uuid.UUID,
	question string,
) (*domain.QARecord, error) {
	return s.askQuestionFn(ctx, userID, question)
}

type stubHealthService struct {
	analyzeMoodFn    func(ctx context.Context, userID uuid.UUID, moodText string) (*service.MoodAnalysis, error)
	trackWellnessFn  func(ctx context.Context, userID uuid.UUID, sleepHours, exerciseMinutes, waterGlasses float64) (*service.WellnessReport, error)
	answerQuestionFn func(ctx context.Context, userID uuid.UUID, question string) (*domain.QARecord, error)
}

func (s *stubHealthService) AnalyzeMood(
	ctx context.Context,
	userID uuid.UUID,
	moodText string,
) (*service.MoodAnalysis, error) {
	return s.analyzeMoodFn(ctx, userID, moodText)
}

func (s *stubHealthService) TrackWellness(
	ctx context.Context,
	userID uuid.UUID,
	sleepHours, exerciseMinutes, waterGlasses float64,
) (*service.WellnessReport, error) {
	return s.trackWellnessFn(ctx, userID, sleepHours, exerciseMinutes, waterGlasses)
}

func (s *stubHealthService) AnswerHealthQuestion(
	ctx context.Context,
	userID uuid.UUID,
	question string,
) (*domain.QARecord, error) {
	return s.answerQuestionFn(ctx, userID, question)
}

type stubNutritionService struct {
	generateMealPlanFn func(ctx context.Context, userID uuid.UUID, ingredients []string, dietaryRestriction string) (*domain.MealPlan, error)
	reduceWasteFn      func(ctx context.Context, userID uuid.UUID, expiringItems []string) (*service.WasteResult, error)
	answerQuestionFn   func(ctx context.Context, userID uuid.UUID, question string) (*domain.QARecord, error)
}

func (s *stubNutritionService) GenerateMealPlan(
	ctx context.Context,
	userID uuid.UUID,
	ingredients []string,
	dietaryRestriction string,
) (*domain.MealPlan, error) {
	return s.generateMealPlanFn(ctx, userID, ingredients, dietaryRestriction)
}

func (s *stubNutritionService) ReduceWaste(
	ctx context.Context,
	userID uuid.UUID,
	expiringItems []string,
) (*service.WasteResult, error) {
	return s.reduceWasteFn(ctx, userID, expiringItems)
}

func (s *stubNutritionService) AnswerNutritionQuestion(
	ctx context.Context,
	userID uuid.UUID,
	question string,
) (*domain.QARecord, error) {
	return s.answerQuestionFn(ctx, userID, question)
}

type stubDashboardService struct {
	dashboardFn func(ctx context.Context, userID uuid.UUID) (*service.DashboardView, error)
	historyFn   func(ctx context.Context, userID uuid.UUID, category domain.Category) ([]service.HistoryEntry, error)
}

func (s *stubDashboardService) Dashboard(
	ctx context.Context,
	userID uuid.UUID,
) (*service.DashboardView, error) {
	return s.dashboardFn(ctx, userID)
}

func (s *stubDashboardService) History(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
) ([]service.HistoryEntry, error) {
	return s.historyFn(ctx, userID, category)
}
