package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/domain/scoring"
	"github.com/empowerhub/empowerhub-api/internal/platform/logger"
	"github.com/empowerhub/empowerhub-api/internal/store"
)

// nutritionAnswerConfidence is the confidence recorded for nutrition QA
// records.
const nutritionAnswerConfidence = 0.9

// maxSuggestionIngredients caps how many ingredients are sent to the recipe
// provider per meal plan.
const maxSuggestionIngredients = 3

// co2PerItemKg is the carbon footprint reduction credited per item saved.
const co2PerItemKg = 0.5

// nutritionDisclaimer is appended to every nutrition answer before storage.
const nutritionDisclaimer = "\n\n💡 Note: This nutritional information is for educational " +
	"purposes. For personalized nutrition advice, consult with a registered dietitian."

// NutritionDisclaimerNote is the short disclaimer returned alongside
// nutrition answers.
const NutritionDisclaimerNote = "Consult registered dietitians for personalized nutrition advice"

// WasteResult is the outcome of a waste reduction request: the persisted
// action plus the derived environmental impact summary.
type WasteResult struct {
	Reduction           *domain.WasteReduction
	ItemsSaved          int
	EnvironmentalImpact string
}

// NutritionService provides meal planning, waste reduction, and nutrition QA.
type NutritionService interface {
	// GenerateMealPlan builds a meal plan from the ingredients, scores it,
	// and persists it. Recipe suggestions are fetched for the first three
	// ingredients only.
	GenerateMealPlan(
		ctx context.Context,
		userID uuid.UUID,
		ingredients []string,
		dietaryRestriction string,
	) (*domain.MealPlan, error)

	// ReduceWaste generates waste reduction suggestions for the expiring
	// items, scores the environmental impact, and persists the action.
	ReduceWaste(ctx context.Context, userID uuid.UUID, expiringItems []string) (*WasteResult, error)

	// AnswerNutritionQuestion records a nutrition question with canned
	// advice and disclaimer in the QA history with confidence 0.9.
	AnswerNutritionQuestion(ctx context.Context, userID uuid.UUID, question string) (*domain.QARecord, error)
}

// nutritionServiceImpl implements the NutritionService interface.
type nutritionServiceImpl struct {
	mealPlanStore store.MealPlanStore
	wasteStore    store.WasteStore
	qaStore       store.QAStore
	scorer        scoring.Service
	recipes       RecipeProvider
	logger        *slog.Logger
}

// Ensure nutritionServiceImpl implements NutritionService interface
var _ NutritionService = (*nutritionServiceImpl)(nil)

// NewNutritionService creates a new NutritionService with the given
// dependencies.
func NewNutritionService(
	mealPlanStore store.MealPlanStore,
	wasteStore store.WasteStore,
	qaStore store.QAStore,
	scorer scoring.Service,
	recipes RecipeProvider,
	log *slog.Logger,
) (NutritionService, error) {
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
	if recipes == nil {
		return nil, errors.New("recipe provider cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &nutritionServiceImpl{
		mealPlanStore: mealPlanStore,
		wasteStore:    wasteStore,
		qaStore:       qaStore,
		scorer:        scorer,
		recipes:       recipes,
		logger:        log.With(slog.String("component", "nutrition_service")),
	}, nil
}

// GenerateMealPlan implements NutritionService.GenerateMealPlan
func (s *nutritionServiceImpl) GenerateMealPlan(
	ctx context.Context,
	userID uuid.UUID,
	ingredients []string,
	dietaryRestriction string,
) (*domain.MealPlan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: ingredients are required", domain.ErrInvalidInput)
	}

	limit := len(ingredients)
	if limit > maxSuggestionIngredients {
		limit = maxSuggestionIngredients
	}

	var content strings.Builder
	content.WriteString("Meal Suggestions:\n")
	for i, ingredient := range ingredients[:limit] {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString("• " + s.recipes.Suggestion(ctx, ingredient))
	}
	content.WriteString("\n\nNutrition Tips: Balance your meals with proteins, carbs, and vegetables. Stay hydrated!")

	plan, err := domain.NewMealPlan(
		userID,
		ingredients,
		dietaryRestriction,
		content.String(),
		s.scorer.NutritionScore(ingredients, dietaryRestriction),
		s.scorer.EstimatedMealCost(ingredients),
	)
	if err != nil {
		return nil, err
	}

	if err := s.mealPlanStore.Create(ctx, plan); err != nil {
		return nil, err
	}

	log.Info("meal plan generated",
		slog.String("user_id", userID.String()),
		slog.Int("ingredients", len(ingredients)),
		slog.Int("nutrition_score", plan.NutritionScore))
	return plan, nil
}

// ReduceWaste implements NutritionService.ReduceWaste
func (s *nutritionServiceImpl) ReduceWaste(
	ctx context.Context,
	userID uuid.UUID,
	expiringItems []string,
) (*WasteResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(expiringItems) == 0 {
		return nil, fmt.Errorf("%w: expiring items are required", domain.ErrInvalidInput)
	}

	suggestions := fmt.Sprintf(
		"Food waste reduction ideas for %s:\n1. Make smoothies\n2. Create soups\n3. Freeze leftovers\n4. Compost scraps",
		strings.Join(expiringItems, ", "),
	)

	reduction, err := domain.NewWasteReduction(
		userID,
		expiringItems,
		suggestions,
		s.scorer.WasteImpactScore(expiringItems),
	)
	if err != nil {
		return nil, err
	}

	if err := s.wasteStore.Create(ctx, reduction); err != nil {
		return nil, err
	}

	itemsSaved := len(expiringItems)
	impact := fmt.Sprintf(
		"Saving %d items from waste reduces carbon footprint by approximately %skg CO2",
		itemsSaved,
		strconv.FormatFloat(float64(itemsSaved)*co2PerItemKg, 'f', 1, 64),
	)

	log.Info("waste reduction recorded",
		slog.String("user_id", userID.String()),
		slog.Int("items_saved", itemsSaved),
		slog.Int("impact_score", reduction.ImpactScore))

	return &WasteResult{
		Reduction:           reduction,
		ItemsSaved:          itemsSaved,
		EnvironmentalImpact: impact,
	}, nil
}

// AnswerNutritionQuestion implements NutritionService.AnswerNutritionQuestion
func (s *nutritionServiceImpl) AnswerNutritionQuestion(
	ctx context.Context,
	userID uuid.UUID,
	question string,
) (*domain.QARecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	advice := fmt.Sprintf(
		"Nutrition advice about %s: Focus on balanced meals with proteins, vegetables, "+
			"and whole grains. Stay hydrated!",
		question,
	) + nutritionDisclaimer

	record, err := domain.NewQARecord(userID, question, advice, domain.CategoryNutrition, nutritionAnswerConfidence)
	if err != nil {
		return nil, err
	}

	if err := s.qaStore.Create(ctx, record); err != nil {
		return nil, err
	}

	log.Info("nutrition question answered",
		slog.String("user_id", userID.String()),
		slog.String("record_id", record.ID.String()))
	return record, nil
}
