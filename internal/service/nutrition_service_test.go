package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/domain/scoring"
	"github.com/google/uuid"
)

func newTestNutritionService(
	t *testing.T,
	plans *fakeMealPlanStore,
	waste *fakeWasteStore,
	qa *fakeQAStore,
	recipes *stubRecipes,
) NutritionService {
	t.Helper()
	svc, err := NewNutritionService(plans, waste, qa, scoring.NewDefaultService(), recipes, nil)
	require.NoError(t, err)
	return svc
}

func TestNutritionServiceGenerateMealPlan(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("builds plan from suggestions and scores", func(t *testing.T) {
		t.Parallel()

		plans := &fakeMealPlanStore{}
		recipes := &stubRecipes{}
		svc := newTestNutritionService(t, plans, &fakeWasteStore{}, &fakeQAStore{}, recipes)

		plan, err := svc.GenerateMealPlan(
			context.Background(), userID,
			[]string{"chicken", "rice"}, "none",
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"chicken", "rice"}, plan.Ingredients)
		assert.Equal(t, 20, plan.NutritionScore)
		assert.Equal(t, 100, plan.EstimatedCost)
		assert.Contains(t, plan.PlanContent, "Meal Suggestions:")
		assert.Contains(t, plan.PlanContent, "• Try making: chicken stew")
		assert.Contains(t, plan.PlanContent, "• Try making: rice stew")
		assert.Contains(t, plan.PlanContent, "Nutrition Tips: Balance your meals")

		require.Len(t, plans.plans, 1)
	})

	t.Run("asks the provider for at most three ingredients", func(t *testing.T) {
		t.Parallel()

		recipes := &stubRecipes{}
		svc := newTestNutritionService(t, &fakeMealPlanStore{}, &fakeWasteStore{}, &fakeQAStore{}, recipes)

		_, err := svc.GenerateMealPlan(
			context.Background(), userID,
			[]string{"a", "b", "c", "d", "e"}, "",
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, recipes.asked)
	})

	t.Run("healthy ingredients earn bonus points", func(t *testing.T) {
		t.Parallel()

		recipes := &stubRecipes{}
		svc := newTestNutritionService(t, &fakeMealPlanStore{}, &fakeWasteStore{}, &fakeQAStore{}, recipes)

		plan, err := svc.GenerateMealPlan(
			context.Background(), userID,
			[]string{"mixed vegetables", "chicken"}, "",
		)
		require.NoError(t, err)
		assert.Equal(t, 25, plan.NutritionScore)
	})

	t.Run("rejects empty ingredients", func(t *testing.T) {
		t.Parallel()

		svc := newTestNutritionService(t, &fakeMealPlanStore{}, &fakeWasteStore{}, &fakeQAStore{}, &stubRecipes{})

		_, err := svc.GenerateMealPlan(context.Background(), userID, nil, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestNutritionServiceReduceWaste(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("persists reduction with impact summary", func(t *testing.T) {
		t.Parallel()

		waste := &fakeWasteStore{}
		svc := newTestNutritionService(t, &fakeMealPlanStore{}, waste, &fakeQAStore{}, &stubRecipes{})

		result, err := svc.ReduceWaste(
			context.Background(), userID,
			[]string{"milk", "bread", "eggs"},
		)
		require.NoError(t, err)

		assert.Equal(t, 45, result.Reduction.ImpactScore)
		assert.Equal(t, 3, result.ItemsSaved)
		assert.Equal(t,
			"Saving 3 items from waste reduces carbon footprint by approximately 1.5kg CO2",
			result.EnvironmentalImpact)
		assert.Contains(t, result.Reduction.Suggestions,
			"Food waste reduction ideas for milk, bread, eggs:")
		assert.Contains(t, result.Reduction.Suggestions, "1. Make smoothies")

		require.Len(t, waste.reductions, 1)
	})

	t.Run("whole item counts render with one decimal", func(t *testing.T) {
		t.Parallel()

		svc := newTestNutritionService(t, &fakeMealPlanStore{}, &fakeWasteStore{}, &fakeQAStore{}, &stubRecipes{})

		result, err := svc.ReduceWaste(
			context.Background(), userID,
			[]string{"a", "b", "c", "d"},
		)
		require.NoError(t, err)
		assert.Equal(t,
			"Saving 4 items from waste reduces carbon footprint by approximately 2.0kg CO2",
			result.EnvironmentalImpact)
	})

	t.Run("impact score caps at 100", func(t *testing.T) {
		t.Parallel()

		svc := newTestNutritionService(t, &fakeMealPlanStore{}, &fakeWasteStore{}, &fakeQAStore{}, &stubRecipes{})

		items := make([]string, 10)
		for i := range items {
			items[i] = "item"
		}
		result, err := svc.ReduceWaste(context.Background(), userID, items)
		require.NoError(t, err)
		assert.Equal(t, 100, result.Reduction.ImpactScore)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		t.Parallel()

		svc := newTestNutritionService(t, &fakeMealPlanStore{}, &fakeWasteStore{}, &fakeQAStore{}, &stubRecipes{})

		_, err := svc.ReduceWaste(context.Background(), userID, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestNutritionServiceAnswerNutritionQuestion(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	qa := &fakeQAStore{}
	svc := newTestNutritionService(t, &fakeMealPlanStore{}, &fakeWasteStore{}, qa, &stubRecipes{})

	record, err := svc.AnswerNutritionQuestion(context.Background(), userID, "Is keto healthy?")
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryNutrition, record.Category)
	assert.InDelta(t, 0.9, record.Confidence, 1e-9)
	assert.Contains(t, record.Answer, "Nutrition advice about Is keto healthy?:")
	assert.Contains(t, record.Answer, "consult with a registered dietitian")
	require.Len(t, qa.records, 1)
}
