package scoring

import (
	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// Service is the scoring engine's public surface. Every method is a pure,
// deterministic function of its arguments and the injected Params: no I/O,
// no hidden state, safe for any number of concurrent callers.
type Service interface {
	// ClassifySentiment maps free text to a sentiment label and confidence.
	// Total: empty input classifies as NEUTRAL.
	ClassifySentiment(text string) SentimentResult

	// MoodScore converts a sentiment and its confidence into a mood score
	// within the configured floor/ceiling (defaults [10,100]).
	MoodScore(label domain.Sentiment, confidence float64) float64

	// WellnessScores derives the sub-scores and overall score from one
	// wellness sample. Returns ErrNegativeMetric for negative inputs.
	WellnessScores(sleepHours, exerciseMinutes, waterGlasses float64) (*WellnessBreakdown, error)

	// NutritionScore scores ingredient variety in [0,100].
	// dietaryRestriction is a documented no-op.
	NutritionScore(ingredients []string, dietaryRestriction string) int

	// EstimatedMealCost estimates meal cost at a flat unit cost per ingredient.
	EstimatedMealCost(ingredients []string) int

	// WasteImpactScore scores items saved from waste in [0,100].
	WasteImpactScore(items []string) int

	// MentalHealthRecommendations returns the fixed advice list for a label,
	// falling back to the NEUTRAL list for unknown labels. Never empty.
	MentalHealthRecommendations(label domain.Sentiment) []string

	// WellnessRecommendations returns ordered tips for low sub-scores plus
	// one closing remark chosen by the overall score.
	WellnessRecommendations(breakdown *WellnessBreakdown) []string

	// EducationProgress summarizes pre-aggregated learning statistics.
	EducationProgress(activityCount int, avgProgress float64) EducationProgress

	// HealthProgress summarizes pre-aggregated wellness statistics.
	HealthProgress(trackingCount int, avgScore float64) HealthProgress

	// NutritionProgress summarizes pre-aggregated nutrition statistics.
	NutritionProgress(
		mealPlanCount int, avgNutritionScore float64,
		wasteActionCount int, avgImpactScore float64,
	) NutritionProgress
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a scoring service with default parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a scoring service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

func (s *defaultService) ClassifySentiment(text string) SentimentResult {
	return classifySentiment(text, s.params)
}

func (s *defaultService) MoodScore(label domain.Sentiment, confidence float64) float64 {
	return calculateMoodScore(label, confidence, s.params)
}

func (s *defaultService) WellnessScores(
	sleepHours, exerciseMinutes, waterGlasses float64,
) (*WellnessBreakdown, error) {
	return calculateWellnessScores(sleepHours, exerciseMinutes, waterGlasses, s.params)
}

func (s *defaultService) NutritionScore(ingredients []string, dietaryRestriction string) int {
	return calculateNutritionScore(ingredients, dietaryRestriction, s.params)
}

func (s *defaultService) EstimatedMealCost(ingredients []string) int {
	return estimateMealCost(ingredients, s.params)
}

func (s *defaultService) WasteImpactScore(items []string) int {
	return calculateWasteImpactScore(items, s.params)
}

func (s *defaultService) MentalHealthRecommendations(label domain.Sentiment) []string {
	return mentalHealthRecommendations(label, s.params)
}

func (s *defaultService) WellnessRecommendations(breakdown *WellnessBreakdown) []string {
	return wellnessRecommendations(breakdown, s.params)
}

func (s *defaultService) EducationProgress(activityCount int, avgProgress float64) EducationProgress {
	return educationProgress(activityCount, avgProgress, s.params)
}

func (s *defaultService) HealthProgress(trackingCount int, avgScore float64) HealthProgress {
	return healthProgress(trackingCount, avgScore, s.params)
}

func (s *defaultService) NutritionProgress(
	mealPlanCount int, avgNutritionScore float64,
	wasteActionCount int, avgImpactScore float64,
) NutritionProgress {
	return nutritionProgress(mealPlanCount, avgNutritionScore, wasteActionCount, avgImpactScore)
}
