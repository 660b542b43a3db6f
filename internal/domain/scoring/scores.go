package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// ErrNegativeMetric is returned when a wellness metric is negative.
// Negative inputs are rejected rather than silently clamped.
var ErrNegativeMetric = fmt.Errorf("%w: wellness metrics cannot be negative", domain.ErrInvalidInput)

// WellnessBreakdown holds the per-metric sub-scores and the overall score
// derived from one wellness sample. All values lie in [0,100].
type WellnessBreakdown struct {
	SleepScore    float64 `json:"sleep_score"`
	ExerciseScore float64 `json:"exercise_score"`
	WaterScore    float64 `json:"water_score"`
	OverallScore  int     `json:"overall_score"`
}

// calculateMoodScore converts a sentiment label and its confidence into a
// mood score. The label picks a base score; confidence above the pivot pulls
// the score up, below pulls it down. The result is clamped to the configured
// floor and ceiling, so it is monotonically non-decreasing in confidence for
// a fixed label.
//
// Unknown labels fall back to the neutral base, matching the recommendation
// lookup's fallback.
func calculateMoodScore(label domain.Sentiment, confidence float64, params *Params) float64 {
	base, ok := params.MoodBaseScores[label]
	if !ok {
		base = params.MoodBaseScores[domain.SentimentNeutral]
	}

	adjustment := (confidence - params.ConfidencePivot) * params.ConfidenceWeight
	return clamp(base+adjustment, params.MoodScoreFloor, params.MoodScoreCeiling)
}

// calculateWellnessScores derives the per-metric sub-scores and the rounded
// overall score from one wellness sample. Each sub-score is the metric as a
// fraction of its daily target, capped at 100.
//
// Returns ErrNegativeMetric if any metric is negative.
func calculateWellnessScores(
	sleepHours, exerciseMinutes, waterGlasses float64,
	params *Params,
) (*WellnessBreakdown, error) {
	if sleepHours < 0 || exerciseMinutes < 0 || waterGlasses < 0 {
		return nil, ErrNegativeMetric
	}

	sleepScore := math.Min(sleepHours/params.SleepTargetHours*100, 100)
	exerciseScore := math.Min(exerciseMinutes/params.ExerciseTargetMinutes*100, 100)
	waterScore := math.Min(waterGlasses/params.WaterTargetGlasses*100, 100)

	return &WellnessBreakdown{
		SleepScore:    sleepScore,
		ExerciseScore: exerciseScore,
		WaterScore:    waterScore,
		OverallScore:  int(math.Round((sleepScore + exerciseScore + waterScore) / 3)),
	}, nil
}

// calculateNutritionScore scores a meal plan by ingredient variety plus a
// bonus for each ingredient whose lowercase text contains a healthy keyword.
// The result is capped at 100.
//
// dietaryRestriction does not affect the score. It is accepted and persisted
// for interface compatibility only.
func calculateNutritionScore(ingredients []string, dietaryRestriction string, params *Params) int {
	_ = dietaryRestriction

	base := len(ingredients) * params.IngredientPoints
	if base > 100 {
		base = 100
	}

	bonus := 0
	for _, ingredient := range ingredients {
		folded := strings.ToLower(ingredient)
		for _, healthy := range params.HealthyKeywords {
			if strings.Contains(folded, healthy) {
				bonus += params.HealthyBonusPoints
				break
			}
		}
	}

	if base+bonus > 100 {
		return 100
	}
	return base + bonus
}

// estimateMealCost estimates a meal's cost as a flat unit cost per
// ingredient. The unit is currency-agnostic at this layer.
func estimateMealCost(ingredients []string, params *Params) int {
	return len(ingredients) * params.IngredientUnitCost
}

// calculateWasteImpactScore scores a waste reduction action by the number of
// items saved, capped at 100.
func calculateWasteImpactScore(items []string, params *Params) int {
	score := len(items) * params.WasteItemPoints
	if score > 100 {
		return 100
	}
	return score
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
