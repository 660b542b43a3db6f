package scoring

import (
	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// mentalHealthRecommendations returns the fixed, ordered advice list for a
// sentiment label. Any label outside the known set falls back to the NEUTRAL
// list, so the result is never empty.
func mentalHealthRecommendations(label domain.Sentiment, params *Params) []string {
	var source []string
	switch label {
	case domain.SentimentPositive:
		source = params.MentalHealthAdvice[domain.SentimentPositive]
	case domain.SentimentNegative:
		source = params.MentalHealthAdvice[domain.SentimentNegative]
	default:
		source = params.MentalHealthAdvice[domain.SentimentNeutral]
	}

	// Copy so callers appending (e.g. an external advice tip) cannot mutate
	// the configured lists.
	recommendations := make([]string, len(source))
	copy(recommendations, source)
	return recommendations
}

// wellnessRecommendations builds the ordered tip list for a wellness
// breakdown: a sleep tip, exercise tip, and hydration tip for each sub-score
// below the threshold (in that order), then exactly one closing remark
// chosen by the overall score.
func wellnessRecommendations(breakdown *WellnessBreakdown, params *Params) []string {
	var recommendations []string

	if breakdown.SleepScore < params.SubScoreTipThreshold {
		recommendations = append(recommendations, params.SleepTip)
	}
	if breakdown.ExerciseScore < params.SubScoreTipThreshold {
		recommendations = append(recommendations, params.ExerciseTip)
	}
	if breakdown.WaterScore < params.SubScoreTipThreshold {
		recommendations = append(recommendations, params.WaterTip)
	}

	switch {
	case float64(breakdown.OverallScore) >= params.ExcellentThreshold:
		recommendations = append(recommendations, params.ExcellentRemark)
	case float64(breakdown.OverallScore) >= params.GoodThreshold:
		recommendations = append(recommendations, params.GoodRemark)
	default:
		recommendations = append(recommendations, params.ImproveRemark)
	}

	return recommendations
}
