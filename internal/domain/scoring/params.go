package scoring

import (
	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// Params defines all configurable inputs of the scoring engine: keyword sets,
// score thresholds, unit costs, and the recommendation strings themselves.
// Injecting Params keeps the engine testable with alternate thresholds
// without code edits.
type Params struct {
	// Sentiment classification
	PositiveKeywords    []string
	NegativeKeywords    []string
	MatchConfidence     float64 // confidence when one polarity wins
	NeutralConfidence   float64 // confidence on a tie (including no hits)
	MoodBaseScores      map[domain.Sentiment]float64
	MoodScoreFloor      float64
	MoodScoreCeiling    float64
	ConfidencePivot     float64 // confidence value yielding zero adjustment
	ConfidenceWeight    float64 // points per unit of confidence above the pivot
	MentalHealthAdvice  map[domain.Sentiment][]string

	// Wellness scoring
	SleepTargetHours      float64
	ExerciseTargetMinutes float64
	WaterTargetGlasses    float64
	SubScoreTipThreshold  float64 // sub-scores below this earn a tip
	ExcellentThreshold    float64
	GoodThreshold         float64
	SleepTip              string
	ExerciseTip           string
	WaterTip              string
	ExcellentRemark       string
	GoodRemark            string
	ImproveRemark         string

	// Nutrition scoring
	IngredientPoints   int
	HealthyBonusPoints int
	HealthyKeywords    []string
	IngredientUnitCost int // currency-agnostic cost per ingredient

	// Waste impact
	WasteItemPoints int

	// Education level thresholds (inclusive lower bounds on activity count)
	ExplorerMinActivities int
	LearnerMinActivities  int
	ScholarMinActivities  int
	ExpertMinActivities   int

	// Health status thresholds (inclusive lower bounds on avg wellness score)
	ExcellentMinScore float64
	GoodMinScore      float64
	FairMinScore      float64
}

// NewDefaultParams creates a Params instance with the production defaults.
func NewDefaultParams() *Params {
	return &Params{
		PositiveKeywords: []string{
			"happy", "good", "great", "excited", "joy",
			"love", "nice", "positive", "awesome", "fantastic",
		},
		NegativeKeywords: []string{
			"sad", "bad", "angry", "hate", "upset",
			"stress", "anxious", "depress", "tired", "worried",
		},
		MatchConfidence:   0.70,
		NeutralConfidence: 0.60,

		MoodBaseScores: map[domain.Sentiment]float64{
			domain.SentimentPositive: 85,
			domain.SentimentNeutral:  60,
			domain.SentimentNegative: 35,
		},
		MoodScoreFloor:   10,
		MoodScoreCeiling: 100,
		ConfidencePivot:  0.5,
		ConfidenceWeight: 20,

		MentalHealthAdvice: map[domain.Sentiment][]string{
			domain.SentimentPositive: {
				"Keep up the positive mindset with regular exercise and social connections",
				"Practice gratitude and maintain your current healthy habits",
				"Consider sharing your positivity with others who might need support",
			},
			domain.SentimentNegative: {
				"Consider talking to a trusted friend, family member, or mental health professional",
				"Try relaxation techniques like deep breathing or meditation",
				"Engage in physical activity, even a short walk can help improve mood",
				"Ensure you're getting adequate sleep and nutrition",
			},
			domain.SentimentNeutral: {
				"Engage in activities that bring you joy and fulfillment",
				"Connect with friends and family for social support",
				"Try mindfulness or meditation practices",
				"Consider exploring new hobbies or interests",
			},
		},

		SleepTargetHours:      8,
		ExerciseTargetMinutes: 30,
		WaterTargetGlasses:    8,
		SubScoreTipThreshold:  70,
		ExcellentThreshold:    80,
		GoodThreshold:         60,
		SleepTip:              "Aim for 7-9 hours of quality sleep each night",
		ExerciseTip:           "Try to get at least 30 minutes of physical activity daily",
		WaterTip:              "Increase water intake to 8 glasses per day",
		ExcellentRemark:       "Great job maintaining excellent wellness habits!",
		GoodRemark:            "You're on the right track - small improvements can make a big difference",
		ImproveRemark:         "Focus on gradual improvements in sleep, exercise, and hydration",

		IngredientPoints:   10,
		HealthyBonusPoints: 5,
		HealthyKeywords: []string{
			"vegetables", "fruits", "whole grains", "lean protein", "legumes",
		},
		IngredientUnitCost: 50,

		WasteItemPoints: 15,

		ExplorerMinActivities: 1,
		LearnerMinActivities:  5,
		ScholarMinActivities:  10,
		ExpertMinActivities:   20,

		ExcellentMinScore: 80,
		GoodMinScore:      60,
		FairMinScore:      40,
	}
}
