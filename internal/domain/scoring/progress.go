package scoring

import "math"

// EducationLevel labels a user's education progress tier.
type EducationLevel string

// Education levels, ordered from least to most activity.
const (
	EducationLevelBeginner EducationLevel = "Beginner"
	EducationLevelExplorer EducationLevel = "Explorer"
	EducationLevelLearner  EducationLevel = "Learner"
	EducationLevelScholar  EducationLevel = "Scholar"
	EducationLevelExpert   EducationLevel = "Expert"
)

// HealthStatus labels a user's average wellness tier.
type HealthStatus string

// Health statuses, ordered from best to worst.
const (
	HealthStatusExcellent        HealthStatus = "Excellent"
	HealthStatusGood             HealthStatus = "Good"
	HealthStatusFair             HealthStatus = "Fair"
	HealthStatusNeedsImprovement HealthStatus = "Needs Improvement"
)

// EducationProgress summarizes a user's learning history.
type EducationProgress struct {
	TotalActivities int            `json:"total_activities"`
	AverageProgress float64        `json:"average_progress"`
	Level           EducationLevel `json:"level"`
}

// HealthProgress summarizes a user's wellness tracking history.
type HealthProgress struct {
	TrackingSessions int          `json:"tracking_sessions"`
	AverageScore     float64      `json:"average_score"`
	Status           HealthStatus `json:"status"`
}

// NutritionProgress summarizes a user's meal planning and waste reduction
// history. It carries no categorical label, just the rounded numbers.
type NutritionProgress struct {
	MealPlans             int     `json:"meal_plans"`
	WasteReductionActions int     `json:"waste_reduction_actions"`
	AverageNutritionScore float64 `json:"average_nutrition_score"`
	AverageImpactScore    float64 `json:"average_impact_score"`
}

// educationLevel classifies an activity count into a level. The thresholds
// are inclusive lower bounds, so the ladder is total with no gaps or
// overlaps. avgProgress is reported alongside the label but does not affect
// it; the tiers are earned by volume of activity alone.
func educationLevel(activityCount int, avgProgress float64, params *Params) EducationLevel {
	_ = avgProgress

	switch {
	case activityCount >= params.ExpertMinActivities:
		return EducationLevelExpert
	case activityCount >= params.ScholarMinActivities:
		return EducationLevelScholar
	case activityCount >= params.LearnerMinActivities:
		return EducationLevelLearner
	case activityCount >= params.ExplorerMinActivities:
		return EducationLevelExplorer
	default:
		return EducationLevelBeginner
	}
}

// healthStatus classifies an average wellness score into a status. The
// thresholds are inclusive lower bounds: exactly 80 is Excellent, 79.99 is
// Good.
func healthStatus(avgWellnessScore float64, params *Params) HealthStatus {
	switch {
	case avgWellnessScore >= params.ExcellentMinScore:
		return HealthStatusExcellent
	case avgWellnessScore >= params.GoodMinScore:
		return HealthStatusGood
	case avgWellnessScore >= params.FairMinScore:
		return HealthStatusFair
	default:
		return HealthStatusNeedsImprovement
	}
}

// educationProgress builds the education summary from pre-aggregated store
// statistics.
func educationProgress(activityCount int, avgProgress float64, params *Params) EducationProgress {
	return EducationProgress{
		TotalActivities: activityCount,
		AverageProgress: round2(avgProgress),
		Level:           educationLevel(activityCount, avgProgress, params),
	}
}

// healthProgress builds the health summary from pre-aggregated store
// statistics.
func healthProgress(trackingCount int, avgScore float64, params *Params) HealthProgress {
	return HealthProgress{
		TrackingSessions: trackingCount,
		AverageScore:     round2(avgScore),
		Status:           healthStatus(avgScore, params),
	}
}

// nutritionProgress builds the nutrition summary from pre-aggregated store
// statistics.
func nutritionProgress(
	mealPlanCount int, avgNutritionScore float64,
	wasteActionCount int, avgImpactScore float64,
) NutritionProgress {
	return NutritionProgress{
		MealPlans:             mealPlanCount,
		WasteReductionActions: wasteActionCount,
		AverageNutritionScore: round2(avgNutritionScore),
		AverageImpactScore:    round2(avgImpactScore),
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
