package api

import (
	"github.com/google/uuid"
)

// Common request/response structures. JSON field names are part of the
// public API contract and must not change.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
	Phone    string `json:"phone"    validate:"omitempty,max=32"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	Message      string    `json:"message,omitempty"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       uuid.UUID `json:"user_id"`

	// IsPremium is only populated on login.
	IsPremium *bool `json:"is_premium,omitempty"`
}

// LearningPathRequest defines the payload for learning path generation.
type LearningPathRequest struct {
	Topic string `json:"topic" validate:"required,min=1"`
	Level string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// LearningPathResponse defines the successful learning path response.
type LearningPathResponse struct {
	Success      bool      `json:"success"`
	ActivityID   uuid.UUID `json:"activity_id"`
	LearningPath string    `json:"learning_path"`
	Topic        string    `json:"topic"`
	Level        string    `json:"level"`
}

// QuestionRequest defines the payload shared by the question endpoints.
type QuestionRequest struct {
	Question string `json:"question" validate:"required,min=1"`
}

// QuestionResponse defines the successful response for education questions.
// Confidence is scaled to a 0-100 percentage, rounded to two decimals.
type QuestionResponse struct {
	Success    bool    `json:"success"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
}

// MoodRequest defines the payload for the mental health endpoint.
type MoodRequest struct {
	MoodText string `json:"mood_text" validate:"required,min=1"`
}

// MoodResponse defines the successful mental health analysis response.
type MoodResponse struct {
	Success         bool      `json:"success"`
	AssessmentID    uuid.UUID `json:"assessment_id"`
	Sentiment       string    `json:"sentiment"`
	Confidence      float64   `json:"confidence"`
	Recommendations []string  `json:"recommendations"`
	MoodScore       float64   `json:"mood_score"`
}

// WellnessRequest defines the payload for the wellness tracking endpoint.
// Metrics default to zero when omitted; negative values are rejected.
type WellnessRequest struct {
	SleepHours      float64 `json:"sleep_hours"      validate:"gte=0"`
	ExerciseMinutes float64 `json:"exercise_minutes" validate:"gte=0"`
	WaterGlasses    float64 `json:"water_glasses"    validate:"gte=0"`
}

// WellnessBreakdown mirrors the per-metric detail stored with each
// wellness entry: the raw inputs plus the derived scores.
type WellnessBreakdown struct {
	SleepHours      float64 `json:"sleep_hours"`
	ExerciseMinutes float64 `json:"exercise_minutes"`
	WaterGlasses    float64 `json:"water_glasses"`
	SleepScore      float64 `json:"sleep_score"`
	ExerciseScore   float64 `json:"exercise_score"`
	WaterScore      float64 `json:"water_score"`
	OverallScore    int     `json:"overall_score"`
}

// WellnessResponse defines the successful wellness tracking response.
type WellnessResponse struct {
	Success         bool              `json:"success"`
	TrackingID      uuid.UUID         `json:"tracking_id"`
	WellnessScore   int               `json:"wellness_score"`
	Breakdown       WellnessBreakdown `json:"breakdown"`
	Recommendations []string          `json:"recommendations"`
}

// AdviceResponse defines the successful response for the health question
// and nutrition advice endpoints. AnswerField and AdviceField are mutually
// exclusive, matching the per-endpoint contract.
type AdviceResponse struct {
	Success    bool   `json:"success"`
	Question   string `json:"question"`
	Answer     string `json:"answer,omitempty"`
	Advice     string `json:"advice,omitempty"`
	Disclaimer string `json:"disclaimer"`
}

// MealPlanRequest defines the payload for meal plan generation.
// Ingredients is a comma-separated list.
type MealPlanRequest struct {
	Ingredients         string `json:"ingredients" validate:"required,min=1"`
	DietaryRestrictions string `json:"dietary_restrictions"`
}

// MealPlanResponse defines the successful meal plan response.
type MealPlanResponse struct {
	Success             bool      `json:"success"`
	PlanID              uuid.UUID `json:"plan_id"`
	MealPlan            string    `json:"meal_plan"`
	NutritionScore      int       `json:"nutrition_score"`
	IngredientsUsed     []string  `json:"ingredients_used"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
}

// WasteRequest defines the payload for waste reduction suggestions.
// ExpiringItems is a comma-separated list.
type WasteRequest struct {
	ExpiringItems string `json:"expiring_items" validate:"required,min=1"`
}

// WasteResponse defines the successful waste reduction response.
type WasteResponse struct {
	Success             bool      `json:"success"`
	ReductionID         uuid.UUID `json:"reduction_id"`
	Suggestions         string    `json:"suggestions"`
	ImpactScore         int       `json:"impact_score"`
	ItemsSaved          int       `json:"items_saved"`
	EnvironmentalImpact string    `json:"environmental_impact"`
}

// DashboardResponse wraps the assembled dashboard view.
type DashboardResponse struct {
	Success   bool        `json:"success"`
	Dashboard interface{} `json:"dashboard"`
}

// HistoryResponse wraps a category history listing.
type HistoryResponse struct {
	Success  bool        `json:"success"`
	Category string      `json:"category"`
	History  interface{} `json:"history"`
}

// StatusResponse is the version banner served at /api/status.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}
