package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentiment is the categorical result of classifying a piece of mood text.
type Sentiment string

// Possible sentiment labels. The string values are contractual: they are
// persisted and returned to API clients verbatim.
const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
)

// TrackingType distinguishes the kinds of health tracking entries.
type TrackingType string

// Possible tracking type values
const (
	TrackingTypeMentalHealth TrackingType = "mental_health"
	TrackingTypeWellness     TrackingType = "wellness"
	TrackingTypeSymptoms     TrackingType = "symptoms"
)

// Common validation errors for health entities
var (
	ErrEmptyHealthUserID   = errors.New("health entry user ID cannot be empty")
	ErrInvalidTrackingType = errors.New("invalid tracking type")
	ErrEmptyMoodText       = errors.New("mood text cannot be empty")
	ErrInvalidSentiment    = errors.New("invalid sentiment label")
	ErrInvalidConfidence   = errors.New("confidence must be between 0 and 1")
)

// WellnessEntry represents one wellness tracking event: the raw metrics the
// user reported and the scores derived from them. Scores are immutable once
// computed.
type WellnessEntry struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	Type            TrackingType `json:"type"`
	SleepHours      float64      `json:"sleep_hours"`
	ExerciseMinutes float64      `json:"exercise_minutes"`
	WaterGlasses    float64      `json:"water_glasses"`
	SleepScore      float64      `json:"sleep_score"`
	ExerciseScore   float64      `json:"exercise_score"`
	WaterScore      float64      `json:"water_score"`
	OverallScore    int          `json:"overall_score"`
	CreatedAt       time.Time    `json:"created_at"`
}

// Validate checks if the WellnessEntry has valid data.
func (e *WellnessEntry) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrEmptyHealthUserID
	}

	switch e.Type {
	case TrackingTypeMentalHealth, TrackingTypeWellness, TrackingTypeSymptoms:
	default:
		return ErrInvalidTrackingType
	}

	return nil
}

// MoodAssessment represents one mental health check-in: the text the user
// submitted, its classification, and the recommendations produced for it.
type MoodAssessment struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Text            string    `json:"text"`
	Sentiment       Sentiment `json:"sentiment"`
	Confidence      float64   `json:"confidence"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewMoodAssessment creates a new MoodAssessment for the given user.
// Returns an error if validation fails.
func NewMoodAssessment(
	userID uuid.UUID,
	text string,
	sentiment Sentiment,
	confidence float64,
	recommendations []string,
) (*MoodAssessment, error) {
	assessment := &MoodAssessment{
		ID:              uuid.New(),
		UserID:          userID,
		Text:            text,
		Sentiment:       sentiment,
		Confidence:      confidence,
		Recommendations: recommendations,
		CreatedAt:       time.Now().UTC(),
	}

	if err := assessment.Validate(); err != nil {
		return nil, err
	}

	return assessment, nil
}

// Validate checks if the MoodAssessment has valid data.
func (a *MoodAssessment) Validate() error {
	if a.UserID == uuid.Nil {
		return ErrEmptyHealthUserID
	}

	if a.Text == "" {
		return ErrEmptyMoodText
	}

	switch a.Sentiment {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
	default:
		return ErrInvalidSentiment
	}

	if a.Confidence < 0 || a.Confidence > 1 {
		return ErrInvalidConfidence
	}

	return nil
}
