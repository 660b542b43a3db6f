package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// LearningLevel represents the difficulty tier of a learning activity.
type LearningLevel string

// Possible learning level values
const (
	LearningLevelBeginner     LearningLevel = "beginner"
	LearningLevelIntermediate LearningLevel = "intermediate"
	LearningLevelAdvanced     LearningLevel = "advanced"
)

// Common validation errors for LearningActivity
var (
	ErrEmptyActivityUserID  = errors.New("learning activity user ID cannot be empty")
	ErrEmptyTopic           = errors.New("learning topic cannot be empty")
	ErrInvalidLearningLevel = errors.New("invalid learning level")
	ErrInvalidProgress      = errors.New("progress must be between 0 and 100")
)

// LearningActivity represents a generated learning path for a topic,
// along with the user's completion progress on it.
type LearningActivity struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	Topic        string        `json:"topic"`
	Level        LearningLevel `json:"level"`
	LearningPath string        `json:"learning_path"`
	Progress     int           `json:"progress"`
	CreatedAt    time.Time     `json:"created_at"`
}

// NewLearningActivity creates a new LearningActivity with zero progress.
// Returns an error if validation fails.
func NewLearningActivity(
	userID uuid.UUID,
	topic string,
	level LearningLevel,
	learningPath string,
) (*LearningActivity, error) {
	activity := &LearningActivity{
		ID:           uuid.New(),
		UserID:       userID,
		Topic:        topic,
		Level:        level,
		LearningPath: learningPath,
		CreatedAt:    time.Now().UTC(),
	}

	if err := activity.Validate(); err != nil {
		return nil, err
	}

	return activity, nil
}

// Validate checks if the LearningActivity has valid data.
func (a *LearningActivity) Validate() error {
	if a.UserID == uuid.Nil {
		return ErrEmptyActivityUserID
	}

	if a.Topic == "" {
		return ErrEmptyTopic
	}

	switch a.Level {
	case LearningLevelBeginner, LearningLevelIntermediate, LearningLevelAdvanced:
	default:
		return ErrInvalidLearningLevel
	}

	if a.Progress < 0 || a.Progress > 100 {
		return ErrInvalidProgress
	}

	return nil
}
