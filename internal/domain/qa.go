package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category tags a question-answer record with the SDG domain it belongs to.
type Category string

// The fixed set of categories.
const (
	CategoryEducation Category = "education"
	CategoryHealth    Category = "health"
	CategoryNutrition Category = "nutrition"
)

// Common validation errors for QARecord
var (
	ErrEmptyQAUserID = errors.New("QA record user ID cannot be empty")
	ErrEmptyQuestion = errors.New("question cannot be empty")
	ErrEmptyAnswer   = errors.New("answer cannot be empty")
)

// ParseCategory validates a raw category string against the fixed set.
// Returns ErrUnknownCategory for anything outside it.
func ParseCategory(raw string) (Category, error) {
	switch Category(raw) {
	case CategoryEducation, CategoryHealth, CategoryNutrition:
		return Category(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
}

// QARecord represents one answered question stored in the user's history.
type QARecord struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Category   Category  `json:"category"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewQARecord creates a new QARecord for the given user.
// Returns an error if validation fails.
func NewQARecord(
	userID uuid.UUID,
	question, answer string,
	category Category,
	confidence float64,
) (*QARecord, error) {
	record := &QARecord{
		ID:         uuid.New(),
		UserID:     userID,
		Question:   question,
		Answer:     answer,
		Category:   category,
		Confidence: confidence,
		CreatedAt:  time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the QARecord has valid data.
func (r *QARecord) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrEmptyQAUserID
	}

	if r.Question == "" {
		return ErrEmptyQuestion
	}

	if r.Answer == "" {
		return ErrEmptyAnswer
	}

	if _, err := ParseCategory(string(r.Category)); err != nil {
		return err
	}

	if r.Confidence < 0 || r.Confidence > 1 {
		return ErrInvalidConfidence
	}

	return nil
}
