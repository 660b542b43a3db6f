package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for nutrition entities
var (
	ErrEmptyNutritionUserID = errors.New("nutrition entry user ID cannot be empty")
	ErrEmptyIngredients     = errors.New("ingredients cannot be empty")
	ErrEmptyExpiringItems   = errors.New("expiring items cannot be empty")
)

// MealPlan represents a generated meal plan: the user-supplied ingredients
// (order preserved), the plan text, and the derived nutrition score and cost.
type MealPlan struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	Ingredients        []string  `json:"ingredients"`
	DietaryRestriction string    `json:"dietary_restriction"`
	PlanContent        string    `json:"plan_content"`
	NutritionScore     int       `json:"nutrition_score"`
	EstimatedCost      int       `json:"estimated_cost"`
	CreatedAt          time.Time `json:"created_at"`
}

// NewMealPlan creates a new MealPlan for the given user.
// Returns an error if validation fails.
func NewMealPlan(
	userID uuid.UUID,
	ingredients []string,
	dietaryRestriction string,
	planContent string,
	nutritionScore int,
	estimatedCost int,
) (*MealPlan, error) {
	plan := &MealPlan{
		ID:                 uuid.New(),
		UserID:             userID,
		Ingredients:        ingredients,
		DietaryRestriction: dietaryRestriction,
		PlanContent:        planContent,
		NutritionScore:     nutritionScore,
		EstimatedCost:      estimatedCost,
		CreatedAt:          time.Now().UTC(),
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	return plan, nil
}

// Validate checks if the MealPlan has valid data.
func (p *MealPlan) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyNutritionUserID
	}

	if len(p.Ingredients) == 0 {
		return ErrEmptyIngredients
	}

	return nil
}

// WasteReduction represents one food waste reduction action: the expiring
// items, the generated suggestions, and the derived impact score.
type WasteReduction struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ExpiringItems []string  `json:"expiring_items"`
	Suggestions   string    `json:"suggestions"`
	ImpactScore   int       `json:"impact_score"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewWasteReduction creates a new WasteReduction for the given user.
// Returns an error if validation fails.
func NewWasteReduction(
	userID uuid.UUID,
	expiringItems []string,
	suggestions string,
	impactScore int,
) (*WasteReduction, error) {
	reduction := &WasteReduction{
		ID:            uuid.New(),
		UserID:        userID,
		ExpiringItems: expiringItems,
		Suggestions:   suggestions,
		ImpactScore:   impactScore,
		CreatedAt:     time.Now().UTC(),
	}

	if err := reduction.Validate(); err != nil {
		return nil, err
	}

	return reduction, nil
}

// Validate checks if the WasteReduction has valid data.
func (r *WasteReduction) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrEmptyNutritionUserID
	}

	if len(r.ExpiringItems) == 0 {
		return ErrEmptyExpiringItems
	}

	return nil
}
