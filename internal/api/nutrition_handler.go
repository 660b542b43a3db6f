package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/empowerhub/empowerhub-api/internal/api/shared"
	"github.com/empowerhub/empowerhub-api/internal/service"
)

// defaultDietaryRestriction is recorded when the client omits one.
const defaultDietaryRestriction = "none"

// NutritionHandler handles meal planning, waste reduction, and nutrition
// advice requests.
type NutritionHandler struct {
	nutritionService service.NutritionService
	validator        *validator.Validate
}

// NewNutritionHandler creates a new NutritionHandler with the given dependencies.
func NewNutritionHandler(nutritionService service.NutritionService) *NutritionHandler {
	return &NutritionHandler{
		nutritionService: nutritionService,
		validator:        validator.New(),
	}
}

// GenerateMealPlan handles POST /api/meal-plans.
func (h *NutritionHandler) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req MealPlanRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Ingredients are required")
		return
	}

	restriction := req.DietaryRestrictions
	if restriction == "" {
		restriction = defaultDietaryRestriction
	}

	ingredients := splitCommaList(req.Ingredients)
	plan, err := h.nutritionService.GenerateMealPlan(r.Context(), userID, ingredients, restriction)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MealPlanResponse{
		Success:             true,
		PlanID:              plan.ID,
		MealPlan:            plan.PlanContent,
		NutritionScore:      plan.NutritionScore,
		IngredientsUsed:     plan.Ingredients,
		DietaryRestrictions: plan.DietaryRestriction,
	})
}

// ReduceWaste handles POST /api/waste-reductions.
func (h *NutritionHandler) ReduceWaste(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req WasteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Expiring items are required")
		return
	}

	items := splitCommaList(req.ExpiringItems)
	result, err := h.nutritionService.ReduceWaste(r.Context(), userID, items)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, WasteResponse{
		Success:             true,
		ReductionID:         result.Reduction.ID,
		Suggestions:         result.Reduction.Suggestions,
		ImpactScore:         result.Reduction.ImpactScore,
		ItemsSaved:          result.ItemsSaved,
		EnvironmentalImpact: result.EnvironmentalImpact,
	})
}

// AnswerNutritionQuestion handles POST /api/nutrition-advice.
func (h *NutritionHandler) AnswerNutritionQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req QuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Nutrition question is required")
		return
	}

	record, err := h.nutritionService.AnswerNutritionQuestion(r.Context(), userID, req.Question)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AdviceResponse{
		Success:    true,
		Question:   record.Question,
		Advice:     record.Answer,
		Disclaimer: service.NutritionDisclaimerNote,
	})
}
