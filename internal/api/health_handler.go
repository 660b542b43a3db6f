package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/empowerhub/empowerhub-api/internal/api/shared"
	"github.com/empowerhub/empowerhub-api/internal/service"
)

// HealthHandler handles mental health, wellness tracking, and health
// question requests.
type HealthHandler struct {
	healthService service.HealthService
	validator     *validator.Validate
}

// NewHealthHandler creates a new HealthHandler with the given dependencies.
func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		validator:     validator.New(),
	}
}

// AnalyzeMood handles POST /api/mental-health.
func (h *HealthHandler) AnalyzeMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req MoodRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Mood text is required")
		return
	}

	analysis, err := h.healthService.AnalyzeMood(r.Context(), userID, req.MoodText)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	assessment := analysis.Assessment
	shared.RespondWithJSON(w, r, http.StatusOK, MoodResponse{
		Success:         true,
		AssessmentID:    assessment.ID,
		Sentiment:       string(assessment.Sentiment),
		Confidence:      confidencePercent(assessment.Confidence),
		Recommendations: assessment.Recommendations,
		MoodScore:       analysis.MoodScore,
	})
}

// TrackWellness handles POST /api/wellness.
func (h *HealthHandler) TrackWellness(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req WellnessRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Wellness metrics cannot be negative")
		return
	}

	report, err := h.healthService.TrackWellness(
		r.Context(), userID, req.SleepHours, req.ExerciseMinutes, req.WaterGlasses)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	entry := report.Entry
	shared.RespondWithJSON(w, r, http.StatusOK, WellnessResponse{
		Success:       true,
		TrackingID:    entry.ID,
		WellnessScore: entry.OverallScore,
		Breakdown: WellnessBreakdown{
			SleepHours:      entry.SleepHours,
			ExerciseMinutes: entry.ExerciseMinutes,
			WaterGlasses:    entry.WaterGlasses,
			SleepScore:      entry.SleepScore,
			ExerciseScore:   entry.ExerciseScore,
			WaterScore:      entry.WaterScore,
			OverallScore:    entry.OverallScore,
		},
		Recommendations: report.Recommendations,
	})
}

// AnswerHealthQuestion handles POST /api/health-questions.
func (h *HealthHandler) AnswerHealthQuestion(w http.ResponseWriter, r *http.Request) {
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
		shared.RespondWithError(w, r, http.StatusBadRequest, "Question is required")
		return
	}

	record, err := h.healthService.AnswerHealthQuestion(r.Context(), userID, req.Question)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AdviceResponse{
		Success:    true,
		Question:   record.Question,
		Answer:     record.Answer,
		Disclaimer: service.HealthDisclaimerNote,
	})
}
