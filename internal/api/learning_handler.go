package api

import (
	"math"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/empowerhub/empowerhub-api/internal/api/shared"
	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/service"
)

// LearningHandler handles learning path and education question requests.
type LearningHandler struct {
	learningService service.LearningService
	validator       *validator.Validate
}

// NewLearningHandler creates a new LearningHandler with the given dependencies.
func NewLearningHandler(learningService service.LearningService) *LearningHandler {
	return &LearningHandler{
		learningService: learningService,
		validator:       validator.New(),
	}
}

// GeneratePath handles POST /api/learning-paths.
func (h *LearningHandler) GeneratePath(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req LearningPathRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Topic is required")
		return
	}

	level := domain.LearningLevel(req.Level)
	if req.Level == "" {
		level = domain.LearningLevelBeginner
	}

	activity, err := h.learningService.GeneratePath(r.Context(), userID, req.Topic, level)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LearningPathResponse{
		Success:      true,
		ActivityID:   activity.ID,
		LearningPath: activity.LearningPath,
		Topic:        activity.Topic,
		Level:        string(activity.Level),
	})
}

// AskQuestion handles POST /api/questions.
func (h *LearningHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
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

	record, err := h.learningService.AskQuestion(r.Context(), userID, req.Question)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuestionResponse{
		Success:    true,
		Question:   record.Question,
		Answer:     record.Answer,
		Confidence: confidencePercent(record.Confidence),
	})
}

// confidencePercent scales a [0,1] confidence to a percentage rounded to
// two decimal places, the form clients display.
func confidencePercent(confidence float64) float64 {
	return math.Round(confidence*100*100) / 100
}
