package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/service"
)

func TestAnalyzeMood(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("successful analysis", func(t *testing.T) {
		handler := NewHealthHandler(&stubHealthService{
			analyzeMoodFn: func(ctx context.Context, uid uuid.UUID, moodText string) (*service.MoodAnalysis, error) {
				require.Equal(t, "I feel happy today", moodText)
				assessment, err := domain.NewMoodAssessment(
					uid, moodText, domain.SentimentPositive, 0.7,
					[]string{"Keep up the positive momentum", "Share your joy with others"},
				)
				require.NoError(t, err)
				return &service.MoodAnalysis{Assessment: assessment, MoodScore: 89}, nil
			},
		})

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/mental-health", map[string]interface{}{
			"mood_text": "I feel happy today",
		}), userID)
		rr := httptest.NewRecorder()
		handler.AnalyzeMood(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "POSITIVE", body["sentiment"])
		assert.InDelta(t, 70.0, body["confidence"], 0.001)
		assert.InDelta(t, 89.0, body["mood_score"], 0.001)
		assert.Len(t, body["recommendations"], 2)
		assert.NotEmpty(t, body["assessment_id"])
	})

	t.Run("missing mood text", func(t *testing.T) {
		handler := NewHealthHandler(&stubHealthService{})

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/mental-health", map[string]interface{}{}), userID)
		rr := httptest.NewRecorder()
		handler.AnalyzeMood(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "Mood text is required", body["error"])
	})

	t.Run("service input rejection maps to 400", func(t *testing.T) {
		handler := NewHealthHandler(&stubHealthService{
			analyzeMoodFn: func(ctx context.Context, uid uuid.UUID, moodText string) (*service.MoodAnalysis, error) {
				return nil, domain.ErrInvalidInput
			},
		})

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/mental-health", map[string]interface{}{
			"mood_text": "   ",
		}), userID)
		rr := httptest.NewRecorder()
		handler.AnalyzeMood(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTrackWellness(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("successful tracking", func(t *testing.T) {
		handler := NewHealthHandler(&stubHealthService{
			trackWellnessFn: func(ctx context.Context, uid uuid.UUID, sleepHours, exerciseMinutes, waterGlasses float64) (*service.WellnessReport, error) {
				require.Equal(t, 8.0, sleepHours)
				require.Equal(t, 30.0, exerciseMinutes)
				require.Equal(t, 8.0, waterGlasses)
				entry := &domain.WellnessEntry{
					ID:              uuid.New(),
					UserID:          uid,
					Type:            domain.TrackingTypeWellness,
					SleepHours:      sleepHours,
					ExerciseMinutes: exerciseMinutes,
					WaterGlasses:    waterGlasses,
					SleepScore:      100,
					ExerciseScore:   100,
					WaterScore:      100,
					OverallScore:    100,
				}
				return &service.WellnessReport{
					Entry:           entry,
					Recommendations: []string{"Excellent! Keep up your healthy habits!"},
				}, nil
			},
		})

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/wellness", map[string]interface{}{
			"sleep_hours":      8,
			"exercise_minutes": 30,
			"water_glasses":    8,
		}), userID)
		rr := httptest.NewRecorder()
		handler.TrackWellness(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, true, body["success"])
		assert.InDelta(t, 100.0, body["wellness_score"], 0.001)

		breakdown, ok := body["breakdown"].(map[string]interface{})
		require.True(t, ok, "breakdown should be an object")
		assert.InDelta(t, 8.0, breakdown["sleep_hours"], 0.001)
		assert.InDelta(t, 100.0, breakdown["sleep_score"], 0.001)
		assert.InDelta(t, 100.0, breakdown["overall_score"], 0.001)

		assert.Len(t, body["recommendations"], 1)
	})

	t.Run("negative metric rejected by validation", func(t *testing.T) {
		handler := NewHealthHandler(&stubHealthService{})

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/wellness", map[string]interface{}{
			"sleep_hours": -1,
		}), userID)
		rr := httptest.NewRecorder()
		handler.TrackWellness(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "Wellness metrics cannot be negative", body["error"])
	})

	t.Run("omitted metrics default to zero", func(t *testing.T) {
		var gotSleep, gotExercise, gotWater float64
		handler := NewHealthHandler(&stubHealthService{
			trackWellnessFn: func(ctx context.Context, uid uuid.UUID, sleepHours, exerciseMinutes, waterGlasses float64) (*service.WellnessReport, error) {
				gotSleep, gotExercise, gotWater = sleepHours, exerciseMinutes, waterGlasses
				return &service.WellnessReport{
					Entry: &domain.WellnessEntry{ID: uuid.New(), UserID: uid, Type: domain.TrackingTypeWellness},
				}, nil
			},
		})

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/wellness", map[string]interface{}{}), userID)
		rr := httptest.NewRecorder()
		handler.TrackWellness(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Zero(t, gotSleep)
		assert.Zero(t, gotExercise)
		assert.Zero(t, gotWater)
	})
}

func TestAnswerHealthQuestion(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("answer carries the short disclaimer", func(t *testing.T) {
		handler := NewHealthHandler(&stubHealthService{
			answerQuestionFn: func(ctx context.Context, uid uuid.UUID, question string) (*domain.QARecord, error) {
				return domain.NewQARecord(uid, question, "Health information about sleep", domain.CategoryHealth, 0.9)
			},
		})

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/health-questions", map[string]interface{}{
			"question": "How much sleep do I need?",
		}), userID)
		rr := httptest.NewRecorder()
		handler.AnswerHealthQuestion(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "How much sleep do I need?", body["question"])
		assert.Equal(t, "Health information about sleep", body["answer"])
		assert.Equal(t, service.HealthDisclaimerNote, body["disclaimer"])
	})

	t.Run("missing question", func(t *testing.T) {
		handler := NewHealthHandler(&stubHealthService{})

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/health-questions", map[string]interface{}{}), userID)
		rr := httptest.NewRecorder()
		handler.AnswerHealthQuestion(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
