package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/domain/scoring"
	"github.com/google/uuid"
)

func newTestHealthService(
	t *testing.T,
	wellness *fakeWellnessStore,
	assessments *fakeAssessmentStore,
	qa *fakeQAStore,
) HealthService {
	t.Helper()
	svc, err := NewHealthService(
		wellness, assessments, qa,
		scoring.NewDefaultService(),
		stubAdvice{tip: "Take a short walk outside."},
		nil,
	)
	require.NoError(t, err)
	return svc
}

func TestHealthServiceAnalyzeMood(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("positive text yields positive assessment", func(t *testing.T) {
		t.Parallel()

		assessments := &fakeAssessmentStore{}
		svc := newTestHealthService(t, &fakeWellnessStore{}, assessments, &fakeQAStore{})

		analysis, err := svc.AnalyzeMood(context.Background(), userID, "I feel happy and excited today")
		require.NoError(t, err)

		assert.Equal(t, domain.SentimentPositive, analysis.Assessment.Sentiment)
		assert.InDelta(t, 0.7, analysis.Assessment.Confidence, 1e-9)
		assert.InDelta(t, 89, analysis.MoodScore, 1e-9)

		// Three fixed recommendations plus the appended advice tip
		require.Len(t, analysis.Assessment.Recommendations, 4)
		assert.Equal(t, "Take a short walk outside.",
			analysis.Assessment.Recommendations[len(analysis.Assessment.Recommendations)-1])

		require.Len(t, assessments.assessments, 1)
		assert.Equal(t, analysis.Assessment.ID, assessments.assessments[0].ID)
	})

	t.Run("negative text yields negative assessment", func(t *testing.T) {
		t.Parallel()

		svc := newTestHealthService(t, &fakeWellnessStore{}, &fakeAssessmentStore{}, &fakeQAStore{})

		analysis, err := svc.AnalyzeMood(context.Background(), userID, "so stressed and anxious lately")
		require.NoError(t, err)

		assert.Equal(t, domain.SentimentNegative, analysis.Assessment.Sentiment)
		// Four fixed recommendations plus the advice tip
		assert.Len(t, analysis.Assessment.Recommendations, 5)
	})

	t.Run("rejects empty mood text", func(t *testing.T) {
		t.Parallel()

		svc := newTestHealthService(t, &fakeWellnessStore{}, &fakeAssessmentStore{}, &fakeQAStore{})

		_, err := svc.AnalyzeMood(context.Background(), userID, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestHealthServiceTrackWellness(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("persists entry with derived scores", func(t *testing.T) {
		t.Parallel()

		wellness := &fakeWellnessStore{}
		svc := newTestHealthService(t, wellness, &fakeAssessmentStore{}, &fakeQAStore{})

		report, err := svc.TrackWellness(context.Background(), userID, 8, 30, 8)
		require.NoError(t, err)

		assert.Equal(t, 100, report.Entry.OverallScore)
		assert.Equal(t, domain.TrackingTypeWellness, report.Entry.Type)
		assert.InDelta(t, 100, report.Entry.SleepScore, 1e-9)

		// All targets met: only the excellent-habits remark
		require.Len(t, report.Recommendations, 1)
		assert.Contains(t, report.Recommendations[0], "excellent wellness habits")

		require.Len(t, wellness.entries, 1)
	})

	t.Run("low metrics produce tips and closing remark", func(t *testing.T) {
		t.Parallel()

		svc := newTestHealthService(t, &fakeWellnessStore{}, &fakeAssessmentStore{}, &fakeQAStore{})

		report, err := svc.TrackWellness(context.Background(), userID, 2, 5, 1)
		require.NoError(t, err)

		// Three sub-score tips plus the low-score closing remark
		require.Len(t, report.Recommendations, 4)
		assert.Contains(t, report.Recommendations[0], "sleep")
	})

	t.Run("rejects negative metrics", func(t *testing.T) {
		t.Parallel()

		wellness := &fakeWellnessStore{}
		svc := newTestHealthService(t, wellness, &fakeAssessmentStore{}, &fakeQAStore{})

		_, err := svc.TrackWellness(context.Background(), userID, -1, 30, 8)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, wellness.entries, "nothing may be persisted on rejection")
	})
}

func TestHealthServiceAnswerHealthQuestion(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("stores canned answer with disclaimer", func(t *testing.T) {
		t.Parallel()

		qa := &fakeQAStore{}
		svc := newTestHealthService(t, &fakeWellnessStore{}, &fakeAssessmentStore{}, qa)

		record, err := svc.AnswerHealthQuestion(context.Background(), userID, "How much sleep do I need?")
		require.NoError(t, err)

		assert.Equal(t, domain.CategoryHealth, record.Category)
		assert.InDelta(t, 0.9, record.Confidence, 1e-9)
		assert.True(t, strings.HasPrefix(record.Answer, "Health information about How much sleep do I need?:"))
		assert.Contains(t, record.Answer, "IMPORTANT: This information is for educational purposes only")
		require.Len(t, qa.records, 1)
	})

	t.Run("rejects empty question", func(t *testing.T) {
		t.Parallel()

		svc := newTestHealthService(t, &fakeWellnessStore{}, &fakeAssessmentStore{}, &fakeQAStore{})

		_, err := svc.AnswerHealthQuestion(context.Background(), userID, "")
		assert.Error(t, err)
	})
}
