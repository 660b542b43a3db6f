package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/generation"
	"github.com/google/uuid"
)

// scriptedGenerator returns a fixed path or error.
type scriptedGenerator struct {
	path string
	err  error
}

func (g scriptedGenerator) GeneratePath(
	_ context.Context, topic string, _ domain.LearningLevel,
) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	if topic == "" {
		return "", generation.ErrEmptyTopic
	}
	return g.path, nil
}

func newTestLearningService(
	t *testing.T,
	learning *fakeLearningStore,
	qa *fakeQAStore,
	generator generation.Generator,
) LearningService {
	t.Helper()
	svc, err := NewLearningService(learning, qa, generator, stubAnswers{answer: "The sky is blue."}, nil)
	require.NoError(t, err)
	return svc
}

func TestLearningServiceGeneratePath(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("uses configured generator and persists", func(t *testing.T) {
		t.Parallel()

		learning := &fakeLearningStore{}
		svc := newTestLearningService(t, learning, &fakeQAStore{},
			scriptedGenerator{path: "Week 1: syntax. Week 2: concurrency."})

		activity, err := svc.GeneratePath(context.Background(), userID, "Go", domain.LearningLevelBeginner)
		require.NoError(t, err)

		assert.Equal(t, "Go", activity.Topic)
		assert.Equal(t, domain.LearningLevelBeginner, activity.Level)
		assert.Equal(t, "Week 1: syntax. Week 2: concurrency.", activity.LearningPath)
		require.Len(t, learning.activities, 1)
		assert.Equal(t, activity.ID, learning.activities[0].ID)
	})

	t.Run("falls back to template when generation fails", func(t *testing.T) {
		t.Parallel()

		learning := &fakeLearningStore{}
		svc := newTestLearningService(t, learning, &fakeQAStore{},
			scriptedGenerator{err: generation.ErrGenerationFailed})

		activity, err := svc.GeneratePath(context.Background(), userID, "algebra", domain.LearningLevelIntermediate)
		require.NoError(t, err)

		assert.Contains(t, activity.LearningPath, "Learning Path for algebra:")
		require.Len(t, learning.activities, 1)
	})

	t.Run("uses template when no generator configured", func(t *testing.T) {
		t.Parallel()

		learning := &fakeLearningStore{}
		svc := newTestLearningService(t, learning, &fakeQAStore{}, nil)

		activity, err := svc.GeneratePath(context.Background(), userID, "chemistry", domain.LearningLevelAdvanced)
		require.NoError(t, err)
		assert.Contains(t, activity.LearningPath, "Learning Path for chemistry:")
	})

	t.Run("rejects empty topic", func(t *testing.T) {
		t.Parallel()

		svc := newTestLearningService(t, &fakeLearningStore{}, &fakeQAStore{},
			scriptedGenerator{path: "unused"})

		_, err := svc.GeneratePath(context.Background(), userID, "", domain.LearningLevelBeginner)
		assert.ErrorIs(t, err, generation.ErrEmptyTopic)
	})
}

func TestLearningServiceAskQuestion(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("records provider answer with fixed confidence", func(t *testing.T) {
		t.Parallel()

		qa := &fakeQAStore{}
		svc := newTestLearningService(t, &fakeLearningStore{}, qa, nil)

		record, err := svc.AskQuestion(context.Background(), userID, "Why is the sky blue?")
		require.NoError(t, err)

		assert.Equal(t, "Why is the sky blue?", record.Question)
		assert.Equal(t, "The sky is blue.", record.Answer)
		assert.Equal(t, domain.CategoryEducation, record.Category)
		assert.InDelta(t, 0.85, record.Confidence, 1e-9)
		require.Len(t, qa.records, 1)
	})

	t.Run("rejects empty question", func(t *testing.T) {
		t.Parallel()

		svc := newTestLearningService(t, &fakeLearningStore{}, &fakeQAStore{}, nil)

		_, err := svc.AskQuestion(context.Background(), userID, "")
		assert.Error(t, err)
	})
}
