package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/generation"
	"github.com/empowerhub/empowerhub-api/internal/platform/logger"
	"github.com/empowerhub/empowerhub-api/internal/store"
)

// questionConfidence is the confidence recorded for provider-backed answers.
const questionConfidence = 0.85

// LearningService provides learning path generation and question answering.
type LearningService interface {
	// GeneratePath produces learning path content for the topic, persists
	// the resulting activity, and returns it. Generation failures fall back
	// to the deterministic template; they never surface to the caller.
	GeneratePath(
		ctx context.Context,
		userID uuid.UUID,
		topic string,
		level domain.LearningLevel,
	) (*domain.LearningActivity, error)

	// AskQuestion answers an educational question via the answer provider
	// and records the exchange in the QA history with confidence 0.85.
	AskQuestion(ctx context.Context, userID uuid.UUID, question string) (*domain.QARecord, error)
}

// learningServiceImpl implements the LearningService interface.
type learningServiceImpl struct {
	learningStore store.LearningStore
	qaStore       store.QAStore
	generator     generation.Generator
	fallback      generation.Generator
	answers       AnswerProvider
	logger        *slog.Logger
}

// Ensure learningServiceImpl implements LearningService interface
var _ LearningService = (*learningServiceImpl)(nil)

// NewLearningService creates a new LearningService.
// generator may be nil, in which case the template fallback is used for all
// paths. The remaining dependencies are required.
func NewLearningService(
	learningStore store.LearningStore,
	qaStore store.QAStore,
	generator generation.Generator,
	answers AnswerProvider,
	log *slog.Logger,
) (LearningService, error) {
	if learningStore == nil {
		return nil, errors.New("learning store cannot be nil")
	}
	if qaStore == nil {
		return nil, errors.New("qa store cannot be nil")
	}
	if answers == nil {
		return nil, errors.New("answer provider cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &learningServiceImpl{
		learningStore: learningStore,
		qaStore:       qaStore,
		generator:     generator,
		fallback:      generation.NewTemplateGenerator(),
		answers:       answers,
		logger:        log.With(slog.String("component", "learning_service")),
	}, nil
}

// GeneratePath implements LearningService.GeneratePath
func (s *learningServiceImpl) GeneratePath(
	ctx context.Context,
	userID uuid.UUID,
	topic string,
	level domain.LearningLevel,
) (*domain.LearningActivity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	content, err := s.generateContent(ctx, topic, level)
	if err != nil {
		return nil, err
	}

	activity, err := domain.NewLearningActivity(userID, topic, level, content)
	if err != nil {
		return nil, err
	}

	if err := s.learningStore.Create(ctx, activity); err != nil {
		return nil, err
	}

	log.Info("learning path generated",
		slog.String("user_id", userID.String()),
		slog.String("topic", topic),
		slog.String("level", string(level)))
	return activity, nil
}

// generateContent tries the configured generator first and falls back to the
// deterministic template on any failure. Empty-topic errors are not
// retried against the fallback: no generator can serve them.
func (s *learningServiceImpl) generateContent(
	ctx context.Context,
	topic string,
	level domain.LearningLevel,
) (string, error) {
	if s.generator != nil {
		content, err := s.generator.GeneratePath(ctx, topic, level)
		if err == nil {
			return content, nil
		}
		if errors.Is(err, generation.ErrEmptyTopic) {
			return "", err
		}

		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Warn("path generation failed, using template fallback",
			slog.String("error", err.Error()),
			slog.String("topic", topic))
	}

	return s.fallback.GeneratePath(ctx, topic, level)
}

// AskQuestion implements LearningService.AskQuestion
func (s *learningServiceImpl) AskQuestion(
	ctx context.Context,
	userID uuid.UUID,
	question string,
) (*domain.QARecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	answer := s.answers.Answer(ctx, question)

	record, err := domain.NewQARecord(userID, question, answer, domain.CategoryEducation, questionConfidence)
	if err != nil {
		return nil, err
	}

	if err := s.qaStore.Create(ctx, record); err != nil {
		return nil, err
	}

	log.Info("question answered",
		slog.String("user_id", userID.String()),
		slog.String("record_id", record.ID.String()))
	return record, nil
}
