package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/domain/scoring"
	"github.com/empowerhub/empowerhub-api/internal/platform/logger"
	"github.com/empowerhub/empowerhub-api/internal/store"
)

// healthAnswerConfidence is the confidence recorded for health QA records.
const healthAnswerConfidence = 0.9

// healthDisclaimer is appended to every health answer before storage.
const healthDisclaimer = "\n\n⚠️ IMPORTANT: This information is for educational purposes only " +
	"and should not replace professional medical advice. Always consult with a healthcare " +
	"provider for medical concerns."

// HealthDisclaimerNote is the short disclaimer returned alongside health
// answers.
const HealthDisclaimerNote = "Always consult healthcare professionals for medical advice"

// MoodAnalysis is the outcome of analyzing a mood text: the persisted
// assessment plus the derived mood score.
type MoodAnalysis struct {
	Assessment *domain.MoodAssessment
	MoodScore  float64
}

// WellnessReport is the outcome of tracking a wellness sample: the persisted
// entry plus recommendations derived from its scores.
type WellnessReport struct {
	Entry           *domain.WellnessEntry
	Recommendations []string
}

// HealthService provides mood analysis, wellness tracking, and health QA.
type HealthService interface {
	// AnalyzeMood classifies the mood text, derives recommendations with one
	// appended external advice tip, persists the assessment, and returns it
	// together with the mood score.
	AnalyzeMood(ctx context.Context, userID uuid.UUID, moodText string) (*MoodAnalysis, error)

	// TrackWellness scores a wellness sample, persists the entry, and
	// returns it with recommendations. Returns an error wrapping
	// domain.ErrInvalidInput for negative metrics.
	TrackWellness(
		ctx context.Context,
		userID uuid.UUID,
		sleepHours, exerciseMinutes, waterGlasses float64,
	) (*WellnessReport, error)

	// AnswerHealthQuestion records a health question with a canned answer
	// and disclaimer in the QA history with confidence 0.9.
	AnswerHealthQuestion(ctx context.Context, userID uuid.UUID, question string) (*domain.QARecord, error)
}

// healthServiceImpl implements the HealthService interface.
type healthServiceImpl struct {
	wellnessStore   store.WellnessStore
	assessmentStore store.AssessmentStore
	qaStore         store.QAStore
	scorer          scoring.Service
	advice          AdviceProvider
	logger          *slog.Logger
}

// Ensure healthServiceImpl implements HealthService interface
var _ HealthService = (*healthServiceImpl)(nil)

// NewHealthService creates a new HealthService with the given dependencies.
func NewHealthService(
	wellnessStore store.WellnessStore,
	assessmentStore store.AssessmentStore,
	qaStore store.QAStore,
	scorer scoring.Service,
	advice AdviceProvider,
	log *slog.Logger,
) (HealthService, error) {
	if wellnessStore == nil {
		return nil, errors.New("wellness store cannot be nil")
	}
	if assessmentStore == nil {
		return nil, errors.New("assessment store cannot be nil")
	}
	if qaStore == nil {
		return nil, errors.New("qa store cannot be nil")
	}
	if scorer == nil {
		return nil, errors.New("scoring service cannot be nil")
	}
	if advice == nil {
		return nil, errors.New("advice provider cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &healthServiceImpl{
		wellnessStore:   wellnessStore,
		assessmentStore: assessmentStore,
		qaStore:         qaStore,
		scorer:          scorer,
		advice:          advice,
		logger:          log.With(slog.String("component", "health_service")),
	}, nil
}

// AnalyzeMood implements HealthService.AnalyzeMood
func (s *healthServiceImpl) AnalyzeMood(
	ctx context.Context,
	userID uuid.UUID,
	moodText string,
) (*MoodAnalysis, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if moodText == "" {
		return nil, fmt.Errorf("%w: mood text is required", domain.ErrInvalidInput)
	}

	result := s.scorer.ClassifySentiment(moodText)

	recommendations := s.scorer.MentalHealthRecommendations(result.Label)
	recommendations = append(recommendations, s.advice.RandomTip(ctx))

	assessment, err := domain.NewMoodAssessment(
		userID, moodText, result.Label, result.Confidence, recommendations,
	)
	if err != nil {
		return nil, err
	}

	if err := s.assessmentStore.Create(ctx, assessment); err != nil {
		return nil, err
	}

	log.Info("mood analyzed",
		slog.String("user_id", userID.String()),
		slog.String("sentiment", string(result.Label)))

	return &MoodAnalysis{
		Assessment: assessment,
		MoodScore:  s.scorer.MoodScore(result.Label, result.Confidence),
	}, nil
}

// TrackWellness implements HealthService.TrackWellness
func (s *healthServiceImpl) TrackWellness(
	ctx context.Context,
	userID uuid.UUID,
	sleepHours, exerciseMinutes, waterGlasses float64,
) (*WellnessReport, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	breakdown, err := s.scorer.WellnessScores(sleepHours, exerciseMinutes, waterGlasses)
	if err != nil {
		return nil, err
	}

	entry := &domain.WellnessEntry{
		ID:              uuid.New(),
		UserID:          userID,
		Type:            domain.TrackingTypeWellness,
		SleepHours:      sleepHours,
		ExerciseMinutes: exerciseMinutes,
		WaterGlasses:    waterGlasses,
		SleepScore:      breakdown.SleepScore,
		ExerciseScore:   breakdown.ExerciseScore,
		WaterScore:      breakdown.WaterScore,
		OverallScore:    breakdown.OverallScore,
		CreatedAt:       timeNow(),
	}

	if err := s.wellnessStore.Create(ctx, entry); err != nil {
		return nil, err
	}

	log.Info("wellness tracked",
		slog.String("user_id", userID.String()),
		slog.Int("overall_score", entry.OverallScore))

	return &WellnessReport{
		Entry:           entry,
		Recommendations: s.scorer.WellnessRecommendations(breakdown),
	}, nil
}

// AnswerHealthQuestion implements HealthService.AnswerHealthQuestion
func (s *healthServiceImpl) AnswerHealthQuestion(
	ctx context.Context,
	userID uuid.UUID,
	question string,
) (*domain.QARecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	answer := fmt.Sprintf(
		"Health information about %s: This is a demo response. "+
			"Always consult healthcare professionals for medical advice.",
		question,
	) + healthDisclaimer

	record, err := domain.NewQARecord(userID, question, answer, domain.CategoryHealth, healthAnswerConfidence)
	if err != nil {
		return nil, err
	}

	if err := s.qaStore.Create(ctx, record); err != nil {
		return nil, err
	}

	log.Info("health question answered",
		slog.String("user_id", userID.String()),
		slog.String("record_id", record.ID.String()))
	return record, nil
}
