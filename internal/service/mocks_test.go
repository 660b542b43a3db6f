package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/service/auth"
	"github.com/empowerhub/empowerhub-api/internal/store"
)

// fakeUserStore is an in-memory store.UserStore for service tests.
type fakeUserStore struct {
	users     map[uuid.UUID]*domain.User
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// fakeLearningStore is an in-memory store.LearningStore.
type fakeLearningStore struct {
	activities []*domain.LearningActivity
	avg        float64
	createErr  error
}

func (f *fakeLearningStore) Create(_ context.Context, activity *domain.LearningActivity) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.activities = append([]*domain.LearningActivity{activity}, f.activities...)
	return nil
}

func (f *fakeLearningStore) CountByUser(_ context.Context, _ uuid.UUID) (int, error) {
	return len(f.activities), nil
}

func (f *fakeLearningStore) AverageProgressByUser(_ context.Context, _ uuid.UUID) (float64, error) {
	return f.avg, nil
}

func (f *fakeLearningStore) RecentByUser(
	_ context.Context, _ uuid.UUID, limit int,
) ([]*domain.LearningActivity, error) {
	if len(f.activities) > limit {
		return f.activities[:limit], nil
	}
	return f.activities, nil
}

// fakeWellnessStore is an in-memory store.WellnessStore.
type fakeWellnessStore struct {
	entries   []*domain.WellnessEntry
	avg       float64
	createErr error
}

func (f *fakeWellnessStore) Create(_ context.Context, entry *domain.WellnessEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.entries = append([]*domain.WellnessEntry{entry}, f.entries...)
	return nil
}

func (f *fakeWellnessStore) CountByUser(_ context.Context, _ uuid.UUID) (int, error) {
	return len(f.entries), nil
}

func (f *fakeWellnessStore) AverageScoreByUser(_ context.Context, _ uuid.UUID) (float64, error) {
	return f.avg, nil
}

func (f *fakeWellnessStore) RecentByUser(
	_ context.Context, _ uuid.UUID, limit int,
) ([]*domain.WellnessEntry, error) {
	if len(f.entries) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

// fakeAssessmentStore is an in-memory store.AssessmentStore.
type fakeAssessmentStore struct {
	assessments []*domain.MoodAssessment
	createErr   error
}

func (f *fakeAssessmentStore) Create(_ context.Context, assessment *domain.MoodAssessment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.assessments = append([]*domain.MoodAssessment{assessment}, f.assessments...)
	return nil
}

func (f *fakeAssessmentStore) RecentByUser(
	_ context.Context, _ uuid.UUID, limit int,
) ([]*domain.MoodAssessment, error) {
	if len(f.assessments) > limit {
		return f.assessments[:limit], nil
	}
	return f.assessments, nil
}

// fakeMealPlanStore is an in-memory store.MealPlanStore.
type fakeMealPlanStore struct {
	plans     []*domain.MealPlan
	avg       float64
	createErr error
}

func (f *fakeMealPlanStore) Create(_ context.Context, plan *domain.MealPlan) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.plans = append([]*domain.MealPlan{plan}, f.plans...)
	return nil
}

func (f *fakeMealPlanStore) CountByUser(_ context.Context, _ uuid.UUID) (int, error) {
	return len(f.plans), nil
}

func (f *fakeMealPlanStore) AverageScoreByUser(_ context.Context, _ uuid.UUID) (float64, error) {
	return f.avg, nil
}

func (f *fakeMealPlanStore) RecentByUser(
	_ context.Context, _ uuid.UUID, limit int,
) ([]*domain.MealPlan, error) {
	if len(f.plans) > limit {
		return f.plans[:limit], nil
	}
	return f.plans, nil
}

// fakeWasteStore is an in-memory store.WasteStore.
type fakeWasteStore struct {
	reductions []*domain.WasteReduction
	avg        float64
	createErr  error
}

func (f *fakeWasteStore) Create(_ context.Context, reduction *domain.WasteReduction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.reductions = append([]*domain.WasteReduction{reduction}, f.reductions...)
	return nil
}

func (f *fakeWasteStore) CountByUser(_ context.Context, _ uuid.UUID) (int, error) {
	return len(f.reductions), nil
}

func (f *fakeWasteStore) AverageScoreByUser(_ context.Context, _ uuid.UUID) (float64, error) {
	return f.avg, nil
}

// fakeQAStore is an in-memory store.QAStore.
type fakeQAStore struct {
	records   []*domain.QARecord
	createErr error
}

func (f *fakeQAStore) Create(_ context.Context, record *domain.QARecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.records = append([]*domain.QARecord{record}, f.records...)
	return nil
}

func (f *fakeQAStore) RecentByUserAndCategory(
	_ context.Context, _ uuid.UUID, category domain.Category, limit int,
) ([]*domain.QARecord, error) {
	var matched []*domain.QARecord
	for _, record := range f.records {
		if record.Category == category {
			matched = append(matched, record)
		}
		if len(matched) == limit {
			break
		}
	}
	return matched, nil
}

// fakeJWTService issues predictable tokens of the form "<type>:<user id>".
type fakeJWTService struct {
	generateErr error
	validateErr error
}

func (f *fakeJWTService) GenerateToken(_ context.Context, userID uuid.UUID) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return "access:" + userID.String(), nil
}

func (f *fakeJWTService) GenerateRefreshToken(_ context.Context, userID uuid.UUID) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return "refresh:" + userID.String(), nil
}

func (f *fakeJWTService) ValidateToken(_ context.Context, tokenString string) (*auth.Claims, error) {
	return f.parse(tokenString, "access:")
}

func (f *fakeJWTService) ValidateRefreshToken(_ context.Context, tokenString string) (*auth.Claims, error) {
	return f.parse(tokenString, "refresh:")
}

func (f *fakeJWTService) parse(tokenString, prefix string) (*auth.Claims, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	raw, ok := strings.CutPrefix(tokenString, prefix)
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{
		UserID:    userID,
		Subject:   raw,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

// plainVerifier is a PasswordVerifier that prefixes instead of hashing.
type plainVerifier struct{}

func (plainVerifier) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainVerifier) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return auth.ErrInvalidToken
	}
	return nil
}

// stubAnswers returns a fixed answer for every question.
type stubAnswers struct {
	answer string
}

func (s stubAnswers) Answer(_ context.Context, _ string) string { return s.answer }

// stubRecipes echoes the ingredient into a fixed suggestion and records the
// ingredients it was asked about.
type stubRecipes struct {
	asked []string
}

func (s *stubRecipes) Suggestion(_ context.Context, ingredient string) string {
	s.asked = append(s.asked, ingredient)
	return "Try making: " + ingredient + " stew"
}

// stubAdvice returns a fixed tip.
type stubAdvice struct {
	tip string
}

func (s stubAdvice) RandomTip(_ context.Context) string { return s.tip }
