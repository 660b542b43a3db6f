package service

import "context"

// AnswerProvider looks up a free-text answer for a question. Implementations
// must degrade to a fixed fallback string instead of failing.
type AnswerProvider interface {
	Answer(ctx context.Context, question string) string
}

// RecipeProvider suggests a recipe for an ingredient. Implementations must
// degrade to a fixed fallback string instead of failing.
type RecipeProvider interface {
	Suggestion(ctx context.Context, ingredient string) string
}

// AdviceProvider returns a single wellbeing tip. Implementations must
// degrade to a fixed fallback string instead of failing.
type AdviceProvider interface {
	RandomTip(ctx context.Context) string
}
