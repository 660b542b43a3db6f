// Package generation defines the boundary between the application core and
// external AI services used to produce learning path content.
package generation

import (
	"context"
	"fmt"

	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// Generator defines the interface for producing learning path content.
// Implementations may call an external language model or produce content
// locally; callers cannot tell the difference.
type Generator interface {
	// GeneratePath creates learning path content for the given topic at the
	// given level. The returned string is stored and served verbatim.
	GeneratePath(ctx context.Context, topic string, level domain.LearningLevel) (string, error)
}

// TemplateGenerator is a deterministic Generator that renders a fixed
// outline for any topic. It is used when no language model is configured
// and as the fallback when generation fails.
type TemplateGenerator struct{}

// NewTemplateGenerator creates a new TemplateGenerator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Ensure TemplateGenerator implements Generator interface
var _ Generator = (*TemplateGenerator)(nil)

// GeneratePath implements Generator. It never fails for a non-empty topic.
func (g *TemplateGenerator) GeneratePath(
	_ context.Context,
	topic string,
	_ domain.LearningLevel,
) (string, error) {
	if topic == "" {
		return "", ErrEmptyTopic
	}

	return fmt.Sprintf("Learning Path for %s:\n1. Basics\n2. Intermediate\n3. Advanced\n4. Projects", topic), nil
}
