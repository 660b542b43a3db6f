package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when path generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate learning path")

	// ErrInvalidResponse is returned when the model response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyTopic is returned when a path is requested for an empty topic
	ErrEmptyTopic = errors.New("topic cannot be empty")
)
