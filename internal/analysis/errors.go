package analysis

import "fmt"

// GenerationError wraps failures when producing or interpreting an analysis.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
