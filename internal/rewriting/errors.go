package rewriting

import "fmt"

// GenerationError wraps failures when producing or interpreting a rewrite.
// The rewrite path has no degraded mode: callers always receive either a
// complete résumé or one of these.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rewriting: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("rewriting: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
