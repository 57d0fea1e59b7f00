package parsing

import "fmt"

// ParseError is raised when a generative response cannot be decoded into the
// expected structure after all recovery attempts. Raw carries the offending
// response text for server-side diagnostics; it must never be shown to end
// users.
type ParseError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed response: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
