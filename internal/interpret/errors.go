package interpret

import "fmt"

// RefusalError indicates the model declined to answer. Any content text
// accompanying the refusal is discarded.
type RefusalError struct{}

func (e *RefusalError) Error() string {
	return "the model declined to analyze this request"
}

// ContextExceededError indicates the prompt was too large for the model's
// input window. Callers should narrow the request.
type ContextExceededError struct{}

func (e *ContextExceededError) Error() string {
	return "the request is too large for the model; reduce the candidate pool or requirements"
}

// TruncatedError indicates the model's output was cut short before
// completion. The partial output is discarded, never returned.
type TruncatedError struct{}

func (e *TruncatedError) Error() string {
	return "the model response was cut short; try a smaller request"
}

// ParseError indicates the de-fenced model text is not valid JSON. It
// carries the parser's diagnostic; the raw text is logged for diagnosis but
// never returned to the caller as data.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse model response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse model response: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
