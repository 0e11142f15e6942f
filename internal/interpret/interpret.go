// Package interpret normalizes raw model completions into validated
// structured results or typed failures.
package interpret

import (
	"encoding/json"
	"log"

	"github.com/jonathan/team-generator/internal/llm"
	"github.com/jonathan/team-generator/internal/schemas"
)

// Decode turns a completion into the structured value v. It short-circuits
// on non-success stop signals before any parsing, strips a single optional
// code-fence pair, and unmarshals the remaining text. No retries happen
// here; every failure is surfaced to the caller.
//
// Business invariants of the parsed structure (leader membership, member
// counts) are not verified; the platform caller re-validates before
// persisting.
func Decode(completion llm.Completion, v any) error {
	switch completion.Stop {
	case llm.StopRefusal:
		return &RefusalError{}
	case llm.StopContextExceeded:
		return &ContextExceededError{}
	case llm.StopMaxTokens:
		return &TruncatedError{}
	}

	text := llm.CleanJSONBlock(completion.Text)
	if text == "" {
		return &ParseError{Message: "model returned an empty response"}
	}

	if err := json.Unmarshal([]byte(text), v); err != nil {
		log.Printf("[interpret] unparseable model response: %s", completion.Text)
		return &ParseError{Message: "response is not valid JSON", Cause: err}
	}
	return nil
}

// DecodeWithSchema is Decode plus a top-level shape check against a JSON
// Schema before unmarshaling into v.
func DecodeWithSchema(completion llm.Completion, schema string, v any) error {
	switch completion.Stop {
	case llm.StopRefusal:
		return &RefusalError{}
	case llm.StopContextExceeded:
		return &ContextExceededError{}
	case llm.StopMaxTokens:
		return &TruncatedError{}
	}

	text := llm.CleanJSONBlock(completion.Text)
	if text == "" {
		return &ParseError{Message: "model returned an empty response"}
	}

	if err := schemas.ValidateJSONString(schema, text); err != nil {
		log.Printf("[interpret] model response failed shape check: %s", completion.Text)
		return &ParseError{Message: "response does not match the expected shape", Cause: err}
	}

	if err := json.Unmarshal([]byte(text), v); err != nil {
		log.Printf("[interpret] unparseable model response: %s", completion.Text)
		return &ParseError{Message: "response is not valid JSON", Cause: err}
	}
	return nil
}
