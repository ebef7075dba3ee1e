// Package errs defines the typed errors shared across the domain packages.
package errs

import (
	"errors"
	"fmt"
)

// ValidationError reports a required field that failed entity validation.
// It is returned synchronously by entity constructors and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for a field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// QualityThresholdError signals that no message candidate exists to return.
// In practice only a quality gate configured with zero attempts produces it;
// any gate that ran at least one attempt returns its best candidate instead.
type QualityThresholdError struct {
	Score     float64
	Threshold float64
}

func (e *QualityThresholdError) Error() string {
	return fmt.Sprintf("quality score %.1f below threshold %.1f", e.Score, e.Threshold)
}

// ErrNoMatchingICP may be used by callers that treat the absence of an ICP
// match as a failure. The matcher itself reports absence, not an error.
var ErrNoMatchingICP = errors.New("no ICP profile matches the lead")

// LLMError wraps a failure from the language model provider: transport,
// non-200 status, or an unusable response body.
type LLMError struct {
	Op  string
	Err error
}

func (e *LLMError) Error() string {
	return fmt.Sprintf("llm %s: %v", e.Op, e.Err)
}

func (e *LLMError) Unwrap() error {
	return e.Err
}

// NewLLM builds an LLMError for an operation.
func NewLLM(op string, err error) *LLMError {
	return &LLMError{Op: op, Err: err}
}
