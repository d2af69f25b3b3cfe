package challenge

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validator checks a generated sentence.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in errors and logs.
	Name() string

	// Validate returns nil if text is acceptable for input.
	Validate(text string, input GenerateInput) *ValidationError
}

// ValidationError describes why a sentence was rejected.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether asking again is likely to help
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// NonEmptyValidator rejects text with no symbols left after sanitizing.
type NonEmptyValidator struct{}

func (v *NonEmptyValidator) Name() string { return "non-empty" }

func (v *NonEmptyValidator) Validate(text string, _ GenerateInput) *ValidationError {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Validator: v.Name(), Message: "sentence is empty after sanitizing", Retryable: true}
	}
	return nil
}

// LengthValidator rejects text longer than Max characters.
type LengthValidator struct {
	Max int
}

func (v *LengthValidator) Name() string { return "length" }

func (v *LengthValidator) Validate(text string, _ GenerateInput) *ValidationError {
	if n := utf8.RuneCountInString(text); v.Max > 0 && n > v.Max {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("sentence has %d characters, limit is %d", n, v.Max),
			Retryable: true,
		}
	}
	return nil
}

// FocusValidator requires at least one focus character in the text.
type FocusValidator struct{}

func (v *FocusValidator) Name() string { return "focus" }

func (v *FocusValidator) Validate(text string, input GenerateInput) *ValidationError {
	if len(input.Focus) == 0 || containsAny(text, input.Focus) {
		return nil
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("sentence uses none of %s", strings.Join(input.Focus, " ")),
		Retryable: true,
	}
}

func containsAny(text string, chars []string) bool {
	for _, c := range chars {
		if c != "" && strings.Contains(text, c) {
			return true
		}
	}
	return false
}
