package morse

import (
	"strings"
	"time"
)

// DefaultDotThreshold separates a dot from a dash on a straight key:
// shorter presses are dots.
const DefaultDotThreshold = 200 * time.Millisecond

// Classify turns key-press durations into a pattern. A non-positive
// threshold uses DefaultDotThreshold.
func Classify(presses []time.Duration, threshold time.Duration) string {
	if threshold <= 0 {
		threshold = DefaultDotThreshold
	}
	var b strings.Builder
	for _, d := range presses {
		if d < threshold {
			b.WriteByte('.')
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// InputStatus describes how keyed input compares to a target pattern.
type InputStatus int

const (
	// InputMistake means the input can no longer become the target.
	InputMistake InputStatus = iota
	// InputPartial means the input is a proper prefix of the target.
	InputPartial
	// InputMatch means the input equals the target.
	InputMatch
)

func (s InputStatus) String() string {
	switch s {
	case InputMatch:
		return "match"
	case InputPartial:
		return "partial"
	default:
		return "mistake"
	}
}

// CheckInput compares keyed input against the target pattern. Surrounding
// whitespace in input is ignored.
func CheckInput(target, input string) InputStatus {
	input = strings.TrimSpace(input)
	switch {
	case input == target:
		return InputMatch
	case strings.HasPrefix(target, input):
		return InputPartial
	default:
		return InputMistake
	}
}
