package challenge

// Config controls sentence generation.
type Config struct {
	// Validators run in order on every AI sentence; the first failure
	// rejects it.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAttempts bounds LLM calls per challenge when validation fails
	// with a retryable error.
	MaxAttempts int

	// FocusCount is how many weak characters a challenge targets when the
	// caller does not say.
	FocusCount int

	// Words is the target sentence length.
	Words int

	// WeakFactor is the extra weight an offline word gains per focus
	// character it contains.
	WeakFactor float64

	// MaxPrior caps how many recent sentences are remembered for
	// deduplication.
	MaxPrior int
}

// MaxSentenceLength bounds the length of an accepted sentence.
const MaxSentenceLength = 200

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&NonEmptyValidator{},
			&LengthValidator{Max: MaxSentenceLength},
			&FocusValidator{},
		},
		MaxTokens:   256,
		Temperature: 0.9,
		MaxAttempts: 2,
		FocusCount:  3,
		Words:       6,
		WeakFactor:  2.0,
		MaxPrior:    8,
	}
}
