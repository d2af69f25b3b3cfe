// Package challenge produces practice sentences biased toward the
// characters a learner gets wrong most often.
package challenge

// Source records where a challenge's text came from.
type Source string

const (
	SourceAI      Source = "ai"
	SourceOffline Source = "offline"
)

// StarterFocus is used before any practice has been recorded: the four
// shortest and most frequent Morse letters.
var StarterFocus = []string{"E", "T", "A", "N"}

// Challenge is one practice item.
type Challenge struct {
	ID     string   `json:"id"`
	Text   string   `json:"text"`
	Morse  string   `json:"morse"`
	Focus  []string `json:"focus"`
	Source Source   `json:"source"`
}

// GenerateInput holds the context for generating one sentence.
type GenerateInput struct {
	// Focus lists the characters the sentence should exercise, weakest
	// first.
	Focus []string

	// Prior holds recently issued sentences, oldest first, so generators
	// can avoid repeating themselves.
	Prior []string

	// Words is the target sentence length in words.
	Words int
}
