package challenge

import (
	"bufio"
	"context"
	_ "embed"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/morsely/internal/morse"
)

//go:embed words.txt
var embeddedWords string

// DefaultWords returns the embedded practice vocabulary.
func DefaultWords() []string {
	return ParseWords(embeddedWords)
}

// ParseWords reads one word per line, sanitizing each and skipping blanks
// and lines starting with '#'.
func ParseWords(src string) []string {
	var words []string
	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w := normalize(line); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// OfflineGenerator builds sentences from a word list without any network
// access. Words containing focus characters are picked more often.
type OfflineGenerator struct {
	words  []string
	count  int
	factor float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// OfflineOption configures an OfflineGenerator.
type OfflineOption func(*OfflineGenerator)

// WithSeed makes word selection deterministic.
func WithSeed(seed uint64) OfflineOption {
	return func(g *OfflineGenerator) {
		g.rnd = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithWords replaces the embedded vocabulary.
func WithWords(words []string) OfflineOption {
	return func(g *OfflineGenerator) {
		g.words = words
	}
}

// NewOfflineGenerator returns a generator producing cfg.Words words per
// sentence with cfg.WeakFactor bias.
func NewOfflineGenerator(cfg Config, opts ...OfflineOption) *OfflineGenerator {
	now := uint64(time.Now().UnixNano())
	g := &OfflineGenerator{
		words:  DefaultWords(),
		count:  cfg.Words,
		factor: cfg.WeakFactor,
		rnd:    rand.New(rand.NewPCG(now, now>>1)),
	}
	for _, o := range opts {
		o(g)
	}
	if g.count <= 0 {
		g.count = DefaultConfig().Words
	}
	return g
}

// Generate never fails. If no chosen word carries a focus character the
// focus characters are appended as a code group, so every sentence
// exercises at least one of them.
func (g *OfflineGenerator) Generate(_ context.Context, input GenerateInput) (string, error) {
	count := input.Words
	if count <= 0 {
		count = g.count
	}

	weak := make(map[rune]struct{}, len(input.Focus))
	for _, f := range input.Focus {
		for _, r := range f {
			weak[r] = struct{}{}
		}
	}

	picked := g.pick(count, weak)
	text := strings.Join(picked, " ")
	if len(input.Focus) > 0 && !containsAny(text, input.Focus) {
		text = strings.TrimSpace(text + " " + strings.Join(input.Focus, ""))
	}
	return morse.Sanitize(text), nil
}

// pick selects count words, weighting each by 1 + hits*factor where hits
// is the number of focus runes in the word.
func (g *OfflineGenerator) pick(count int, weak map[rune]struct{}) []string {
	if len(g.words) == 0 || count <= 0 {
		return nil
	}

	weights := make([]float64, len(g.words))
	total := 0.0
	for i, word := range g.words {
		hits := 0
		for _, r := range word {
			if _, ok := weak[r]; ok {
				hits++
			}
		}
		w := 1.0 + float64(hits)*g.factor
		weights[i] = w
		total += w
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		r := g.rnd.Float64() * total
		acc := 0.0
		idx := len(weights) - 1
		for j, w := range weights {
			acc += w
			if r <= acc {
				idx = j
				break
			}
		}
		out = append(out, g.words[idx])
	}
	return out
}
