package drill

import (
	"math/rand/v2"

	"github.com/abhisek/morsely/internal/morse"
)

// Picker chooses drill targets from the alphabet, weighting the learner's
// weakest characters by Factor.
type Picker struct {
	Factor float64
	rnd    *rand.Rand
}

// NewPicker returns a Picker seeded with seed.
func NewPicker(factor float64, seed uint64) *Picker {
	return &Picker{Factor: factor, rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick returns a target other than prev when the alphabet allows it.
// Each weak character weighs 1+Factor, every other symbol weighs 1.
func (p *Picker) Pick(weak []string, prev rune) rune {
	boost := make(map[rune]bool, len(weak))
	for _, w := range weak {
		for _, r := range w {
			boost[r] = true
		}
	}

	alphabet := morse.Alphabet()
	weights := make([]float64, len(alphabet))
	total := 0.0
	for i, r := range alphabet {
		if r == prev {
			continue
		}
		w := 1.0
		if boost[r] {
			w += p.Factor
		}
		weights[i] = w
		total += w
	}

	x := p.rnd.Float64() * total
	acc := 0.0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		acc += w
		if x <= acc {
			return alphabet[i]
		}
	}
	// Float rounding can leave x just past the last bucket.
	for i := len(alphabet) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return alphabet[i]
		}
	}
	return alphabet[0]
}
