package morse

import (
	"strings"
	"time"
)

// DefaultUnit is the length of one dot.
const DefaultUnit = 80 * time.Millisecond

// Tone is one key-down interval, relative to the start of playback.
type Tone struct {
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
}

// Schedule plans playback of a single pattern: a dot lasts one unit, a dash
// three, and every element is followed by a one-unit gap. Runes other than
// '.' and '-' are ignored. It also returns the total length including the
// trailing gap.
func Schedule(pattern string, unit time.Duration) ([]Tone, time.Duration) {
	if unit <= 0 {
		unit = DefaultUnit
	}
	var tones []Tone
	var at time.Duration
	for _, r := range pattern {
		var d time.Duration
		switch r {
		case '.':
			d = unit
		case '-':
			d = 3 * unit
		default:
			continue
		}
		tones = append(tones, Tone{Start: at, Duration: d})
		at += d + unit
	}
	return tones, at
}

// ScheduleText plans playback of a whole text. Letters are separated by
// three units of silence and words by seven. Unsupported runes are skipped.
func ScheduleText(text string, unit time.Duration) []Tone {
	if unit <= 0 {
		unit = DefaultUnit
	}
	var (
		tones   []Tone
		at      time.Duration
		started bool
	)
	for _, tok := range strings.Fields(Encode(text)) {
		if tok == WordSeparator {
			if started {
				// One unit already elapsed after the last element.
				at += 4 * unit
			}
			continue
		}
		if _, ok := Symbol(tok); !ok {
			continue
		}
		if started {
			at += 2 * unit
		}
		ts, length := Schedule(tok, unit)
		for _, t := range ts {
			tones = append(tones, Tone{Start: at + t.Start, Duration: t.Duration})
		}
		at += length
		started = true
	}
	return tones
}
