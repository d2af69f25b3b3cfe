// Package morse translates between plain text and International Morse code
// and holds the fixed alphabet every other package validates against.
package morse

import "sort"

// WordSeparator is the token that stands for a space between words.
const WordSeparator = "/"

// codes is the alphabet. It is never written after package initialization;
// callers go through Pattern, Symbol and IsSymbol.
var codes = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",

	'1': ".----", '2': "..---", '3': "...--", '4': "....-", '5': ".....",
	'6': "-....", '7': "--...", '8': "---..", '9': "----.", '0': "-----",

	',': "--..--", '.': ".-.-.-", '?': "..--..", '/': "-..-.",
	'-': "-....-", '(': "-.--.", ')': "-.--.-",
}

// symbols is the inverse of codes.
var symbols = invert(codes)

func invert(m map[rune]string) map[string]rune {
	out := make(map[string]rune, len(m))
	for r, p := range m {
		out[p] = r
	}
	return out
}

// Pattern returns the dot/dash pattern for an uppercase symbol.
func Pattern(r rune) (string, bool) {
	p, ok := codes[r]
	return p, ok
}

// Symbol returns the symbol encoded by pattern.
func Symbol(pattern string) (rune, bool) {
	r, ok := symbols[pattern]
	return r, ok
}

// IsSymbol reports whether r is part of the alphabet. Lowercase letters are
// not symbols; callers uppercase first.
func IsSymbol(r rune) bool {
	_, ok := codes[r]
	return ok
}

// Alphabet returns every supported symbol in ascending order.
func Alphabet() []rune {
	out := make([]rune, 0, len(codes))
	for r := range codes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Size returns the number of symbols in the alphabet.
func Size() int {
	return len(codes)
}
