package morse

import "strings"

// Sanitize uppercases raw and drops every rune that is neither a space nor
// an alphabet symbol. Text from outside sources (language models, user
// uploads) goes through Sanitize before it is shown or encoded.
func Sanitize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || IsSymbol(r) {
			return r
		}
		return -1
	}, strings.ToUpper(raw))
}

// Symbols returns the alphabet symbols of text in order, uppercased, as
// one-character strings. Spaces and unsupported runes are skipped.
func Symbols(text string) []string {
	var out []string
	for _, r := range strings.ToUpper(text) {
		if IsSymbol(r) {
			out = append(out, string(r))
		}
	}
	return out
}
