package morse

import "strings"

// Encode translates text into Morse code. Input is uppercased first. Each
// symbol becomes one token: a space becomes WordSeparator, an alphabet symbol
// becomes its pattern and anything else passes through unchanged. Tokens are
// joined by single spaces.
func Encode(text string) string {
	upper := strings.ToUpper(text)
	tokens := make([]string, 0, len(upper))
	for _, r := range upper {
		tokens = append(tokens, token(r))
	}
	return strings.Join(tokens, " ")
}

func token(r rune) string {
	if r == ' ' {
		return WordSeparator
	}
	if p, ok := codes[r]; ok {
		return p
	}
	return string(r)
}

// Decode translates space-separated Morse tokens back into text.
// WordSeparator becomes a space; tokens that are not known patterns are
// copied through, so Decode(Encode(s)) round-trips unsupported symbols too.
func Decode(code string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(code) {
		if tok == WordSeparator {
			b.WriteByte(' ')
			continue
		}
		if r, ok := symbols[tok]; ok {
			b.WriteRune(r)
			continue
		}
		b.WriteString(tok)
	}
	return b.String()
}
