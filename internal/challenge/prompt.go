package challenge

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write practice sentences for people learning to copy Morse code.

Rules:
- Write one short, natural sentence in plain English.
- Use only the letters A-Z, the digits 0-9, spaces and the punctuation . , ? / - ( )
- Use the focus characters as often as reads naturally; every sentence must contain at least one of them.
- Common ham radio words and abbreviations (CQ, DE, QTH, RST, 73) are welcome.
- Keep it under 200 characters.
- Do not repeat any sentence from the "already used" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	words := input.Words
	if words <= 0 {
		words = cfg.Words
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Focus characters: %s\n", strings.Join(input.Focus, " "))
	fmt.Fprintf(&b, "Target length: about %d words\n", words)

	b.WriteString("\nAlready used:\n")
	b.WriteString(buildDedup(input.Prior, cfg.MaxPrior))
	return b.String()
}

// buildDedup formats prior sentences for the prompt, keeping the newest max.
// Returns "None" if there are none.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, s := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return strings.TrimRight(b.String(), "\n")
}
