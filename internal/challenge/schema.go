package challenge

import "github.com/abhisek/morsely/internal/llm"

// SentenceSchema is the structured output requested from the model.
var SentenceSchema = &llm.Schema{
	Name:        "practice-sentence",
	Description: "A short sentence for Morse code copying practice",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence": map[string]any{
				"type":        "string",
				"description": "The practice sentence in plain uppercase ASCII",
			},
		},
		"required":             []any{"sentence"},
		"additionalProperties": false,
	},
}
