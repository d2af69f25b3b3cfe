package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/morsely/internal/llm"
	"github.com/abhisek/morsely/internal/morse"
)

// Purpose labels challenge requests in the LLM event log.
const Purpose = "challenge-gen"

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLMGenerator creates an LLMGenerator with the given provider and config.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

type sentenceOutput struct {
	Sentence string `json:"sentence"`
}

// Generate asks the model for a sentence, sanitizes it and runs the
// validator chain. A retryable validation failure is fed back into the
// prompt until MaxAttempts is spent.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (string, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	attempts := g.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	msgs := []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)}}

	var lastErr error
	for i := 0; i < attempts; i++ {
		text, raw, err := g.once(ctx, msgs)
		if err != nil {
			return "", err
		}

		verr := g.validate(text, input)
		if verr == nil {
			return text, nil
		}
		lastErr = verr
		if !verr.Retryable {
			break
		}
		msgs = append(msgs,
			llm.Message{Role: llm.RoleAssistant, Content: raw},
			llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("Rejected: %s. Try again.", verr.Message)},
		)
	}
	return "", lastErr
}

func (g *LLMGenerator) once(ctx context.Context, msgs []llm.Message) (string, string, error) {
	req := llm.Request{
		System:      systemPrompt,
		Messages:    msgs,
		Schema:      SentenceSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", "", fmt.Errorf("LLM generation failed: %w", err)
	}

	var out sentenceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", "", fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return normalize(out.Sentence), string(resp.Content), nil
}

func (g *LLMGenerator) validate(text string, input GenerateInput) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(text, input); verr != nil {
			return verr
		}
	}
	return nil
}

// normalize sanitizes text and collapses runs of spaces.
func normalize(text string) string {
	return strings.Join(strings.Fields(morse.Sanitize(text)), " ")
}

// IsValidationError reports whether err is a rejected sentence.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
