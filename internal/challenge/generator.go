package challenge

import "context"

// Generator produces sanitized practice text.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
}
