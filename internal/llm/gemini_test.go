package llm

import (
	"context"
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-flash-lite", "gemini-2.0-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence": map[string]any{"type": "string"},
			"words":    map[string]any{"type": "integer"},
			"pace":     map[string]any{"type": "string", "enum": []any{"slow", "normal", "fast"}},
			"focus": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"sentence", "words"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["sentence"].Type != "STRING" {
		t.Fatalf("expected STRING for sentence, got %s", schema.Properties["name"].Type)
	}
	if schema.Properties["words"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for words, got %s", schema.Properties["age"].Type)
	}
	if len(schema.Properties["pace"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["pace"].Enum))
	}
	if schema.Properties["focus"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for focus, got %s", schema.Properties["focus"].Type)
	}
	if schema.Properties["focus"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for focus items, got %s", schema.Properties["focus"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestNewVertexProviderRequiresProject(t *testing.T) {
	if _, err := NewVertexProvider(context.Background(), VertexConfig{Location: "europe-west4"}); err == nil {
		t.Fatal("expected error for empty project")
	}
}

func TestNewGeminiProviderResolvesModel(t *testing.T) {
	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "test-key", Model: "gemini-flash"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gemini-2.0-flash" {
		t.Errorf("model = %q, want gemini-2.0-flash", p.ModelID())
	}
}
