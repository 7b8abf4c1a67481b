package utils

import (
	"errors"
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "clean payload",
			input:    `{"calories": 230, "protein": 12}`,
			expected: `{"calories": 230, "protein": 12}`,
		},
		{
			name:     "fenced with language tag",
			input:    "Claro! Aqui está:\n```json\n{\"calories\": 230}\n```",
			expected: `{"calories": 230}`,
		},
		{
			name:     "fenced without language tag",
			input:    "```\n{\"calories\": 230}\n```",
			expected: `{"calories": 230}`,
		},
		{
			name:     "surrounded by prose",
			input:    `Com certeza! {"calories": 230} Espero ter ajudado.`,
			expected: `{"calories": 230}`,
		},
		{
			name:     "prose inside the fence",
			input:    "```json\n{\"calories\": 230}\nObservação: valores aproximados.\n```",
			expected: `{"calories": 230}`,
		},
		{
			name:    "no json at all",
			input:   "Desculpe, não consegui calcular.",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			input:   `{"calories": 230`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedResponse) {
					t.Fatalf("ExtractJSONObject() error = %v, want ErrMalformedResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSONObject() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ExtractJSONObject() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	got, err := ExtractJSONArray("Segue o plano:\n```json\n[{\"name\": \"Treino A\"}]\n```")
	if err != nil {
		t.Fatalf("ExtractJSONArray() unexpected error: %v", err)
	}
	if got != `[{"name": "Treino A"}]` {
		t.Errorf("ExtractJSONArray() = %q", got)
	}

	if _, err := ExtractJSONArray("sem lista aqui"); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("ExtractJSONArray() error = %v, want ErrMalformedResponse", err)
	}
}
