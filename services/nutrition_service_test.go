package services

import (
	"context"
	"errors"
	"testing"
)

// stubGenerator scripts the generative backend for resolver tests.
type stubGenerator struct {
	reply  string
	err    error
	called bool
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.called = true
	return s.reply, s.err
}

func TestLookupLocal(t *testing.T) {
	tests := []struct {
		name     string
		food     string
		amount   float64
		unit     string
		expected Macros
		wantMiss bool
	}{
		{"grams scale per hundred", "frango grelhado", 200, "g", Macros{Calories: 330, Protein: 62, Carbs: 0, Fat: 7}, false},
		{"per unit entry multiplies by count", "ovo cozido", 2, "unidade", Macros{Calories: 140, Protein: 12, Carbs: 1, Fat: 10}, false},
		{"count of gram based food uses unit weight", "banana", 1, "unidade", Macros{Calories: 105, Protein: 1, Carbs: 27, Fat: 0}, false},
		{"longer key matches before prefix", "arroz integral", 100, "g", Macros{Calories: 112, Protein: 3, Carbs: 23, Fat: 1}, false},
		{"kilos scale a thousandfold", "batata", 0.5, "kg", Macros{Calories: 385, Protein: 10, Carbs: 85, Fat: 1}, false},
		{"milliliters treated as grams", "leite", 200, "ml", Macros{Calories: 122, Protein: 6, Carbs: 10, Fat: 7}, false},
		{"unknown food misses", "sushi de salmão", 100, "g", Macros{}, true},
		{"zero amount misses", "frango", 0, "g", Macros{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lookupLocal(tt.food, tt.amount, tt.unit)
			if tt.wantMiss {
				if ok {
					t.Fatalf("lookupLocal(%q) = %+v, want miss", tt.food, got)
				}
				return
			}
			if !ok {
				t.Fatalf("lookupLocal(%q) missed, want hit", tt.food)
			}
			if *got != tt.expected {
				t.Errorf("lookupLocal(%q, %v, %q) = %+v, want %+v", tt.food, tt.amount, tt.unit, *got, tt.expected)
			}
		})
	}
}

func TestResolveLocalHitSkipsRemote(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewNutritionService(gen)

	m, err := svc.Resolve(context.Background(), "Frango Grelhado", 100, "g")
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if m.Calories != 165 || m.Protein != 31 {
		t.Errorf("Resolve() = %+v, want 165 kcal / 31 protein", m)
	}
	if gen.called {
		t.Error("remote backend called despite local hit")
	}
}

func TestResolveRemoteFallback(t *testing.T) {
	gen := &stubGenerator{
		reply: "Aqui está:\n```json\n{\"calories\": \"230\", \"protein\": 12.4, \"carbs\": 30, \"fat\": 8}\n```",
	}
	svc := NewNutritionService(gen)

	m, err := svc.Resolve(context.Background(), "strogonoff", 1, "unidade")
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	want := Macros{Calories: 230, Protein: 12, Carbs: 30, Fat: 8}
	if *m != want {
		t.Errorf("Resolve() = %+v, want %+v", *m, want)
	}
	if !gen.called {
		t.Error("remote backend not consulted on local miss")
	}
}

func TestResolveRemoteFailures(t *testing.T) {
	t.Run("backend down", func(t *testing.T) {
		svc := NewNutritionService(&stubGenerator{err: ErrAIBackendUnavailable})
		if _, err := svc.Resolve(context.Background(), "strogonoff", 1, "unidade"); !errors.Is(err, ErrNutritionLookupFailed) {
			t.Errorf("Resolve() error = %v, want ErrNutritionLookupFailed", err)
		}
	})

	t.Run("unparseable reply", func(t *testing.T) {
		svc := NewNutritionService(&stubGenerator{reply: "não sei dizer"})
		if _, err := svc.Resolve(context.Background(), "strogonoff", 1, "unidade"); !errors.Is(err, ErrNutritionLookupFailed) {
			t.Errorf("Resolve() error = %v, want ErrNutritionLookupFailed", err)
		}
	})

	t.Run("canceled context passes through", func(t *testing.T) {
		svc := NewNutritionService(&stubGenerator{err: context.Canceled})
		_, err := svc.Resolve(context.Background(), "strogonoff", 1, "unidade")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Resolve() error = %v, want context.Canceled", err)
		}
		if errors.Is(err, ErrNutritionLookupFailed) {
			t.Error("cancellation wrongly wrapped as lookup failure")
		}
	})

	t.Run("empty name rejected before any tier", func(t *testing.T) {
		gen := &stubGenerator{}
		svc := NewNutritionService(gen)
		if _, err := svc.Resolve(context.Background(), "   ", 1, "unidade"); !errors.Is(err, ErrNutritionLookupFailed) {
			t.Errorf("Resolve() error = %v, want ErrNutritionLookupFailed", err)
		}
		if gen.called {
			t.Error("remote backend called for empty name")
		}
	})
}
