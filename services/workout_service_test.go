package services

import (
	"context"
	"errors"
	"testing"
)

func TestWorkoutGeneratePlan(t *testing.T) {
	prefs := WorkoutPreferences{Goal: "hipertrofia", Level: "intermediario", Equipment: "academia"}

	t.Run("parses plan and fills missing fields", func(t *testing.T) {
		gen := &stubGenerator{reply: "```json\n" +
			`[{"name": "Treino A", "muscleGroup": "Peito", "exercises": [{"name": "Supino", "sets": "4", "reps": "10"}]}, {"exercises": null}]` +
			"\n```"}
		svc := NewWorkoutService(nil, gen, nil)

		plans, err := svc.GeneratePlan(context.Background(), prefs)
		if err != nil {
			t.Fatalf("GeneratePlan() unexpected error: %v", err)
		}
		if len(plans) != 2 {
			t.Fatalf("got %d plans, want 2", len(plans))
		}
		if plans[0].Name != "Treino A" || len(plans[0].Exercises) != 1 {
			t.Errorf("first plan = %+v", plans[0])
		}
		if plans[1].Name != "Treino Personalizado" || plans[1].MuscleGroup != "Geral" {
			t.Errorf("defaults not applied: %+v", plans[1])
		}
		if plans[1].Exercises == nil {
			t.Error("nil exercises not normalized to empty slice")
		}
	})

	t.Run("unparseable reply degrades to empty plan", func(t *testing.T) {
		svc := NewWorkoutService(nil, &stubGenerator{reply: "monte você mesmo"}, nil)

		plans, err := svc.GeneratePlan(context.Background(), prefs)
		if err != nil {
			t.Fatalf("GeneratePlan() unexpected error: %v", err)
		}
		if plans == nil || len(plans) != 0 {
			t.Errorf("got %v, want empty non-nil plan list", plans)
		}
	})

	t.Run("backend outage surfaces the error", func(t *testing.T) {
		svc := NewWorkoutService(nil, &stubGenerator{err: ErrAIBackendUnavailable}, nil)

		if _, err := svc.GeneratePlan(context.Background(), prefs); !errors.Is(err, ErrAIBackendUnavailable) {
			t.Errorf("GeneratePlan() error = %v, want ErrAIBackendUnavailable", err)
		}
	})
}
