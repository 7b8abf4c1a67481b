package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/davidgrezoski/vitaflow/utils"
)

// ErrNutritionLookupFailed means neither the local table nor any remote
// backend produced usable macros. Retryable and user-visible; the attempted
// meal entry must not be persisted.
var ErrNutritionLookupFailed = errors.New("não foi possível calcular os macros, tente simplificar o nome do alimento")

// Macros is the resolver output: integer, non-negative totals.
type Macros struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// textGenerator is the slice of the generative collaborator the resolver
// needs. Satisfied by *GeminiService; stubbed in tests.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NutritionService resolves (food, amount, unit) to macro totals. Local
// reference table first; the generative estimator only on a local miss.
type NutritionService struct {
	gen textGenerator
}

func NewNutritionService(gen textGenerator) *NutritionService {
	return &NutritionService{gen: gen}
}

// Resolve runs the two-tier lookup. An empty food name is rejected before
// either tier runs.
func (s *NutritionService) Resolve(ctx context.Context, foodName string, amount float64, unit string) (*Macros, error) {
	name := strings.ToLower(strings.TrimSpace(foodName))
	if name == "" {
		return nil, ErrNutritionLookupFailed
	}

	if m, ok := lookupLocal(name, amount, unit); ok {
		return m, nil
	}

	return s.resolveRemote(ctx, name, amount, unit)
}

// lookupLocal scans the reference table in order and applies the unit
// conversion rules. Returns a miss when nothing matches or the computed
// multiplier is not positive.
func lookupLocal(normalizedName string, amount float64, unit string) (*Macros, bool) {
	for _, ref := range foodTable {
		if !strings.Contains(normalizedName, ref.Key) {
			continue
		}

		mult := multiplierFor(ref, amount, strings.ToLower(unit))
		if mult <= 0 {
			return nil, false
		}

		return &Macros{
			Calories: roundNonNegative(ref.Calories * mult),
			Protein:  roundNonNegative(ref.Protein * mult),
			Carbs:    roundNonNegative(ref.Carbs * mult),
			Fat:      roundNonNegative(ref.Fat * mult),
		}, true
	}
	return nil, false
}

func multiplierFor(ref FoodRef, amount float64, unit string) float64 {
	// Piece-counted entries (eggs) already describe one typical unit.
	if ref.PerUnit {
		return amount
	}

	switch {
	case gramLikeUnits[unit]:
		return amount / 100
	case kiloLikeUnits[unit]:
		return amount * 1000 / 100
	default:
		// Count-like unit (unidade, fatia, colher, xicara...) against a
		// gram-based entry: convert via the typical unit weight.
		return amount * ref.UnitWeightG / 100
	}
}

func roundNonNegative(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	return n
}

// resolveRemote asks the generative estimator for a fixed-shape JSON object
// and parses it defensively. Model fallback happens inside the generator;
// here a malformed or unavailable answer maps to ErrNutritionLookupFailed.
func (s *NutritionService) resolveRemote(ctx context.Context, name string, amount float64, unit string) (*Macros, error) {
	prompt := fmt.Sprintf(`Atue como um banco de dados nutricional científico.
Tarefa: Calcular macronutrientes.

Entrada:
- Alimento: %q
- Quantidade: %g
- Unidade: %q

Instruções Críticas:
1. Converta a unidade para gramas se necessário para fazer o cálculo preciso.
2. Use dados nutricionais padrão (USDA/TACO).
3. Retorne APENAS um objeto JSON. Sem texto antes, sem texto depois.

Formato JSON Obrigatório:
{
  "calories": (número inteiro),
  "protein": (número inteiro),
  "carbs": (número inteiro),
  "fat": (número inteiro)
}`, name, amount, unit)

	text, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrNutritionLookupFailed, err)
	}

	payload, err := utils.ExtractJSONObject(text)
	if err != nil {
		log.Printf("nutrition estimate unparseable: %q", text)
		return nil, fmt.Errorf("%w: %v", ErrNutritionLookupFailed, err)
	}

	// Fields arrive as arbitrary JSON values (numbers, quoted numbers,
	// garbage); coerce each one to a non-negative integer and default
	// anything unusable to 0.
	var raw map[string]any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNutritionLookupFailed, err)
	}

	return &Macros{
		Calories: coerceField(raw, "calories"),
		Protein:  coerceField(raw, "protein"),
		Carbs:    coerceField(raw, "carbs"),
		Fat:      coerceField(raw, "fat"),
	}, nil
}

func coerceField(raw map[string]any, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return roundNonNegative(v)
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%g", &f); err == nil {
			return roundNonNegative(f)
		}
	}
	return 0
}
