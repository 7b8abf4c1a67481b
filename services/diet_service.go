package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/davidgrezoski/vitaflow/models"
	"github.com/davidgrezoski/vitaflow/utils"
)

// DietMealItem is one food inside a generated diet meal.
type DietMealItem struct {
	Name     string `json:"name"`
	Portion  string `json:"portion"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}

type DietMeal struct {
	Title string         `json:"title"`
	Items []DietMealItem `json:"items"`
}

type DietPlan struct {
	Introduction string     `json:"introduction"`
	Meals        []DietMeal `json:"meals"`
	// Fallback marks the canned offline plan served during a total AI
	// outage, so the client can offer a regenerate button.
	Fallback bool `json:"fallback,omitempty"`
}

type DietService struct {
	gen textGenerator
}

func NewDietService(gen textGenerator) *DietService {
	return &DietService{gen: gen}
}

// GeneratePlan builds a personalized diet from the profile's derived goals.
// Any backend or parse failure serves the static fallback plan: a diet
// request never errors out to the user.
func (s *DietService) GeneratePlan(ctx context.Context, user *models.User) *DietPlan {
	goals := DefaultGoals
	if user.TDEE > 0 {
		goals = utils.CalculateMacroGoals(user.TDEE, user.Goal)
	}

	prompt := fmt.Sprintf(`Crie um plano alimentar diário em JSON para uma pessoa com estas metas:
calorias %d kcal, proteína %dg, carboidratos %dg, gordura %dg. Objetivo: %s.
Use alimentos comuns no Brasil. Retorne APENAS JSON válido com esta estrutura:
{"introduction": "texto curto", "meals": [{"title": "Café da Manhã", "items": [{"name": "Alimento", "portion": "100g", "calories": 0, "protein": 0, "carbs": 0, "fat": 0}]}]}`,
		goals.Calories, goals.Protein, goals.Carbs, goals.Fat, user.Goal)

	text, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("diet generation failed for user %d: %v", user.ID, err)
		return fallbackDietPlan()
	}

	payload, err := utils.ExtractJSONObject(text)
	if err != nil {
		log.Printf("diet plan unparseable: %q", text)
		return fallbackDietPlan()
	}

	var plan DietPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil || len(plan.Meals) == 0 {
		return fallbackDietPlan()
	}
	return &plan
}

// fallbackDietPlan is the canned offline plan, served whenever every
// generative backend is down or unparseable.
func fallbackDietPlan() *DietPlan {
	return &DietPlan{
		Introduction: "Plano básico equilibrado. Gere novamente mais tarde para um plano personalizado.",
		Fallback:     true,
		Meals: []DietMeal{
			{
				Title: "Café da Manhã",
				Items: []DietMealItem{
					{Name: "Pão integral", Portion: "2 fatias", Calories: 140, Protein: 6, Carbs: 24, Fat: 2},
					{Name: "Ovos mexidos", Portion: "2 unidades", Calories: 140, Protein: 12, Carbs: 1, Fat: 10},
					{Name: "Banana", Portion: "1 unidade", Calories: 105, Protein: 1, Carbs: 27, Fat: 0},
				},
			},
			{
				Title: "Almoço",
				Items: []DietMealItem{
					{Name: "Arroz", Portion: "150g", Calories: 192, Protein: 4, Carbs: 42, Fat: 0},
					{Name: "Feijão", Portion: "100g", Calories: 76, Protein: 5, Carbs: 14, Fat: 1},
					{Name: "Frango grelhado", Portion: "150g", Calories: 248, Protein: 47, Carbs: 0, Fat: 5},
					{Name: "Salada", Portion: "à vontade", Calories: 30, Protein: 2, Carbs: 6, Fat: 0},
				},
			},
			{
				Title: "Lanche",
				Items: []DietMealItem{
					{Name: "Iogurte natural", Portion: "170g", Calories: 107, Protein: 9, Carbs: 12, Fat: 3},
					{Name: "Aveia", Portion: "2 colheres", Calories: 117, Protein: 5, Carbs: 20, Fat: 2},
				},
			},
			{
				Title: "Jantar",
				Items: []DietMealItem{
					{Name: "Batata doce", Portion: "150g", Calories: 129, Protein: 2, Carbs: 30, Fat: 0},
					{Name: "Peixe assado", Portion: "150g", Calories: 144, Protein: 30, Carbs: 0, Fat: 2},
					{Name: "Brócolis", Portion: "100g", Calories: 34, Protein: 3, Carbs: 7, Fat: 0},
				},
			},
		},
	}
}
