package services

// FoodRef is one local reference entry. Macros are per 100 g/ml unless
// PerUnit is set, in which case they describe one typical piece (eggs).
// UnitWeightG is the weight of one typical unit/slice/spoon, used to convert
// count-like amounts of gram-based foods.
type FoodRef struct {
	Key         string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	UnitWeightG float64
	PerUnit     bool
}

// foodTable is matched by substring against the normalized food name; the
// first hit wins, so order is significant (e.g. "feijoada" must come before
// "feijao"). Values follow TACO/USDA references.
var foodTable = []FoodRef{
	{Key: "feijoada", Calories: 117, Protein: 6.5, Carbs: 8.5, Fat: 6.0, UnitWeightG: 225},
	{Key: "arroz integral", Calories: 112, Protein: 2.6, Carbs: 23, Fat: 0.9, UnitWeightG: 25},
	{Key: "arroz", Calories: 128, Protein: 2.5, Carbs: 28, Fat: 0.2, UnitWeightG: 25},
	{Key: "feijao", Calories: 76, Protein: 4.8, Carbs: 13.6, Fat: 0.5, UnitWeightG: 80},
	{Key: "feijão", Calories: 76, Protein: 4.8, Carbs: 13.6, Fat: 0.5, UnitWeightG: 80},
	{Key: "frango", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, UnitWeightG: 100},
	{Key: "carne", Calories: 219, Protein: 26, Carbs: 0, Fat: 12, UnitWeightG: 100},
	{Key: "peixe", Calories: 96, Protein: 20, Carbs: 0, Fat: 1.5, UnitWeightG: 100},
	{Key: "atum", Calories: 116, Protein: 26, Carbs: 0, Fat: 1, UnitWeightG: 100},
	{Key: "ovo", Calories: 70, Protein: 6, Carbs: 0.6, Fat: 5, PerUnit: true},
	{Key: "banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, UnitWeightG: 118},
	{Key: "maça", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, UnitWeightG: 150},
	{Key: "maçã", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, UnitWeightG: 150},
	{Key: "laranja", Calories: 47, Protein: 0.9, Carbs: 12, Fat: 0.1, UnitWeightG: 130},
	{Key: "mamao", Calories: 43, Protein: 0.5, Carbs: 11, Fat: 0.3, UnitWeightG: 150},
	{Key: "pao integral", Calories: 247, Protein: 13, Carbs: 41, Fat: 3.4, UnitWeightG: 25},
	{Key: "pao", Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2, UnitWeightG: 50},
	{Key: "pão", Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2, UnitWeightG: 50},
	{Key: "leite desnatado", Calories: 35, Protein: 3.4, Carbs: 5, Fat: 0.1, UnitWeightG: 200},
	{Key: "leite", Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, UnitWeightG: 200},
	{Key: "aveia", Calories: 389, Protein: 17, Carbs: 66, Fat: 7, UnitWeightG: 15},
	{Key: "batata doce", Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, UnitWeightG: 130},
	{Key: "batata", Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1, UnitWeightG: 130},
	{Key: "macarrao", Calories: 158, Protein: 5.8, Carbs: 31, Fat: 0.9, UnitWeightG: 110},
	{Key: "queijo", Calories: 356, Protein: 23, Carbs: 3, Fat: 28, UnitWeightG: 30},
	{Key: "iogurte", Calories: 63, Protein: 5.3, Carbs: 7, Fat: 1.6, UnitWeightG: 170},
	{Key: "whey", Calories: 400, Protein: 80, Carbs: 8, Fat: 6, UnitWeightG: 30},
	{Key: "azeite", Calories: 884, Protein: 0, Carbs: 0, Fat: 100, UnitWeightG: 13},
	{Key: "alface", Calories: 15, Protein: 1.4, Carbs: 2.9, Fat: 0.2, UnitWeightG: 20},
	{Key: "tomate", Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, UnitWeightG: 120},
	{Key: "brocolis", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, UnitWeightG: 90},
	{Key: "cenoura", Calories: 41, Protein: 0.9, Carbs: 10, Fat: 0.2, UnitWeightG: 70},
}

// gramLikeUnits are amounts already expressed in the table's reference scale.
var gramLikeUnits = map[string]bool{
	"g":      true,
	"gr":     true,
	"grama":  true,
	"gramas": true,
	"ml":     true,
}

// kiloLikeUnits are gram-like but a thousand times the reference scale.
var kiloLikeUnits = map[string]bool{
	"kg":    true,
	"kilo":  true,
	"quilo": true,
	"l":     true,
	"litro": true,
}
