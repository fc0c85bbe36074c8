package entities

import "math"

// NutrientVector holds the seven tracked nutrients. Catalog foods store it
// per 100 units of their serving unit, meal templates store it per serving,
// logged meals store absolute rounded totals.
type NutrientVector struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// Scale returns a fresh vector with every nutrient multiplied by factor.
func (v NutrientVector) Scale(factor float64) NutrientVector {
	return NutrientVector{
		Calories: v.Calories * factor,
		Protein:  v.Protein * factor,
		Carbs:    v.Carbs * factor,
		Fat:      v.Fat * factor,
		Sugar:    v.Sugar * factor,
		Fiber:    v.Fiber * factor,
		Sodium:   v.Sodium * factor,
	}
}

// Add returns a fresh vector holding the element-wise sum.
func (v NutrientVector) Add(o NutrientVector) NutrientVector {
	return NutrientVector{
		Calories: v.Calories + o.Calories,
		Protein:  v.Protein + o.Protein,
		Carbs:    v.Carbs + o.Carbs,
		Sugar:    v.Sugar + o.Sugar,
		Fat:      v.Fat + o.Fat,
		Fiber:    v.Fiber + o.Fiber,
		Sodium:   v.Sodium + o.Sodium,
	}
}

// Rounded applies the persistence rounding rules: calories and sodium to the
// nearest integer, the gram-based macros to the nearest 0.1. Halfway values
// round away from zero.
func (v NutrientVector) Rounded() NutrientVector {
	return NutrientVector{
		Calories: math.Round(v.Calories),
		Protein:  roundTenth(v.Protein),
		Carbs:    roundTenth(v.Carbs),
		Fat:      roundTenth(v.Fat),
		Sugar:    roundTenth(v.Sugar),
		Fiber:    roundTenth(v.Fiber),
		Sodium:   math.Round(v.Sodium),
	}
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
