package entities

import "testing"

func TestNutrientVectorScale(t *testing.T) {
	t.Parallel()
	v := NutrientVector{Calories: 100, Protein: 10, Carbs: 20, Fat: 5, Sugar: 2, Fiber: 1, Sodium: 300}

	got := v.Scale(0.5)
	want := NutrientVector{Calories: 50, Protein: 5, Carbs: 10, Fat: 2.5, Sugar: 1, Fiber: 0.5, Sodium: 150}
	if got != want {
		t.Errorf("Scale(0.5) = %+v, want %+v", got, want)
	}

	// the receiver is never mutated
	if v.Calories != 100 {
		t.Errorf("Scale mutated receiver: %+v", v)
	}
}

func TestNutrientVectorAdd(t *testing.T) {
	t.Parallel()
	a := NutrientVector{Calories: 100, Protein: 10, Carbs: 20, Fat: 5, Sugar: 2, Fiber: 1, Sodium: 300}
	b := NutrientVector{Calories: 50, Protein: 2.5, Carbs: 5, Fat: 1, Sugar: 0.5, Fiber: 0.2, Sodium: 40}

	got := a.Add(b)
	want := NutrientVector{Calories: 150, Protein: 12.5, Carbs: 25, Fat: 6, Sugar: 2.5, Fiber: 1.2, Sodium: 340}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}

func TestNutrientVectorRounded(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   NutrientVector
		want NutrientVector
	}{
		{
			name: "macros to nearest tenth",
			in:   NutrientVector{Protein: 12.34, Carbs: 4.06, Fat: 0.95},
			want: NutrientVector{Protein: 12.3, Carbs: 4.1, Fat: 1.0},
		},
		{
			name: "calories and sodium to nearest integer",
			in:   NutrientVector{Calories: 412.49, Sodium: 599.5},
			want: NutrientVector{Calories: 412, Sodium: 600},
		},
		{
			name: "halfway rounds away from zero",
			in:   NutrientVector{Calories: 100.5, Protein: 2.25, Sodium: 0.5},
			want: NutrientVector{Calories: 101, Protein: 2.3, Sodium: 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.in.Rounded(); got != tt.want {
				t.Errorf("Rounded() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
