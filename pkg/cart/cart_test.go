package cart

import (
	"math"
	"testing"

	"nutricart-backend/domain"
	"nutricart-backend/entities"
)

var (
	riceBase = entities.NutrientVector{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Sugar: 0.1, Fiber: 0.4, Sodium: 1}
	bowlBase = entities.NutrientVector{Calories: 550, Protein: 32, Carbs: 60, Fat: 18, Sugar: 6, Fiber: 7, Sodium: 900}
)

func addFood(t *testing.T, c *Cart, amount *float64) Entry {
	t.Helper()
	return c.Add(domain.SourceKindFood, "food-1", "White Rice", riceBase, amount, "g", "")
}

func addMeal(t *testing.T, c *Cart, amount *float64) Entry {
	t.Helper()
	return c.Add(domain.SourceKindMeal, "meal-1", "Chicken Bowl", bowlBase, amount, "serving", "")
}

func amountOf(v float64) *float64 { return &v }

func TestAddDefaults(t *testing.T) {
	t.Parallel()
	c := New()

	food := addFood(t, c, nil)
	if food.Amount != 100 || food.Unit != "g" {
		t.Errorf("food defaults = %v %q, want 100 g", food.Amount, food.Unit)
	}

	meal := addMeal(t, c, nil)
	if meal.Amount != 1 || meal.Unit != "serving" {
		t.Errorf("meal defaults = %v %q, want 1 serving", meal.Amount, meal.Unit)
	}
}

func TestAddRejectsInvalidAmount(t *testing.T) {
	t.Parallel()
	c := New()

	if e := addFood(t, c, amountOf(-20)); e.Amount != 100 {
		t.Errorf("negative amount resolved to %v, want default 100", e.Amount)
	}
	if e := addFood(t, c, amountOf(math.NaN())); e.Amount != 100 {
		t.Errorf("NaN amount resolved to %v, want default 100", e.Amount)
	}
	if e := addMeal(t, c, amountOf(-1)); e.Amount != 1 {
		t.Errorf("negative meal amount resolved to %v, want default 1", e.Amount)
	}
}

func TestFoodScalingRule(t *testing.T) {
	t.Parallel()
	c := New()
	e := addFood(t, c, amountOf(150))

	got := e.Contribution()
	want := riceBase.Scale(1.5)
	if got != want {
		t.Errorf("food contribution at 150g = %+v, want %+v", got, want)
	}
}

func TestMealScalingRule(t *testing.T) {
	t.Parallel()
	c := New()

	// one serving contributes exactly the base, not base/100
	e := addMeal(t, c, amountOf(1))
	if got := e.Contribution(); got != bowlBase {
		t.Errorf("meal contribution at 1 serving = %+v, want base %+v", got, bowlBase)
	}

	e2 := addMeal(t, c, amountOf(2))
	if got, want := e2.Contribution(), bowlBase.Scale(2); got != want {
		t.Errorf("meal contribution at 2 servings = %+v, want %+v", got, want)
	}
}

func TestContributionScalesLinearly(t *testing.T) {
	t.Parallel()
	c := New()

	single := addFood(t, c, amountOf(80)).Contribution()
	double := addFood(t, c, amountOf(160)).Contribution()
	if got, want := double, single.Scale(2); got != want {
		t.Errorf("doubling food amount: got %+v, want %+v", got, want)
	}

	one := addMeal(t, c, amountOf(1.5)).Contribution()
	two := addMeal(t, c, amountOf(3)).Contribution()
	if got, want := two, one.Scale(2); got != want {
		t.Errorf("doubling serving count: got %+v, want %+v", got, want)
	}
}

func TestAggregateMixedKinds(t *testing.T) {
	t.Parallel()
	c := New()
	addFood(t, c, amountOf(200))
	addMeal(t, c, amountOf(1))

	got := c.Aggregate()
	want := riceBase.Scale(2).Add(bowlBase)
	if got != want {
		t.Errorf("Aggregate() = %+v, want %+v", got, want)
	}
}

func TestDuplicateAddsAreIndependent(t *testing.T) {
	t.Parallel()
	c := New()
	first := addFood(t, c, amountOf(100))
	second := addFood(t, c, amountOf(50))

	if first.ID == second.ID {
		t.Fatalf("duplicate adds share entry ID %q", first.ID)
	}

	c.Remove(first.ID)
	if c.Len() != 1 {
		t.Fatalf("Len() after removing one duplicate = %d, want 1", c.Len())
	}
	if got, want := c.Aggregate(), riceBase.Scale(0.5); got != want {
		t.Errorf("remaining contribution = %+v, want %+v", got, want)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()
	c := New()
	e := addFood(t, c, nil)

	c.Remove(e.ID)
	c.Remove(e.ID) // double tap, stale closure
	c.Remove("missing")

	if !c.IsEmpty() {
		t.Errorf("cart not empty after removes: %d entries", c.Len())
	}
}

func TestUpdateAmountClampsToZero(t *testing.T) {
	t.Parallel()
	c := New()
	e := addFood(t, c, nil)

	c.UpdateAmount(e.ID, -5)

	entries := c.Entries()
	if len(entries) != 1 {
		t.Fatalf("negative update removed the entry: %d entries", len(entries))
	}
	if entries[0].Amount != 0 {
		t.Errorf("Amount = %v, want 0", entries[0].Amount)
	}

	// stale id is a no-op
	c.UpdateAmount("missing", 42)
	if got := c.Entries()[0].Amount; got != 0 {
		t.Errorf("stale update changed amount to %v", got)
	}
}

func TestClearIsLocalAndSynchronous(t *testing.T) {
	t.Parallel()
	c := New()
	addFood(t, c, nil)
	addMeal(t, c, nil)

	c.Clear()

	if !c.IsEmpty() {
		t.Errorf("cart not empty after Clear: %d entries", c.Len())
	}
	if got := c.Aggregate(); got != (entities.NutrientVector{}) {
		t.Errorf("Aggregate after Clear = %+v, want zero", got)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	t.Parallel()
	c := New()
	addFood(t, c, nil)

	snapshot := c.Entries()
	c.UpdateAmount(snapshot[0].ID, 250)

	if snapshot[0].Amount != 100 {
		t.Errorf("snapshot aliases live cart: amount = %v", snapshot[0].Amount)
	}
}

func TestHasSource(t *testing.T) {
	t.Parallel()
	c := New()
	e := addFood(t, c, nil)

	if !c.HasSource(domain.SourceKindFood, "food-1") {
		t.Error("HasSource = false for present source")
	}
	c.Remove(e.ID)
	if c.HasSource(domain.SourceKindFood, "food-1") {
		t.Error("HasSource = true after removal")
	}
}
