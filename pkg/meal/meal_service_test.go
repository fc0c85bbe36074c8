package meal

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"nutricart-backend/domain"
	"nutricart-backend/entities"
	"nutricart-backend/pkg/cart"
	"nutricart-backend/pkg/catalog"
)

type fakeFlagRepository struct {
	catalog.CatalogRepository
	mu sync.Mutex
}

func (f *fakeFlagRepository) SetCartFlag(ctx context.Context, userID, itemID, sourceKind string, inCart bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return nil
}

func (f *fakeFlagRepository) ClearAllCartFlags(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return nil
}

type fakeMealRepository struct {
	createErr error
	meals     []*entities.Meal
	templates []*entities.CatalogMeal
}

func (f *fakeMealRepository) CreateMeal(ctx context.Context, meal *entities.Meal, template *entities.CatalogMeal) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.meals = append(f.meals, meal)
	if template != nil {
		f.templates = append(f.templates, template)
	}
	return nil
}

func (f *fakeMealRepository) GetMealByID(ctx context.Context, id string) (*entities.Meal, error) {
	for _, m := range f.meals {
		if m.ID.String() == id {
			return m, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeMealRepository) GetMeals(ctx context.Context, userID string, page, limit int) ([]*entities.Meal, int64, error) {
	return f.meals, int64(len(f.meals)), nil
}

func (f *fakeMealRepository) UpdateMeal(ctx context.Context, meal *entities.Meal) error {
	return nil
}

type fixture struct {
	service MealService
	cart    cart.CartService
	repo    *fakeMealRepository
	userID  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	flags := &fakeFlagRepository{}
	cartService := cart.NewCartService(cart.NewManager(), flags, cart.NewSyncController(flags))
	repo := &fakeMealRepository{}
	return &fixture{
		service: NewMealService(repo, cartService, nil),
		cart:    cartService,
		repo:    repo,
		userID:  uuid.New().String(),
	}
}

func (f *fixture) addFood(t *testing.T, name string, base entities.NutrientVector, amount float64) {
	t.Helper()
	f.cart.Session(f.userID).Add(domain.SourceKindFood, uuid.New().String(), name, base, &amount, "g", "")
}

func TestLogMealRequiresAuthentication(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.service.LogMeal(context.Background(), domain.LogMealRequest{}, "")
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("error = %v, want %v", err, domain.ErrNotAuthenticated)
	}
	if len(f.repo.meals) != 0 {
		t.Error("unauthenticated commit performed a write")
	}
}

func TestLogMealRejectsEmptyCart(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.service.LogMeal(context.Background(), domain.LogMealRequest{MealName: "Lunch"}, f.userID)
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("error = %v, want %v", err, domain.ErrEmptyCart)
	}
	if len(f.repo.meals) != 0 {
		t.Error("empty-cart commit performed a write")
	}
}

func TestLogMealRequiresNameWhenSavingTemplate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addFood(t, "Oats", entities.NutrientVector{Calories: 380}, 100)

	req := domain.LogMealRequest{MealName: "   ", SaveAsTemplate: true}
	_, err := f.service.LogMeal(context.Background(), req, f.userID)
	if !errors.Is(err, domain.ErrMissingMealName) {
		t.Fatalf("error = %v, want %v", err, domain.ErrMissingMealName)
	}
	if len(f.repo.meals) != 0 {
		t.Error("invalid commit performed a write")
	}
	if f.cart.Session(f.userID).IsEmpty() {
		t.Error("failed commit cleared the cart")
	}
}

func TestLogMealNameFallsBackToFirstEntry(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addFood(t, "Greek Yogurt", entities.NutrientVector{Calories: 59, Protein: 10}, 150)

	res, err := f.service.LogMeal(context.Background(), domain.LogMealRequest{}, f.userID)
	if err != nil {
		t.Fatalf("LogMeal: %v", err)
	}
	if res.MealName != "Greek Yogurt" {
		t.Errorf("MealName = %q, want first entry name", res.MealName)
	}
}

func TestLogMealPersistenceFailureLeavesCartIntact(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addFood(t, "Rice", entities.NutrientVector{Calories: 130, Carbs: 28}, 200)
	f.repo.createErr = errors.New("db down")

	before := f.cart.Session(f.userID).Aggregate()

	_, err := f.service.LogMeal(context.Background(), domain.LogMealRequest{MealName: "Dinner"}, f.userID)
	if !errors.Is(err, domain.ErrPersistMeal) {
		t.Fatalf("error = %v, want %v", err, domain.ErrPersistMeal)
	}

	c := f.cart.Session(f.userID)
	if c.Len() != 1 {
		t.Fatalf("cart has %d entries after failed commit, want 1", c.Len())
	}
	if got := c.Aggregate(); got != before {
		t.Errorf("aggregate changed across failed commit: %+v != %+v", got, before)
	}
}

func TestLogMealSuccessClearsCart(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addFood(t, "Rice", entities.NutrientVector{Calories: 130}, 100)

	if _, err := f.service.LogMeal(context.Background(), domain.LogMealRequest{MealName: "Dinner"}, f.userID); err != nil {
		t.Fatalf("LogMeal: %v", err)
	}

	if !f.cart.Session(f.userID).IsEmpty() {
		t.Error("cart not empty after successful commit")
	}
	if len(f.repo.meals) != 1 {
		t.Fatalf("persisted %d meals, want 1", len(f.repo.meals))
	}
	if !f.repo.meals[0].IsLogged {
		t.Error("persisted meal not marked as logged")
	}
}

func TestLogMealRoundsSnapshotOnce(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	// contributions sum to 12.34g protein and 4.06g fiber before rounding
	f.addFood(t, "Chicken", entities.NutrientVector{Calories: 165.4, Protein: 12.34, Fiber: 4.06, Sodium: 74.5}, 100)

	res, err := f.service.LogMeal(context.Background(), domain.LogMealRequest{MealName: "Lunch"}, f.userID)
	if err != nil {
		t.Fatalf("LogMeal: %v", err)
	}

	if res.Nutrients.Protein != 12.3 {
		t.Errorf("Protein = %v, want 12.3", res.Nutrients.Protein)
	}
	if res.Nutrients.Fiber != 4.1 {
		t.Errorf("Fiber = %v, want 4.1", res.Nutrients.Fiber)
	}
	if res.Nutrients.Calories != 165 {
		t.Errorf("Calories = %v, want 165", res.Nutrients.Calories)
	}
	if res.Nutrients.Sodium != 75 {
		t.Errorf("Sodium = %v, want 75 (half rounds away from zero)", res.Nutrients.Sodium)
	}

	// entry lines keep the unscaled base so contributions can be re-derived
	persisted := f.repo.meals[0]
	if len(persisted.Entries) != 1 {
		t.Fatalf("persisted %d entries, want 1", len(persisted.Entries))
	}
	if got := persisted.Entries[0].Nutrients.Protein; got != 12.34 {
		t.Errorf("entry base protein = %v, want unrounded 12.34", got)
	}
}

func TestLogMealSaveAsTemplate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addFood(t, "Oats", entities.NutrientVector{Calories: 380, Carbs: 67.8}, 100)

	req := domain.LogMealRequest{MealName: "Morning Oats", SaveAsTemplate: true}
	res, err := f.service.LogMeal(context.Background(), req, f.userID)
	if err != nil {
		t.Fatalf("LogMeal: %v", err)
	}

	if !res.IsCustomSaved {
		t.Error("response not marked custom saved")
	}
	if len(f.repo.templates) != 1 {
		t.Fatalf("persisted %d templates, want 1", len(f.repo.templates))
	}
	tpl := f.repo.templates[0]
	if tpl.Name != "Morning Oats" || !tpl.IsUserCreated {
		t.Errorf("template = %+v, want named user-created template", tpl)
	}
}
