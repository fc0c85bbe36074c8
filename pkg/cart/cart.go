package cart

import (
	"math"
	"sync"

	"github.com/google/uuid"

	"nutricart-backend/domain"
	"nutricart-backend/entities"
)

const (
	defaultFoodAmount = 100
	defaultMealAmount = 1
	defaultMealUnit   = "serving"
)

// Entry is one line item in the working cart. Base nutrients are captured at
// add time and never re-read from the catalog, so later catalog edits do not
// change entries already in the cart.
type Entry struct {
	ID         string
	SourceKind string // domain.SourceKindFood or domain.SourceKindMeal
	SourceID   string
	Name       string
	Base       entities.NutrientVector
	Amount     float64
	Unit       string
	ImageURL   string
}

// Contribution applies the per-kind scaling rule. Food bases are per 100
// units of the serving unit, meal bases are absolute totals for one serving.
func (e Entry) Contribution() entities.NutrientVector {
	if e.SourceKind == domain.SourceKindMeal {
		return e.Base.Scale(e.Amount)
	}
	return e.Base.Scale(e.Amount / 100)
}

// Cart is the owned, ordered collection of entries for one logging session.
// Mutations hold the lock, so they are atomic with respect to each other.
type Cart struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// Add appends a new entry with a fresh entry ID. Missing, negative or NaN
// amounts fall back to the kind's default (100 units for food, 1 serving for
// a meal) instead of being rejected.
func (c *Cart) Add(sourceKind, sourceID, name string, base entities.NutrientVector, amount *float64, unit, imageURL string) Entry {
	resolved := defaultAmount(sourceKind)
	if amount != nil && !math.IsNaN(*amount) && *amount >= 0 {
		resolved = *amount
	}
	if unit == "" {
		unit = defaultUnit(sourceKind)
	}

	entry := Entry{
		ID:         uuid.New().String(),
		SourceKind: sourceKind,
		SourceID:   sourceID,
		Name:       name,
		Base:       base,
		Amount:     resolved,
		Unit:       unit,
		ImageURL:   imageURL,
	}

	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()
	return entry
}

// Remove deletes the entry with the given ID. A stale or double-tapped ID is
// a no-op, not an error.
func (c *Cart) Remove(entryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.entries {
		if e.ID == entryID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// UpdateAmount clamps negative input to zero. An entry is never removed
// implicitly by an amount update; absent IDs are a no-op.
func (c *Cart) UpdateAmount(entryID string, amount float64) {
	if amount < 0 || math.IsNaN(amount) {
		amount = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ID == entryID {
			c.entries[i].Amount = amount
			return
		}
	}
}

// Clear empties the cart synchronously. Backend flag reconciliation is the
// sync controller's job, invoked separately.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}

// Entries returns a copy of the entry list in insertion order.
func (c *Cart) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// HasSource reports whether any entry still references the given catalog item.
func (c *Cart) HasSource(sourceKind, sourceID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.SourceKind == sourceKind && e.SourceID == sourceID {
			return true
		}
	}
	return false
}

// Aggregate folds every entry's scaled contribution into a fresh vector. It
// is pure: correctness never depends on callers memoizing the result.
func (c *Cart) Aggregate() entities.NutrientVector {
	var total entities.NutrientVector
	for _, e := range c.Entries() {
		total = total.Add(e.Contribution())
	}
	return total
}

func defaultAmount(sourceKind string) float64 {
	if sourceKind == domain.SourceKindMeal {
		return defaultMealAmount
	}
	return defaultFoodAmount
}

// defaultUnit is the last-resort unit when neither the request nor the
// catalog item supplied one; food units normally come from the source record.
func defaultUnit(sourceKind string) string {
	if sourceKind == domain.SourceKindMeal {
		return defaultMealUnit
	}
	return "g"
}
