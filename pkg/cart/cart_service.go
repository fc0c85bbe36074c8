package cart

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nutricart-backend/domain"
	"nutricart-backend/entities"
	"nutricart-backend/pkg/catalog"
	"nutricart-backend/pkg/mealname"
)

type (
	CartService interface {
		AddEntry(ctx context.Context, req domain.AddCartEntryRequest, userID string) (domain.CartEntryResponse, error)
		UpdateEntry(ctx context.Context, entryID string, req domain.UpdateCartEntryRequest, userID string) error
		RemoveEntry(ctx context.Context, entryID string, userID string) error
		GetCart(ctx context.Context, userID string) (domain.CartResponse, error)
		ClearCart(ctx context.Context, userID string) error
		ScreenFocus(ctx context.Context, userID string) error
		SuggestName(ctx context.Context, userID string) (domain.SuggestNameResponse, error)

		// Session exposes the user's live cart to the commit transaction.
		Session(userID string) *Cart
		Sync() *SyncController
	}

	cartService struct {
		carts             *Manager
		catalogRepository catalog.CatalogRepository
		sync              *SyncController
	}
)

func NewCartService(carts *Manager, catalogRepository catalog.CatalogRepository, sync *SyncController) CartService {
	return &cartService{
		carts:             carts,
		catalogRepository: catalogRepository,
		sync:              sync,
	}
}

func (s *cartService) AddEntry(ctx context.Context, req domain.AddCartEntryRequest, userID string) (domain.CartEntryResponse, error) {
	var (
		name, unit, imageURL string
		base                 entities.NutrientVector
	)

	switch req.SourceKind {
	case domain.SourceKindFood:
		food, err := s.catalogRepository.GetFoodByID(ctx, req.SourceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CartEntryResponse{}, domain.ErrCatalogItemNotFound
			}
			return domain.CartEntryResponse{}, err
		}
		if food.UserID.String() != userID {
			return domain.CartEntryResponse{}, domain.ErrUserNotAllowed
		}
		name, unit, imageURL = food.Name, food.ServingUnit, food.ImageURL
		base = food.Nutrients
	case domain.SourceKindMeal:
		meal, err := s.catalogRepository.GetMealByID(ctx, req.SourceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CartEntryResponse{}, domain.ErrCatalogItemNotFound
			}
			return domain.CartEntryResponse{}, err
		}
		if meal.UserID.String() != userID {
			return domain.CartEntryResponse{}, domain.ErrUserNotAllowed
		}
		name, unit, imageURL = meal.Name, defaultMealUnit, meal.ImageURL
		base = meal.Nutrients
	default:
		return domain.CartEntryResponse{}, domain.ErrInvalidSourceKind
	}

	if req.Unit != "" {
		unit = req.Unit
	}

	entry := s.Session(userID).Add(req.SourceKind, req.SourceID, name, base, req.Amount, unit, imageURL)
	s.sync.MarkInCart(userID, req.SourceID, req.SourceKind, true)

	return toEntryResponse(entry), nil
}

func (s *cartService) UpdateEntry(ctx context.Context, entryID string, req domain.UpdateCartEntryRequest, userID string) error {
	s.Session(userID).UpdateAmount(entryID, req.Amount)
	return nil
}

func (s *cartService) RemoveEntry(ctx context.Context, entryID string, userID string) error {
	c := s.Session(userID)

	var removed *Entry
	for _, e := range c.Entries() {
		if e.ID == entryID {
			e := e
			removed = &e
			break
		}
	}

	c.Remove(entryID)

	// Only the last entry referencing a source lowers its reserved flag;
	// duplicates keep it raised.
	if removed != nil && !c.HasSource(removed.SourceKind, removed.SourceID) {
		s.sync.MarkInCart(userID, removed.SourceID, removed.SourceKind, false)
	}
	return nil
}

func (s *cartService) GetCart(ctx context.Context, userID string) (domain.CartResponse, error) {
	c := s.Session(userID)

	entries := c.Entries()
	response := domain.CartResponse{
		Entries:   make([]domain.CartEntryResponse, 0, len(entries)),
		Aggregate: toTotals(c.Aggregate()),
	}
	for _, e := range entries {
		response.Entries = append(response.Entries, toEntryResponse(e))
	}
	return response, nil
}

func (s *cartService) ClearCart(ctx context.Context, userID string) error {
	s.sync.ResetProtocol(userID, s.Session(userID))
	return nil
}

// ScreenFocus is the navigation layer's signal that the cart screen regained
// focus. With an empty local cart it sweeps any dangling reserved flags; a
// populated cart is left alone.
func (s *cartService) ScreenFocus(ctx context.Context, userID string) error {
	if s.Session(userID).IsEmpty() {
		s.sync.ReassertFlags(userID)
	}
	return nil
}

func (s *cartService) SuggestName(ctx context.Context, userID string) (domain.SuggestNameResponse, error) {
	entries := s.Session(userID).Entries()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return domain.SuggestNameResponse{Suggestion: mealname.Suggest(names)}, nil
}

func (s *cartService) Session(userID string) *Cart {
	return s.carts.Session(userID)
}

func (s *cartService) Sync() *SyncController {
	return s.sync
}

func toEntryResponse(e Entry) domain.CartEntryResponse {
	return domain.CartEntryResponse{
		EntryID:    e.ID,
		SourceKind: e.SourceKind,
		SourceID:   e.SourceID,
		Name:       e.Name,
		Nutrients:  toTotals(e.Base),
		Amount:     e.Amount,
		Unit:       e.Unit,
		ImageURL:   e.ImageURL,
	}
}

func toTotals(v entities.NutrientVector) domain.NutrientTotals {
	return domain.NutrientTotals{
		Calories: v.Calories,
		Protein:  v.Protein,
		Carbs:    v.Carbs,
		Fat:      v.Fat,
		Sugar:    v.Sugar,
		Fiber:    v.Fiber,
		Sodium:   v.Sodium,
	}
}
