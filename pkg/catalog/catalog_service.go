package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nutricart-backend/domain"
	"nutricart-backend/entities"
)

type (
	CatalogService interface {
		GetCatalog(ctx context.Context, userID, query string, page, limit int) ([]domain.CatalogItemResponse, int64, error)
		GetCatalogItem(ctx context.Context, sourceKind, id, userID string) (domain.CatalogItemResponse, error)
		CreateFood(ctx context.Context, req domain.CreateFoodRequest, userID string) (domain.CatalogItemResponse, error)
		ToggleFavorite(ctx context.Context, req domain.ToggleFavoriteRequest, userID string) error
	}

	catalogService struct {
		catalogRepository CatalogRepository
		favorites         *FavoriteMirror
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		favorites:         NewFavoriteMirror(),
	}
}

func (s *catalogService) GetCatalog(ctx context.Context, userID, query string, page, limit int) ([]domain.CatalogItemResponse, int64, error) {
	foods, foodCount, err := s.catalogRepository.GetFoods(ctx, userID, query, page, limit)
	if err != nil {
		return nil, 0, err
	}
	meals, mealCount, err := s.catalogRepository.GetMeals(ctx, userID, query, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.CatalogItemResponse, 0, len(foods)+len(meals))
	for _, f := range foods {
		response = append(response, s.foodResponse(userID, f))
	}
	for _, m := range meals {
		response = append(response, s.mealResponse(userID, m))
	}
	return response, foodCount + mealCount, nil
}

func (s *catalogService) GetCatalogItem(ctx context.Context, sourceKind, id, userID string) (domain.CatalogItemResponse, error) {
	switch sourceKind {
	case domain.SourceKindFood:
		food, err := s.catalogRepository.GetFoodByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CatalogItemResponse{}, domain.ErrCatalogItemNotFound
			}
			return domain.CatalogItemResponse{}, err
		}
		if food.UserID.String() != userID {
			return domain.CatalogItemResponse{}, domain.ErrUserNotAllowed
		}
		return s.foodResponse(userID, food), nil
	case domain.SourceKindMeal:
		meal, err := s.catalogRepository.GetMealByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CatalogItemResponse{}, domain.ErrCatalogItemNotFound
			}
			return domain.CatalogItemResponse{}, err
		}
		if meal.UserID.String() != userID {
			return domain.CatalogItemResponse{}, domain.ErrUserNotAllowed
		}
		return s.mealResponse(userID, meal), nil
	default:
		return domain.CatalogItemResponse{}, domain.ErrInvalidSourceKind
	}
}

func (s *catalogService) CreateFood(ctx context.Context, req domain.CreateFoodRequest, userID string) (domain.CatalogItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CatalogItemResponse{}, domain.ErrParseUUID
	}

	food := &entities.CatalogFood{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   req.Name,
		Nutrients: entities.NutrientVector{
			Calories: req.Calories,
			Protein:  req.Protein,
			Carbs:    req.Carbs,
			Fat:      req.Fat,
			Sugar:    req.Sugar,
			Fiber:    req.Fiber,
			Sodium:   req.Sodium,
		},
		ServingUnit:   req.ServingUnit,
		IsUserCreated: true,
	}

	if err := s.catalogRepository.CreateFood(ctx, food); err != nil {
		return domain.CatalogItemResponse{}, err
	}
	return s.foodResponse(userID, food), nil
}

// ToggleFavorite flips the local mirror first so the new value is readable
// immediately, then attempts the remote write and rolls the mirror back on
// rejection.
func (s *catalogService) ToggleFavorite(ctx context.Context, req domain.ToggleFavoriteRequest, userID string) error {
	toggle := &favoriteToggle{
		userID:   userID,
		itemID:   req.ItemID,
		kind:     req.SourceKind,
		previous: req.CurrentValue,
	}

	toggle.apply(s.favorites)

	if err := s.catalogRepository.SetFavorite(ctx, userID, req.ItemID, req.SourceKind, !req.CurrentValue); err != nil {
		toggle.rollback(s.favorites)
		return domain.ErrFavoriteUpdate
	}

	toggle.commit()
	return nil
}

func (s *catalogService) foodResponse(userID string, f *entities.CatalogFood) domain.CatalogItemResponse {
	return domain.CatalogItemResponse{
		ID:            f.ID.String(),
		SourceKind:    domain.SourceKindFood,
		Name:          f.Name,
		Nutrients:     toTotals(f.Nutrients),
		ServingUnit:   f.ServingUnit,
		IsFavorite:    s.favorites.Resolve(userID, domain.SourceKindFood, f.ID.String(), f.IsFavorite),
		IsInCart:      f.IsInCart,
		IsUserCreated: f.IsUserCreated,
		ImageURL:      f.ImageURL,
	}
}

func (s *catalogService) mealResponse(userID string, m *entities.CatalogMeal) domain.CatalogItemResponse {
	return domain.CatalogItemResponse{
		ID:            m.ID.String(),
		SourceKind:    domain.SourceKindMeal,
		Name:          m.Name,
		Nutrients:     toTotals(m.Nutrients),
		IsFavorite:    s.favorites.Resolve(userID, domain.SourceKindMeal, m.ID.String(), m.IsFavorite),
		IsInCart:      m.IsInCart,
		IsUserCreated: m.IsUserCreated,
		ImageURL:      m.ImageURL,
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
