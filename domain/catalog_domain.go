package domain

import "errors"

var (
	MessageSuccessGetCatalog     = "catalog retrieved successfully"
	MessageSuccessGetCatalogItem = "catalog item retrieved successfully"
	MessageSuccessCreateFood     = "food created successfully"
	MessageSuccessToggleFavorite = "favorite updated successfully"

	MessageFailedGetCatalog     = "failed to retrieve catalog"
	MessageFailedGetCatalogItem = "failed to retrieve catalog item"
	MessageFailedCreateFood     = "failed to create food"
	MessageFailedToggleFavorite = "failed to update favorite"

	ErrFavoriteUpdate = errors.New("favorite update rejected")
)

type (
	CreateFoodRequest struct {
		Name        string  `json:"name" validate:"required,max=120"`
		ServingUnit string  `json:"serving_unit" validate:"required,oneof=g ml oz"`
		Calories    float64 `json:"calories" validate:"min=0"`
		Protein     float64 `json:"protein" validate:"min=0"`
		Carbs       float64 `json:"carbs" validate:"min=0"`
		Fat         float64 `json:"fat" validate:"min=0"`
		Sugar       float64 `json:"sugar" validate:"min=0"`
		Fiber       float64 `json:"fiber" validate:"min=0"`
		Sodium      float64 `json:"sodium" validate:"min=0"`
	}

	ToggleFavoriteRequest struct {
		ItemID       string `json:"item_id" validate:"required,uuid"`
		SourceKind   string `json:"source_kind" validate:"required,oneof=food meal"`
		CurrentValue bool   `json:"current_value"`
	}

	CatalogItemResponse struct {
		ID            string         `json:"id"`
		SourceKind    string         `json:"source_kind"`
		Name          string         `json:"name"`
		Nutrients     NutrientTotals `json:"nutrients"`
		ServingUnit   string         `json:"serving_unit,omitempty"`
		IsFavorite    bool           `json:"is_favorite"`
		IsInCart      bool           `json:"is_in_cart"`
		IsUserCreated bool           `json:"is_user_created"`
		ImageURL      string         `json:"image_url,omitempty"`
	}
)
