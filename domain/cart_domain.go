package domain

import "errors"

var (
	MessageSuccessAddCartEntry    = "cart entry added successfully"
	MessageSuccessUpdateCartEntry = "cart entry updated successfully"
	MessageSuccessRemoveCartEntry = "cart entry removed successfully"
	MessageSuccessGetCart         = "cart retrieved successfully"
	MessageSuccessClearCart       = "cart cleared successfully"
	MessageSuccessCartFocus       = "cart reconciled successfully"
	MessageSuccessSuggestName     = "meal name suggested successfully"

	MessageFailedAddCartEntry    = "failed to add cart entry"
	MessageFailedUpdateCartEntry = "failed to update cart entry"
	MessageFailedRemoveCartEntry = "failed to remove cart entry"
	MessageFailedGetCart         = "failed to retrieve cart"
	MessageFailedClearCart       = "failed to clear cart"
	MessageFailedCartFocus       = "failed to reconcile cart"
	MessageFailedSuggestName     = "failed to suggest meal name"

	ErrCatalogItemNotFound = errors.New("catalog item not found")
)

type (
	AddCartEntryRequest struct {
		SourceKind string   `json:"source_kind" validate:"required,oneof=food meal"`
		SourceID   string   `json:"source_id" validate:"required,uuid"`
		Amount     *float64 `json:"amount" validate:"omitempty"`
		Unit       string   `json:"unit" validate:"omitempty"`
	}

	UpdateCartEntryRequest struct {
		Amount float64 `json:"amount"`
	}

	CartEntryResponse struct {
		EntryID    string         `json:"entry_id"`
		SourceKind string         `json:"source_kind"`
		SourceID   string         `json:"source_id"`
		Name       string         `json:"name"`
		Nutrients  NutrientTotals `json:"nutrients_base"`
		Amount     float64        `json:"amount"`
		Unit       string         `json:"unit"`
		ImageURL   string         `json:"image_url,omitempty"`
	}

	CartResponse struct {
		Entries   []CartEntryResponse `json:"entries"`
		Aggregate NutrientTotals      `json:"aggregate"`
	}

	NutrientTotals struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Sugar    float64 `json:"sugar"`
		Fiber    float64 `json:"fiber"`
		Sodium   float64 `json:"sodium"`
	}

	SuggestNameResponse struct {
		Suggestion string `json:"suggestion"`
	}
)
