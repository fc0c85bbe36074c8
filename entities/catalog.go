package entities

import (
	"github.com/google/uuid"
)

// CatalogFood is a food record the user can add to the cart. Nutrients are
// stored per 100 units of ServingUnit.
type CatalogFood struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	Name          string         `json:"name"`
	Nutrients     NutrientVector `gorm:"embedded" json:"nutrients"`
	ServingUnit   string         `json:"serving_unit"` // "g", "ml" or "oz"
	IsFavorite    bool           `json:"is_favorite"`
	IsInCart      bool           `json:"is_in_cart"`
	IsUserCreated bool           `json:"is_user_created"`
	ImageURL      string         `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// CatalogMeal is a saved meal template. Nutrients are absolute totals for one
// serving of the whole meal.
type CatalogMeal struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	Name          string         `json:"name"`
	Nutrients     NutrientVector `gorm:"embedded" json:"nutrients"`
	IsFavorite    bool           `json:"is_favorite"`
	IsInCart      bool           `json:"is_in_cart"`
	IsUserCreated bool           `json:"is_user_created"`
	ImageURL      string         `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
