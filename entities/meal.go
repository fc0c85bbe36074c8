package entities

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a committed meal log. Nutrients hold absolute rounded totals; the
// per-entry bases stay unscaled so a viewer can re-derive each contribution.
type Meal struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	MealName      string         `json:"meal_name"`
	Nutrients     NutrientVector `gorm:"embedded" json:"nutrients"`
	Date          time.Time      `gorm:"type:date" json:"date"`
	LoggedTime    string         `json:"logged_time"` // "15:04"
	ImageURL      string         `json:"image_url,omitempty"`
	IsCustomSaved bool           `json:"is_custom_saved"`
	IsLogged      bool           `json:"is_logged"`

	Entries []MealEntry `gorm:"foreignKey:MealID" json:"entries"`
	User    *User       `gorm:"foreignKey:UserID"`
	Timestamp
}

type MealEntry struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MealID     uuid.UUID      `json:"meal_id"`
	SourceID   string         `json:"source_id"`
	SourceKind string         `json:"source_kind"` // "food" or "meal"
	Name       string         `json:"name"`
	Nutrients  NutrientVector `gorm:"embedded;embeddedPrefix:base_" json:"nutrients_base"`
	Amount     float64        `json:"amount"`
	Unit       string         `json:"unit"`
}
