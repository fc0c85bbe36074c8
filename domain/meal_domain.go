package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessLogMeal         = "meal logged successfully"
	MessageSuccessGetMeals        = "meals retrieved successfully"
	MessageSuccessGetMealDetails  = "meal details retrieved successfully"
	MessageSuccessUploadMealImage = "meal image uploaded successfully"

	MessageFailedLogMeal         = "failed to log meal"
	MessageFailedGetMeals        = "failed to retrieve meals"
	MessageFailedGetMealDetails  = "failed to retrieve meal details"
	MessageFailedUploadMealImage = "failed to upload meal image"

	ErrEmptyCart       = errors.New("cart is empty")
	ErrMissingMealName = errors.New("meal name is required when saving as template")
	ErrPersistMeal     = errors.New("failed to persist meal")
	ErrMealNotFound    = errors.New("meal not found")
	ErrInvalidDate     = errors.New("invalid date")
)

const DefaultMealName = "Logged meal"

type (
	LogMealRequest struct {
		MealName       string `json:"meal_name" validate:"omitempty,max=120"`
		Date           string `json:"date" validate:"omitempty"`        // "2006-01-02", defaults to today
		LoggedTime     string `json:"logged_time" validate:"omitempty"` // "15:04", defaults to now
		ImageURL       string `json:"image_url" validate:"omitempty,url"`
		SaveAsTemplate bool   `json:"save_as_template"`
	}

	MealEntryResponse struct {
		SourceID   string         `json:"source_id"`
		SourceKind string         `json:"source_kind"`
		Name       string         `json:"name"`
		Nutrients  NutrientTotals `json:"nutrients_base"`
		Amount     float64        `json:"amount"`
		Unit       string         `json:"unit"`
	}

	MealResponse struct {
		ID            string              `json:"id"`
		MealName      string              `json:"meal_name"`
		Nutrients     NutrientTotals      `json:"nutrients"`
		Date          time.Time           `json:"date"`
		LoggedTime    string              `json:"logged_time"`
		ImageURL      string              `json:"image_url,omitempty"`
		IsCustomSaved bool                `json:"is_custom_saved"`
		IsLogged      bool                `json:"is_logged"`
		Entries       []MealEntryResponse `json:"entries"`
		CreatedAt     time.Time           `json:"created_at"`
	}

	UploadMealImageRequest struct {
		MealID string                `json:"meal_id" form:"meal_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
