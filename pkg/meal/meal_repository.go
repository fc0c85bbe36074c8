package meal

import (
	"context"

	"gorm.io/gorm"

	"nutricart-backend/entities"
)

type (
	MealRepository interface {
		// CreateMeal persists the meal, its entry lines and, when non-nil,
		// the saved template in a single transaction.
		CreateMeal(ctx context.Context, meal *entities.Meal, template *entities.CatalogMeal) error
		GetMealByID(ctx context.Context, id string) (*entities.Meal, error)
		GetMeals(ctx context.Context, userID string, page, limit int) ([]*entities.Meal, int64, error)
		UpdateMeal(ctx context.Context, meal *entities.Meal) error
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal, template *entities.CatalogMeal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		if template != nil {
			if err := tx.Create(template).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).Preload("Entries").
		Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) GetMeals(ctx context.Context, userID string, page, limit int) ([]*entities.Meal, int64, error) {
	var meals []*entities.Meal
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.Meal{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Entries").
		Offset(offset).Limit(limit).
		Order("date desc, logged_time desc").
		Find(&meals).Error; err != nil {
		return nil, 0, err
	}

	return meals, count, nil
}

func (r *mealRepository) UpdateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Save(meal).Error
}
