package catalog

import (
	"context"

	"gorm.io/gorm"

	"nutricart-backend/domain"
	"nutricart-backend/entities"
)

type (
	CatalogRepository interface {
		GetFoodByID(ctx context.Context, id string) (*entities.CatalogFood, error)
		GetMealByID(ctx context.Context, id string) (*entities.CatalogMeal, error)
		GetFoods(ctx context.Context, userID string, query string, page, limit int) ([]*entities.CatalogFood, int64, error)
		GetMeals(ctx context.Context, userID string, query string, page, limit int) ([]*entities.CatalogMeal, int64, error)
		CreateFood(ctx context.Context, food *entities.CatalogFood) error

		FavoriteWriter
		SetCartFlag(ctx context.Context, userID, itemID, sourceKind string, inCart bool) error
		ClearAllCartFlags(ctx context.Context, userID string) error
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetFoodByID(ctx context.Context, id string) (*entities.CatalogFood, error) {
	var food entities.CatalogFood
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *catalogRepository) GetMealByID(ctx context.Context, id string) (*entities.CatalogMeal, error) {
	var meal entities.CatalogMeal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *catalogRepository) GetFoods(ctx context.Context, userID string, query string, page, limit int) ([]*entities.CatalogFood, int64, error) {
	var foods []*entities.CatalogFood
	var count int64

	offset := (page - 1) * limit

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}

	if err := q.Model(&entities.CatalogFood{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Offset(offset).Limit(limit).
		Order("is_favorite desc, name asc").
		Find(&foods).Error; err != nil {
		return nil, 0, err
	}

	return foods, count, nil
}

func (r *catalogRepository) GetMeals(ctx context.Context, userID string, query string, page, limit int) ([]*entities.CatalogMeal, int64, error) {
	var meals []*entities.CatalogMeal
	var count int64

	offset := (page - 1) * limit

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}

	if err := q.Model(&entities.CatalogMeal{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Offset(offset).Limit(limit).
		Order("is_favorite desc, name asc").
		Find(&meals).Error; err != nil {
		return nil, 0, err
	}

	return meals, count, nil
}

func (r *catalogRepository) CreateFood(ctx context.Context, food *entities.CatalogFood) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *catalogRepository) SetFavorite(ctx context.Context, userID, itemID, sourceKind string, value bool) error {
	return r.db.WithContext(ctx).Model(r.model(sourceKind)).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("is_favorite", value).Error
}

func (r *catalogRepository) SetCartFlag(ctx context.Context, userID, itemID, sourceKind string, inCart bool) error {
	return r.db.WithContext(ctx).Model(r.model(sourceKind)).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("is_in_cart", inCart).Error
}

// ClearAllCartFlags lowers every reserved flag for the user in one batched
// update per catalog table. Resetting an already-clear flag is a no-op, so
// the call is idempotent.
func (r *catalogRepository) ClearAllCartFlags(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Model(&entities.CatalogFood{}).
		Where("user_id = ? AND is_in_cart = ?", userID, true).
		Update("is_in_cart", false).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&entities.CatalogMeal{}).
		Where("user_id = ? AND is_in_cart = ?", userID, true).
		Update("is_in_cart", false).Error
}

func (r *catalogRepository) model(sourceKind string) interface{} {
	if sourceKind == domain.SourceKindMeal {
		return &entities.CatalogMeal{}
	}
	return &entities.CatalogFood{}
}
