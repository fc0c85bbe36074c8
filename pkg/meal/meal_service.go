package meal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nutricart-backend/domain"
	"nutricart-backend/entities"
	"nutricart-backend/internal/utils/storage"
	"nutricart-backend/pkg/cart"
)

type (
	MealService interface {
		LogMeal(ctx context.Context, req domain.LogMealRequest, userID string) (domain.MealResponse, error)
		GetMeals(ctx context.Context, userID string, page, limit int) ([]domain.MealResponse, int64, error)
		GetMealByID(ctx context.Context, id, userID string) (domain.MealResponse, error)
		UploadMealImage(ctx context.Context, req domain.UploadMealImageRequest, userID string) (string, error)
	}

	mealService struct {
		mealRepository MealRepository
		cartService    cart.CartService
		s3             storage.AwsS3
	}
)

func NewMealService(mealRepository MealRepository, cartService cart.CartService, s3 storage.AwsS3) MealService {
	return &mealService{
		mealRepository: mealRepository,
		cartService:    cartService,
		s3:             s3,
	}
}

// LogMeal turns the current cart into a persisted meal record exactly once.
// The cart is snapshotted before any write, the snapshot's aggregate is
// rounded once, and the cart is only cleared after persistence succeeded, so
// a failed commit never loses in-progress entries.
func (s *mealService) LogMeal(ctx context.Context, req domain.LogMealRequest, userID string) (domain.MealResponse, error) {
	if userID == "" {
		return domain.MealResponse{}, domain.ErrNotAuthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealResponse{}, domain.ErrParseUUID
	}

	liveCart := s.cartService.Session(userID)
	snapshot := liveCart.Entries()
	if len(snapshot) == 0 {
		return domain.MealResponse{}, domain.ErrEmptyCart
	}

	mealName := strings.TrimSpace(req.MealName)
	if mealName == "" {
		if req.SaveAsTemplate {
			return domain.MealResponse{}, domain.ErrMissingMealName
		}
		mealName = snapshot[0].Name
		if mealName == "" {
			mealName = domain.DefaultMealName
		}
	}

	date := time.Now().Truncate(24 * time.Hour)
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return domain.MealResponse{}, domain.ErrInvalidDate
		}
	}
	loggedTime := req.LoggedTime
	if loggedTime == "" {
		loggedTime = time.Now().Format("15:04")
	}

	var total entities.NutrientVector
	for _, e := range snapshot {
		total = total.Add(e.Contribution())
	}
	rounded := total.Rounded()

	mealID := uuid.New()
	entryRows := make([]entities.MealEntry, 0, len(snapshot))
	for _, e := range snapshot {
		entryRows = append(entryRows, entities.MealEntry{
			ID:         uuid.New(),
			MealID:     mealID,
			SourceID:   e.SourceID,
			SourceKind: e.SourceKind,
			Name:       e.Name,
			Nutrients:  e.Base,
			Amount:     e.Amount,
			Unit:       e.Unit,
		})
	}

	record := &entities.Meal{
		ID:            mealID,
		UserID:        userUUID,
		MealName:      mealName,
		Nutrients:     rounded,
		Date:          date,
		LoggedTime:    loggedTime,
		ImageURL:      req.ImageURL,
		IsCustomSaved: req.SaveAsTemplate,
		IsLogged:      true,
		Entries:       entryRows,
	}

	var template *entities.CatalogMeal
	if req.SaveAsTemplate {
		template = &entities.CatalogMeal{
			ID:            uuid.New(),
			UserID:        userUUID,
			Name:          mealName,
			Nutrients:     rounded,
			IsUserCreated: true,
			ImageURL:      req.ImageURL,
		}
	}

	if err := s.mealRepository.CreateMeal(ctx, record, template); err != nil {
		log.Errorf("meal commit: persisting meal for user %s: %v", userID, err)
		return domain.MealResponse{}, domain.ErrPersistMeal
	}

	// Persist before clear: only a successful commit releases the cart and
	// its reserved flags.
	s.cartService.Sync().ResetProtocol(userID, liveCart)

	return toMealResponse(record), nil
}

func (s *mealService) GetMeals(ctx context.Context, userID string, page, limit int) ([]domain.MealResponse, int64, error) {
	meals, count, err := s.mealRepository.GetMeals(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		response = append(response, toMealResponse(m))
	}
	return response, count, nil
}

func (s *mealService) GetMealByID(ctx context.Context, id, userID string) (domain.MealResponse, error) {
	record, err := s.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealResponse{}, domain.ErrMealNotFound
		}
		return domain.MealResponse{}, err
	}

	if record.UserID.String() != userID {
		return domain.MealResponse{}, domain.ErrUserNotAllowed
	}
	return toMealResponse(record), nil
}

func (s *mealService) UploadMealImage(ctx context.Context, req domain.UploadMealImageRequest, userID string) (string, error) {
	record, err := s.mealRepository.GetMealByID(ctx, req.MealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrMealNotFound
		}
		return "", err
	}

	if record.UserID.String() != userID {
		return "", domain.ErrUserNotAllowed
	}

	fileName := fmt.Sprintf("meal-%s", record.ID.String())
	var objectKey string
	var uploadErr error

	if record.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(record.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "meals", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "meals", storage.AllowImage...)
	}

	if uploadErr != nil {
		return "", uploadErr
	}

	record.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.mealRepository.UpdateMeal(ctx, record); err != nil {
		return "", err
	}
	return record.ImageURL, nil
}

func toMealResponse(m *entities.Meal) domain.MealResponse {
	entries := make([]domain.MealEntryResponse, 0, len(m.Entries))
	for _, e := range m.Entries {
		entries = append(entries, domain.MealEntryResponse{
			SourceID:   e.SourceID,
			SourceKind: e.SourceKind,
			Name:       e.Name,
			Nutrients:  toTotals(e.Nutrients),
			Amount:     e.Amount,
			Unit:       e.Unit,
		})
	}

	return domain.MealResponse{
		ID:            m.ID.String(),
		MealName:      m.MealName,
		Nutrients:     toTotals(m.Nutrients),
		Date:          m.Date,
		LoggedTime:    m.LoggedTime,
		ImageURL:      m.ImageURL,
		IsCustomSaved: m.IsCustomSaved,
		IsLogged:      m.IsLogged,
		Entries:       entries,
		CreatedAt:     m.CreatedAt,
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
