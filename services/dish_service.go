package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
)

// DishService owns every catalog write. Each mutation runs its store
// transaction first and then evicts the catalog cache unconditionally,
// even when the write failed partway, so the next read is authoritative
// either way. A failed eviction outranks the write result.
type DishService struct {
	db    *gorm.DB
	cache *CatalogCache
}

func NewDishService(db *gorm.DB, cache *CatalogCache) *DishService {
	return &DishService{db: db, cache: cache}
}

// DishPageQuery filters the admin listing.
type DishPageQuery struct {
	Name       string
	CategoryID uint
	Status     *int
	Page       int
	PageSize   int
}

// Create inserts the dish and its flavors in one transaction, then evicts
// the affected category listing. The category of a brand new dish cannot
// have changed, so a scoped eviction is safe here.
func (s *DishService) Create(ctx context.Context, dish *models.Dish) error {
	if dish.Name == "" || dish.CategoryID == 0 {
		return utils.ValidationError("dish name and category are required")
	}

	writeErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flavors := dish.Flavors
		dish.Flavors = nil
		if err := tx.Create(dish).Error; err != nil {
			return err
		}
		for i := range flavors {
			flavors[i].DishID = dish.ID
		}
		if len(flavors) > 0 {
			if err := tx.Create(&flavors).Error; err != nil {
				return err
			}
		}
		dish.Flavors = flavors
		return nil
	})

	if cacheErr := s.cache.Invalidate(ctx, dish.CategoryID); cacheErr != nil {
		return cacheErr
	}
	return writeErr
}

// GetByID loads a dish with its flavors.
func (s *DishService) GetByID(ctx context.Context, id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := s.db.WithContext(ctx).Preload("Flavors").First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("dish not found")
		}
		return nil, utils.DependencyError("failed to load dish", err)
	}
	return &dish, nil
}

// Update rewrites the dish row and replaces its flavors wholesale (delete
// all, re-insert) in one transaction. No flavor diffing. The whole dish_*
// namespace is evicted because the category itself may have changed.
func (s *DishService) Update(ctx context.Context, dish *models.Dish) error {
	if dish.ID == 0 {
		return utils.ValidationError("dish id is required")
	}

	var existing models.Dish
	if err := s.db.WithContext(ctx).First(&existing, dish.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("dish not found")
		}
		return utils.DependencyError("failed to load dish", err)
	}

	writeErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Dish{}).
			Where("id = ?", dish.ID).
			Select("name", "category_id", "price", "image", "description", "status").
			Updates(dish).Error; err != nil {
			return err
		}
		if err := tx.Where("dish_id = ?", dish.ID).Delete(&models.DishFlavor{}).Error; err != nil {
			return err
		}
		for i := range dish.Flavors {
			dish.Flavors[i].ID = 0
			dish.Flavors[i].DishID = dish.ID
		}
		if len(dish.Flavors) > 0 {
			if err := tx.Create(&dish.Flavors).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if cacheErr := s.cache.InvalidateAll(ctx); cacheErr != nil {
		return cacheErr
	}
	return writeErr
}

// DeleteBatch removes dishes and their flavors. Validation is two-phase and
// all-or-nothing: every target must exist and be disabled, and none may be
// bound to a combo meal, before a single row is deleted.
func (s *DishService) DeleteBatch(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return utils.ValidationError("no dish ids given")
	}

	var dishes []models.Dish
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&dishes).Error; err != nil {
		return utils.DependencyError("failed to load dishes", err)
	}
	if len(dishes) != len(ids) {
		return utils.NotFoundError("one or more dishes do not exist")
	}
	for _, dish := range dishes {
		if dish.Status == models.StatusEnable {
			return utils.ConflictError("dish on sale cannot be deleted: " + dish.Name)
		}
	}

	var bound int64
	if err := s.db.WithContext(ctx).Model(&models.ComboMealDish{}).
		Where("dish_id IN ?", ids).Count(&bound).Error; err != nil {
		return utils.DependencyError("failed to check combo meal references", err)
	}
	if bound > 0 {
		return utils.ConflictError("dish is part of a combo meal and cannot be deleted")
	}

	writeErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			if err := tx.Delete(&models.Dish{}, id).Error; err != nil {
				return err
			}
			if err := tx.Where("dish_id = ?", id).Delete(&models.DishFlavor{}).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if cacheErr := s.cache.InvalidateAll(ctx); cacheErr != nil {
		return cacheErr
	}
	return writeErr
}

// SetStatus toggles a dish between on-sale and off-sale.
func (s *DishService) SetStatus(ctx context.Context, id uint, status int) error {
	if status != models.StatusEnable && status != models.StatusDisable {
		return utils.ValidationError("status must be 0 or 1")
	}

	var dish models.Dish
	if err := s.db.WithContext(ctx).First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("dish not found")
		}
		return utils.DependencyError("failed to load dish", err)
	}

	writeErr := s.db.WithContext(ctx).Model(&dish).Update("status", status).Error

	if cacheErr := s.cache.InvalidateAll(ctx); cacheErr != nil {
		return cacheErr
	}
	return writeErr
}

// Page serves the admin catalog listing with offset pagination.
func (s *DishService) Page(ctx context.Context, q DishPageQuery) ([]models.Dish, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 10
	}

	query := s.db.WithContext(ctx).Model(&models.Dish{})
	if q.Name != "" {
		query = query.Where("name LIKE ?", "%"+q.Name+"%")
	}
	if q.CategoryID != 0 {
		query = query.Where("category_id = ?", q.CategoryID)
	}
	if q.Status != nil {
		query = query.Where("status = ?", *q.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, utils.DependencyError("failed to count dishes", err)
	}

	var dishes []models.Dish
	if err := query.Preload("Flavors").
		Order("updated_at DESC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&dishes).Error; err != nil {
		return nil, 0, utils.DependencyError("failed to page dishes", err)
	}

	return dishes, total, nil
}
