package services

import (
	"context"
	"errors"
	"time"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartService merges adds into a user's cart: one row per (user, product),
// repeat adds bump the quantity. The existence check and the write run in
// one transaction on top of the cart's composite unique index, so two
// concurrent adds of the same product cannot both insert; the race loser
// retries as an increment.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Add puts one unit of the referenced product into the user's cart.
func (s *CartService) Add(ctx context.Context, userID uint, ref models.CartRef) (*models.CartItem, error) {
	if userID == 0 {
		return nil, utils.ValidationError("user is required")
	}
	if ref.ID == 0 || (ref.Kind != models.CartItemDish && ref.Kind != models.CartItemCombo) {
		return nil, utils.ValidationError("exactly one of dish_id or combo_meal_id must be set")
	}

	var result models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.CartItem
		if err := tx.Where("user_id = ? AND item_type = ? AND item_id = ?",
			userID, ref.Kind, ref.ID).Find(&existing).Error; err != nil {
			return utils.DependencyError("failed to read cart", err)
		}

		switch len(existing) {
		case 1:
			return s.increment(tx, &existing[0], &result)
		case 0:
			item, err := s.snapshot(tx, userID, ref)
			if err != nil {
				return err
			}
			if err := tx.Create(item).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// Lost the insert race, the row exists now. The re-read
					// locks the winner row so it is served as a current read
					// even under REPEATABLE READ, where a plain read would
					// still see the transaction's pre-insert snapshot.
					var winner models.CartItem
					if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
						Where("user_id = ? AND item_type = ? AND item_id = ?",
							userID, ref.Kind, ref.ID).First(&winner).Error; err != nil {
						return utils.DependencyError("failed to re-read cart after insert race", err)
					}
					return s.increment(tx, &winner, &result)
				}
				return utils.DependencyError("failed to insert cart item", err)
			}
			result = *item
			return nil
		default:
			return utils.IntegrityError("duplicate cart rows for one product")
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *CartService) increment(tx *gorm.DB, item *models.CartItem, result *models.CartItem) error {
	item.Quantity++
	if err := tx.Model(item).Update("quantity", item.Quantity).Error; err != nil {
		return utils.DependencyError("failed to update cart quantity", err)
	}
	*result = *item
	return nil
}

// snapshot resolves the product's name, image and unit price at add time.
// Only enabled products can enter a cart.
func (s *CartService) snapshot(tx *gorm.DB, userID uint, ref models.CartRef) (*models.CartItem, error) {
	item := &models.CartItem{
		UserID:    userID,
		ItemType:  ref.Kind,
		ItemID:    ref.ID,
		Quantity:  1,
		CreatedAt: time.Now(),
	}

	switch ref.Kind {
	case models.CartItemDish:
		var dish models.Dish
		if err := tx.Where("id = ? AND status = ?", ref.ID, models.StatusEnable).
			First(&dish).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.NotFoundError("dish not available")
			}
			return nil, utils.DependencyError("failed to load dish", err)
		}
		item.Name = dish.Name
		item.Image = dish.Image
		item.UnitAmount = dish.Price
	case models.CartItemCombo:
		var combo models.ComboMeal
		if err := tx.Where("id = ? AND status = ?", ref.ID, models.StatusEnable).
			First(&combo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.NotFoundError("combo meal not available")
			}
			return nil, utils.DependencyError("failed to load combo meal", err)
		}
		item.Name = combo.Name
		item.Image = combo.Image
		item.UnitAmount = combo.Price
	}

	return item, nil
}

// List returns the cart of exactly this user, regardless of any other
// query parameters a caller might smuggle in.
func (s *CartService) List(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, utils.DependencyError("failed to list cart", err)
	}
	return items, nil
}
