package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
)

func newCartFixture(t *testing.T) (*CartService, *gorm.DB, *models.Dish, *models.ComboMeal) {
	t.Helper()
	db := newTestDB(t)

	dish := &models.Dish{Name: "Kung Pao Chicken", CategoryID: 3, Price: 18.00,
		Image: "http://img/kpc.png", Status: models.StatusEnable}
	seedDish(t, db, dish)

	combo := &models.ComboMeal{Name: "Family Feast", Price: 45.00,
		Image: "http://img/feast.png", Status: models.StatusEnable}
	if err := db.Create(combo).Error; err != nil {
		t.Fatalf("failed to seed combo meal: %v", err)
	}

	return NewCartService(db), db, dish, combo
}

func TestCartAddCreatesThenMerges(t *testing.T) {
	svc, db, dish, combo := newCartFixture(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, 1, models.DishRef(dish.ID))
	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 18.00, item.UnitAmount)
	assert.Equal(t, "Kung Pao Chicken", item.Name)
	assert.Equal(t, "http://img/kpc.png", item.Image)
	assert.Equal(t, models.CartItemDish, item.ItemType)

	// repeat add merges into the same row, snapshot untouched
	item, err = svc.Add(ctx, 1, models.DishRef(dish.ID))
	assert.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 18.00, item.UnitAmount)

	var rows int64
	assert.NoError(t, db.Model(&models.CartItem{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	// a combo meal is a separate line item
	item, err = svc.Add(ctx, 1, models.ComboRef(combo.ID))
	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 45.00, item.UnitAmount)
	assert.Equal(t, models.CartItemCombo, item.ItemType)

	assert.NoError(t, db.Model(&models.CartItem{}).Count(&rows).Error)
	assert.EqualValues(t, 2, rows)
}

func TestCartRepeatAddsAccumulate(t *testing.T) {
	svc, db, dish, _ := newCartFixture(t)
	ctx := context.Background()

	const adds = 7
	for i := 0; i < adds; i++ {
		_, err := svc.Add(ctx, 1, models.DishRef(dish.ID))
		assert.NoError(t, err)
	}

	var items []models.CartItem
	assert.NoError(t, db.Find(&items).Error)
	assert.Len(t, items, 1)
	assert.Equal(t, adds, items[0].Quantity)
}

func TestCartConcurrentAddsMergeIntoOneRow(t *testing.T) {
	svc, db, dish, _ := newCartFixture(t)
	ctx := context.Background()

	// All racers target the same (user, product) pair: whatever interleaving
	// the scheduler picks, every add must succeed and land on a single row.
	const racers = 8
	errs := make(chan error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Add(ctx, 1, models.DishRef(dish.ID))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	var items []models.CartItem
	assert.NoError(t, db.Find(&items).Error)
	assert.Len(t, items, 1)
	assert.Equal(t, racers, items[0].Quantity)
}

func TestCartAddValidation(t *testing.T) {
	svc, _, _, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 0, models.DishRef(1))
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))

	_, err = svc.Add(ctx, 1, models.CartRef{})
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))

	_, err = svc.Add(ctx, 1, models.CartRef{Kind: "PIZZA", ID: 1})
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestCartAddUnknownOrDisabledProduct(t *testing.T) {
	svc, db, dish, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, models.DishRef(9999))
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))

	_, err = svc.Add(ctx, 1, models.ComboRef(9999))
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))

	// a disabled dish is not an active record
	assert.NoError(t, db.Model(dish).Update("status", models.StatusDisable).Error)
	_, err = svc.Add(ctx, 1, models.DishRef(dish.ID))
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))

	// and nothing was inserted along the way
	var rows int64
	assert.NoError(t, db.Model(&models.CartItem{}).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestCartAddDetectsDuplicateRows(t *testing.T) {
	svc, db, dish, _ := newCartFixture(t)
	ctx := context.Background()

	// Sabotage the uniqueness invariant to prove the service refuses to
	// silently pick one of several duplicate rows.
	assert.NoError(t, db.Exec("DROP INDEX idx_cart_user_item").Error)
	for i := 0; i < 2; i++ {
		assert.NoError(t, db.Create(&models.CartItem{
			UserID: 1, ItemType: models.CartItemDish, ItemID: dish.ID,
			Name: dish.Name, UnitAmount: dish.Price, Quantity: 1,
		}).Error)
	}

	_, err := svc.Add(ctx, 1, models.DishRef(dish.ID))
	assert.Equal(t, utils.CodeIntegrity, utils.ErrorCode(err))
}

func TestCartListScopedToUser(t *testing.T) {
	svc, _, dish, combo := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, models.DishRef(dish.ID))
	assert.NoError(t, err)
	_, err = svc.Add(ctx, 2, models.ComboRef(combo.ID))
	assert.NoError(t, err)

	items, err := svc.List(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, models.CartItemDish, items[0].ItemType)

	items, err = svc.List(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, models.CartItemCombo, items[0].ItemType)

	items, err = svc.List(ctx, 3)
	assert.NoError(t, err)
	assert.Empty(t, items)
}
