package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// testEnv bundles the handles a service test needs to inspect state behind
// the service's back.
type testEnv struct {
	db *gorm.DB
	mr *miniredis.Miniredis
}

// newTestDB opens a fresh in-memory database per test. Each one gets its
// own shared-cache name so parallel tests never see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.DishCategory{},
		&models.Dish{},
		&models.DishFlavor{},
		&models.ComboMeal{},
		&models.ComboMealDish{},
		&models.CartItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// newTestRedis runs a miniredis instance and a client pointed at it.
func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func seedDish(t *testing.T, db *gorm.DB, dish *models.Dish) {
	t.Helper()
	if err := db.Create(dish).Error; err != nil {
		t.Fatalf("failed to seed dish: %v", err)
	}
}
