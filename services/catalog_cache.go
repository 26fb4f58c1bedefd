package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
)

// dishCachePrefix namespaces the per-category listing keys: dish_<categoryId>.
const dishCachePrefix = "dish_"

// CatalogCache owns the cache key scheme and invalidation policy for
// category-scoped dish listings. Reads go cache-first and repopulate on
// miss; writes to the catalog never touch the cache except to delete from
// it, so a cached listing is always byte-for-byte what the store returned
// the last time someone read through.
type CatalogCache struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewCatalogCache(db *gorm.DB, rdb *redis.Client) *CatalogCache {
	return &CatalogCache{db: db, rdb: rdb}
}

func (cc *CatalogCache) key(categoryID uint) string {
	return fmt.Sprintf("%s%d", dishCachePrefix, categoryID)
}

// GetByCategory returns the enabled dishes of one category, flavors
// included. A cache hit is returned as-is with no staleness check. On miss
// the store is queried and the result written back under the same key with
// no expiry. An unreachable cache counts as a miss: the caller gets store
// data, never a cache error.
func (cc *CatalogCache) GetByCategory(ctx context.Context, categoryID uint) ([]models.Dish, error) {
	key := cc.key(categoryID)

	raw, err := cc.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var dishes []models.Dish
		if jsonErr := json.Unmarshal(raw, &dishes); jsonErr == nil {
			return dishes, nil
		}
		// unreadable entry, fall through to the store
		utils.ErrorLogger.Printf("catalog cache: corrupt entry for %s, reading store", key)
	} else if !errors.Is(err, redis.Nil) {
		utils.ErrorLogger.Printf("catalog cache: read failed for %s, falling back to store: %v", key, err)
	}

	var dishes []models.Dish
	if err := cc.db.WithContext(ctx).
		Preload("Flavors").
		Where("category_id = ? AND status = ?", categoryID, models.StatusEnable).
		Find(&dishes).Error; err != nil {
		return nil, utils.DependencyError("failed to query dishes", err)
	}

	payload, err := json.Marshal(dishes)
	if err != nil {
		return dishes, nil
	}
	// A failed populate only costs the next reader a miss, so it is logged
	// and absorbed. Concurrent misses may race on this Set; last writer wins
	// with an identical deterministic payload.
	if err := cc.rdb.Set(ctx, key, payload, 0).Err(); err != nil {
		utils.ErrorLogger.Printf("catalog cache: populate failed for %s: %v", key, err)
	}

	return dishes, nil
}

// Invalidate drops the listing of a single category. Used when the affected
// category is known and cannot have changed, i.e. dish creation.
func (cc *CatalogCache) Invalidate(ctx context.Context, categoryID uint) error {
	if err := cc.rdb.Del(ctx, cc.key(categoryID)).Err(); err != nil {
		return utils.DependencyError("failed to evict catalog cache", err)
	}
	return nil
}

// InvalidateAll drops every dish_* listing. A delete that fails is fatal
// and must reach the caller: serving stale catalog data indefinitely is
// worse than a failed write acknowledgement.
func (cc *CatalogCache) InvalidateAll(ctx context.Context) error {
	keys, err := cc.rdb.Keys(ctx, dishCachePrefix+"*").Result()
	if err != nil {
		return utils.DependencyError("failed to scan catalog cache keys", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := cc.rdb.Del(ctx, keys...).Err(); err != nil {
		return utils.DependencyError("failed to evict catalog cache", err)
	}
	return nil
}
