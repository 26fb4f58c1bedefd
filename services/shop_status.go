package services

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/food-order-app/utils"
)

// ShopStatusKey is the single cache key holding the open/closed flag.
const ShopStatusKey = "SHOP_STATUS"

const (
	ShopClosed = 0
	ShopOpen   = 1
)

// ShopStatusService keeps the shop open/closed flag in the cache. Absence
// means closed; reading the default never writes it back.
type ShopStatusService struct {
	rdb *redis.Client
}

func NewShopStatusService(rdb *redis.Client) *ShopStatusService {
	return &ShopStatusService{rdb: rdb}
}

func (s *ShopStatusService) SetStatus(ctx context.Context, status int) error {
	if status != ShopClosed && status != ShopOpen {
		return utils.ValidationError("shop status must be 0 or 1")
	}
	if err := s.rdb.Set(ctx, ShopStatusKey, status, 0).Err(); err != nil {
		return utils.DependencyError("failed to store shop status", err)
	}
	return nil
}

func (s *ShopStatusService) GetStatus(ctx context.Context) (int, error) {
	status, err := s.rdb.Get(ctx, ShopStatusKey).Int()
	if errors.Is(err, redis.Nil) {
		return ShopClosed, nil
	}
	if err != nil {
		return ShopClosed, utils.DependencyError("failed to read shop status", err)
	}
	return status, nil
}
