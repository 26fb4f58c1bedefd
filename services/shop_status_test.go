package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/food-order-app/utils"
)

func TestShopStatusDefaultsClosed(t *testing.T) {
	mr, rdb := newTestRedis(t)
	svc := NewShopStatusService(rdb)

	status, err := svc.GetStatus(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, ShopClosed, status)

	// reading the default never writes it back
	assert.False(t, mr.Exists(ShopStatusKey))
}

func TestShopStatusSetGet(t *testing.T) {
	_, rdb := newTestRedis(t)
	svc := NewShopStatusService(rdb)
	ctx := context.Background()

	assert.NoError(t, svc.SetStatus(ctx, ShopOpen))
	status, err := svc.GetStatus(ctx)
	assert.NoError(t, err)
	assert.Equal(t, ShopOpen, status)

	assert.NoError(t, svc.SetStatus(ctx, ShopClosed))
	status, err = svc.GetStatus(ctx)
	assert.NoError(t, err)
	assert.Equal(t, ShopClosed, status)
}

func TestShopStatusRejectsBogusValues(t *testing.T) {
	_, rdb := newTestRedis(t)
	svc := NewShopStatusService(rdb)

	err := svc.SetStatus(context.Background(), 5)
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestShopStatusCacheDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	svc := NewShopStatusService(rdb)
	mr.Close()

	_, err := svc.GetStatus(context.Background())
	assert.Equal(t, utils.CodeDependency, utils.ErrorCode(err))

	err = svc.SetStatus(context.Background(), ShopOpen)
	assert.Equal(t, utils.CodeDependency, utils.ErrorCode(err))
}
