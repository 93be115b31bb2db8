package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys dùng chung giữa controller, cron warmer và bước invalidate sau seed.
const (
	CacheKeyCards    = "dashboard:cards"
	CacheKeyRevenue  = "dashboard:revenue"
	DashboardKeyGlob = "dashboard:*"

	CacheTTL = 60 * time.Minute
)

// DashboardCacheAdapter cho jobs package gọi warm cache mà không phụ thuộc
// trực tiếp vào service.
type DashboardCacheAdapter struct {
	service *DashboardService
	rdb     *redis.Client
}

func NewDashboardCacheAdapter(service *DashboardService, rdb *redis.Client) *DashboardCacheAdapter {
	return &DashboardCacheAdapter{service: service, rdb: rdb}
}

// WarmDashboardCache tính lại card data và revenue rồi ghi đè cache.
func (a *DashboardCacheAdapter) WarmDashboardCache() error {
	if a.rdb == nil {
		return nil
	}

	ctx := context.Background()

	cards, err := a.service.FetchCardData(ctx)
	if err != nil {
		return err
	}
	if err := SetToRedis(ctx, a.rdb, CacheKeyCards, cards, CacheTTL); err != nil {
		return err
	}

	revenue, err := a.service.FetchRevenue(ctx)
	if err != nil {
		return err
	}
	return SetToRedis(ctx, a.rdb, CacheKeyRevenue, revenue, CacheTTL)
}
