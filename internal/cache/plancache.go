// Package cache keeps the subscription plan catalogue in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

const plansKey = "plans:all"

// PlanCache is a read-through cache of the plan list. A nil client turns
// every call into a miss, so the service keeps working without Redis.
type PlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPlanCache(client *redis.Client, ttl time.Duration) *PlanCache {
	return &PlanCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *PlanCache) Get(ctx context.Context) ([]domain.SubscriptionPlan, bool) {
	if c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, plansKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("plan cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var plans []domain.SubscriptionPlan
	if err := json.Unmarshal(data, &plans); err != nil {
		zap.L().Warn("plan cache entry is corrupt", zap.Error(err))
		return nil, false
	}
	return plans, true
}

func (c *PlanCache) Set(ctx context.Context, plans []domain.SubscriptionPlan) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(plans)
	if err != nil {
		zap.L().Warn("can't encode plans for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, plansKey, string(data), c.ttl).Err(); err != nil {
		zap.L().Warn("plan cache write failed", zap.Error(err))
	}
}

func (c *PlanCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, plansKey).Err(); err != nil {
		zap.L().Warn("plan cache invalidation failed", zap.Error(err))
	}
}
