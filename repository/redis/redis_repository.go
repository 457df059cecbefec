package redis

import (
	"context"
	"encoding/json"
	"time"

	redisclient "github.com/muhammadheryan/stock-ledger/cmd/redis"
	"github.com/muhammadheryan/stock-ledger/model"
	goredis "github.com/redis/go-redis/v9"
)

// Repository caches per-SKU availability summaries and throttles low-stock
// alert facts. Redis being down degrades to cache misses, never to errors
// surfaced to callers.
type Repository interface {
	GetAvailability(ctx context.Context, sku string) (*model.SKUAvailability, error)
	SetAvailability(ctx context.Context, a *model.SKUAvailability, ttl time.Duration) error
	InvalidateAvailability(ctx context.Context, sku string) error
	AcquireAlertSlot(ctx context.Context, sku string, ttl time.Duration) (bool, error)
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func availabilityKey(sku string) string {
	return "availability:" + sku
}

// GetAvailability returns the cached summary, or nil on miss.
func (r *redis) GetAvailability(ctx context.Context, sku string) (*model.SKUAvailability, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, availabilityKey(sku)).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var a model.SKUAvailability
	if err := json.Unmarshal([]byte(val), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// SetAvailability stores the summary with a short TTL.
func (r *redis) SetAvailability(ctx context.Context, a *model.SKUAvailability, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	body, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return client.Set(ctx, availabilityKey(a.SKU), body, ttl).Err()
}

// InvalidateAvailability drops the cached summary after a mutation.
func (r *redis) InvalidateAvailability(ctx context.Context, sku string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, availabilityKey(sku)).Err()
}

// AcquireAlertSlot reports whether a low-stock alert for the SKU may fire
// now. The slot is a SETNX key with TTL, so repeated triggers within the
// window are suppressed.
func (r *redis) AcquireAlertSlot(ctx context.Context, sku string, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return true, nil
	}
	return client.SetNX(ctx, "lowstock:"+sku, time.Now().Unix(), ttl).Result()
}
