package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jdalisay/platebook/model"
)

type RedisClient struct {
	inner *redis.Client
}

const (
	topRestaurantsKey = "top_restaurants"

	// TopRestaurantsCacheSize is how many restaurants the cached ranking
	// holds. Requests for more than this bypass the cache.
	TopRestaurantsCacheSize = 50

	topRestaurantsTTL = 5 * time.Minute
)

var ctx = context.Background()

func GetRedisClient() *RedisClient {
	return &RedisClient{
		inner: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
			Password: os.Getenv("REDIS_PASSWD"),
			DB:       0, // use default DB
		})}
}

// GetRedisClientForAddr connects to an explicit address, used in tests to
// point the cache at a miniredis instance.
func GetRedisClientForAddr(addr string) *RedisClient {
	return &RedisClient{
		inner: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// GetTopRestaurants returns the cached ranking truncated to n, or false on
// cache miss. The cache always holds the full top TopRestaurantsCacheSize,
// so any prefix of it is a correct answer.
func (r *RedisClient) GetTopRestaurants(n int) ([]model.RestaurantView, bool) {
	if n > TopRestaurantsCacheSize {
		return nil, false
	}
	payload, err := r.inner.Get(ctx, topRestaurantsKey).Result()
	if err != nil {
		return nil, false
	}
	var views []model.RestaurantView
	if err := json.Unmarshal([]byte(payload), &views); err != nil {
		return nil, false
	}
	if n < len(views) {
		views = views[:n]
	}
	return views, true
}

// SetTopRestaurants stores the top ranking. The caller must pass the full
// top TopRestaurantsCacheSize (or all restaurants when fewer exist).
func (r *RedisClient) SetTopRestaurants(views []model.RestaurantView) error {
	payload, err := json.Marshal(views)
	if err != nil {
		return err
	}
	return r.inner.Set(ctx, topRestaurantsKey, payload, topRestaurantsTTL).Err()
}

// InvalidateTopRestaurants drops the cached ranking. Called whenever an
// aggregate rating or the visible restaurant set changes.
func (r *RedisClient) InvalidateTopRestaurants() error {
	return r.inner.Del(ctx, topRestaurantsKey).Err()
}
