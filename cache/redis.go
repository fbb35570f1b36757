package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"shopper/models"
)

const productListTTL = 60 * time.Second

// ProductCache is an optional read-through cache for product listings. A nil
// *ProductCache is valid and disables caching.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache connects to Redis and verifies the connection.
func NewProductCache(ctx context.Context, addr string) (*ProductCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &ProductCache{client: client}, nil
}

// Get returns the cached listing for key, or ok=false on miss or any cache
// failure. Cache errors never fail a request.
func (c *ProductCache) Get(ctx context.Context, key string) ([]models.Product, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}
	return products, true
}

// Set stores a listing under key with a short TTL.
func (c *ProductCache) Set(ctx context.Context, key string, products []models.Product) {
	if c == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, productListTTL)
}

// Invalidate drops the given listing keys after a catalog write.
func (c *ProductCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

// Close releases the underlying connection.
func (c *ProductCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
