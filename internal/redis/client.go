package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"food_ordering/internal/models"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Cart storage. Entries are kept as a JSON array so snapshot order is
// insertion order.

func (c *Client) GetCart(token string) ([]models.CartEntry, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "cart:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return []models.CartEntry{}, nil
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var entries []models.CartEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return entries, nil
}

func (c *Client) SaveCart(token string, entries []models.CartEntry, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return c.rdb.Set(ctx, "cart:"+token, jsonData, ttl).Err()
}

func (c *Client) ClearCart(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "cart:"+token).Err()
}

// Admin session flag

func (c *Client) SetAdminSession(token string, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "admin:"+token, "1", ttl).Err()
}

func (c *Client) IsAdminSession(token string) (bool, error) {
	ctx := context.Background()
	_, err := c.rdb.Get(ctx, "admin:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get admin session: %w", err)
	}
	return true, nil
}

func (c *Client) ClearAdminSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "admin:"+token).Err()
}

// Flash messages, drained on read.

func (c *Client) PushFlash(token string, flash models.Flash, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("failed to marshal flash: %w", err)
	}

	key := "flash:" + token
	if err := c.rdb.RPush(ctx, key, jsonData).Err(); err != nil {
		return err
	}
	return c.rdb.Expire(ctx, key, ttl).Err()
}

func (c *Client) PopFlashes(token string) ([]models.Flash, error) {
	ctx := context.Background()
	key := "flash:" + token

	vals, err := c.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get flashes: %w", err)
	}
	if len(vals) == 0 {
		return nil, nil
	}

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return nil, err
	}

	flashes := make([]models.Flash, 0, len(vals))
	for _, val := range vals {
		var flash models.Flash
		if err := json.Unmarshal([]byte(val), &flash); err != nil {
			continue
		}
		flashes = append(flashes, flash)
	}

	return flashes, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
