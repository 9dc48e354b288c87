package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crashph/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// OfficeLocationCache holds the office coordinate list the assignment
// policy ranks on every report creation. Invalidated on office writes.
type OfficeLocationCache struct {
	client *goredis.Client
	key    string
}

func NewOfficeLocationCache(r *Redis) *OfficeLocationCache {
	return &OfficeLocationCache{
		client: r.Client,
		key:    "offices:locations",
	}
}

// Get returns (nil, nil) on a cache miss.
func (c *OfficeLocationCache) Get(ctx context.Context) ([]domain.OfficeLocation, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var locations []domain.OfficeLocation
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, err
	}

	return locations, nil
}

func (c *OfficeLocationCache) Set(ctx context.Context, locations []domain.OfficeLocation, ttl time.Duration) error {
	b, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *OfficeLocationCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
