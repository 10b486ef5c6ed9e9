package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"activitydesk/internal/domain"
)

const eventKey = "event"

type redisEventCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisEventCache returns an EventCache that stores the event record in
// Redis under a fixed key with the given TTL.
func NewRedisEventCache(client *redis.Client, ttl time.Duration) domain.EventCache {
	return &redisEventCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *redisEventCache) Get(ctx context.Context) (*domain.Event, error) {
	data, err := c.client.Get(ctx, eventKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	event := &domain.Event{}
	if err := json.Unmarshal(data, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (c *redisEventCache) Set(ctx context.Context, event *domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, eventKey, data, c.ttl).Err()
}
