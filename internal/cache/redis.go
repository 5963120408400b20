package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/airline/config"
	"github.com/Domenick1991/airline/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     redis.Cmdable
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL,
	)
}

func NewRedisCacheWithClient(client redis.Cmdable, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, flightsTTL: flightsTTL}
}

// GetFlight returns nil, nil on a miss.
func (c *RedisCache) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	data, err := c.client.Get(ctx, flightKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flight domain.Flight
	if err := json.Unmarshal(data, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (c *RedisCache) SetFlight(ctx context.Context, flight domain.Flight) error {
	payload, err := json.Marshal(flight)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightKey(flight.ID), payload, c.flightsTTL).Err()
}

// SetFlightIfAbsent stores the flight only when no entry exists for its ID.
func (c *RedisCache) SetFlightIfAbsent(ctx context.Context, flight domain.Flight) error {
	payload, err := json.Marshal(flight)
	if err != nil {
		return err
	}
	return c.client.SetNX(ctx, flightKey(flight.ID), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlight(ctx context.Context, id string) error {
	return c.client.Del(ctx, flightKey(id)).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func flightKey(id string) string {
	return "cache:flight:" + id
}
