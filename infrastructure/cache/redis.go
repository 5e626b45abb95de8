package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
)

type redisCache struct {
	client *redis.Client
}

// NewRedisCache conecta no Redis e valida a conexão com um PING
func NewRedisCache(ctx context.Context, cfg config.Cache) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", cfg.RedisAddr)
	}

	return &redisCache{client: client}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis GET")
	}
	return value, nil
}

// Set grava com EX nativo do Redis; a expiração é responsabilidade do servidor
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis SET")
	}
	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
