// Package cache contém os backends de cache chave/valor usados pelo dashboard
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/retail-dashboard-api/internal/config"
)

// ErrMiss é retornado por Get quando a chave não existe ou expirou
var ErrMiss = errors.New("cache: miss")

// Cache guarda bytes por chave, com TTL por entrada
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// New retorna o backend escolhido em CACHE_DRIVER
func New(ctx context.Context, cfg config.Cache) (Cache, error) {
	switch cfg.Driver {
	case config.CacheDriverRedis:
		return NewRedisCache(ctx, cfg)
	case config.CacheDriverBolt:
		return NewBoltCache(cfg.BoltPath)
	case config.CacheDriverNone, "":
		return NewNoopCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
