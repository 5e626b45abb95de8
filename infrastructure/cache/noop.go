package cache

import (
	"context"
	"time"
)

type noopCache struct{}

// NewNoopCache retorna um Cache que não guarda nada; todo Get é miss
func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noopCache) Close() error { return nil }
