package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoltCache(t *testing.T) *boltCache {
	t.Helper()

	c, err := NewBoltCache(filepath.Join(t.TempDir(), "nested", "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c.(*boltCache)
}

func TestBoltCache_SetAndGet(t *testing.T) {
	c := newTestBoltCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, `dashboard:{"dataset_size":"medium"}`, []byte(`{"kpi":{}}`), 300*time.Second))

	value, err := c.Get(ctx, `dashboard:{"dataset_size":"medium"}`)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"kpi":{}}`), value)
}

func TestBoltCache_MissingKey(t *testing.T) {
	c := newTestBoltCache(t)

	_, err := c.Get(context.Background(), "dashboard:unknown")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestBoltCache_ExpiredEntryIsMissAndEvicted(t *testing.T) {
	c := newTestBoltCache(t)
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 300*time.Second))

	now = now.Add(299 * time.Second)
	value, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	now = now.Add(time.Second)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	// depois de expirar, nem voltando o relógio a entrada reaparece
	now = now.Add(-time.Minute)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestBoltCache_OverwriteRefreshesTTL(t *testing.T) {
	c := newTestBoltCache(t)
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("old"), time.Minute))
	now = now.Add(50 * time.Second)
	require.NoError(t, c.Set(ctx, "k", []byte("new"), time.Minute))
	now = now.Add(50 * time.Second)

	value, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestBoltCache_CanceledContext(t *testing.T) {
	c := newTestBoltCache(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, c.Set(ctx, "k", []byte("v"), time.Minute), context.Canceled)
}

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, c.Close())
}
