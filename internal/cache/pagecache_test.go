package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPageCache(t *testing.T, ttl time.Duration) (*PageCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewPageCache(rdb, "pages", ttl), mr
}

func TestGetOrCompute_MissThenHit(t *testing.T) {
	pc, _ := setupPageCache(t, 20*time.Second)
	ctx := context.Background()

	computed := 0
	compute := func() ([]byte, error) {
		computed++
		return []byte(`{"posts":[1]}`), nil
	}

	body, err := pc.GetOrCompute(ctx, "/", compute)
	require.NoError(t, err)
	assert.Equal(t, `{"posts":[1]}`, string(body))
	assert.Equal(t, 1, computed)

	// Second read is served from the cache without recomputation.
	body, err = pc.GetOrCompute(ctx, "/", compute)
	require.NoError(t, err)
	assert.Equal(t, `{"posts":[1]}`, string(body))
	assert.Equal(t, 1, computed)
}

func TestGetOrCompute_StaleUntilExpiry(t *testing.T) {
	pc, mr := setupPageCache(t, 20*time.Second)
	ctx := context.Background()

	live := `{"posts":[1]}`
	compute := func() ([]byte, error) { return []byte(live), nil }

	body, err := pc.GetOrCompute(ctx, "/", compute)
	require.NoError(t, err)
	assert.Equal(t, `{"posts":[1]}`, string(body))

	// The underlying data changes, but the cached page keeps being served.
	live = `{"posts":[]}`
	body, err = pc.GetOrCompute(ctx, "/", compute)
	require.NoError(t, err)
	assert.Equal(t, `{"posts":[1]}`, string(body))

	// After the TTL elapses the next read recomputes.
	mr.FastForward(21 * time.Second)
	body, err = pc.GetOrCompute(ctx, "/", compute)
	require.NoError(t, err)
	assert.Equal(t, `{"posts":[]}`, string(body))
}

func TestClear_InvalidatesAllEntries(t *testing.T) {
	pc, _ := setupPageCache(t, time.Hour)
	ctx := context.Background()

	live := "v1"
	compute := func() ([]byte, error) { return []byte(live), nil }

	for _, key := range []string{"/", "/?page=2"} {
		_, err := pc.GetOrCompute(ctx, key, compute)
		require.NoError(t, err)
	}

	live = "v2"
	require.NoError(t, pc.Clear(ctx))

	for _, key := range []string{"/", "/?page=2"} {
		body, err := pc.GetOrCompute(ctx, key, compute)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(body), "post-clear read must be fresh for %s", key)
	}
}

func TestClear_LeavesForeignKeysAlone(t *testing.T) {
	pc, mr := setupPageCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, mr.Set("other:key", "untouched"))
	_, err := pc.GetOrCompute(ctx, "/", func() ([]byte, error) { return []byte("x"), nil })
	require.NoError(t, err)

	require.NoError(t, pc.Clear(ctx))

	got, err := mr.Get("other:key")
	require.NoError(t, err)
	assert.Equal(t, "untouched", got)
	assert.False(t, mr.Exists("pages:/"))
}

func TestGetOrCompute_NilClientComputesEveryTime(t *testing.T) {
	pc := NewPageCache(nil, "pages", time.Hour)
	ctx := context.Background()

	computed := 0
	compute := func() ([]byte, error) {
		computed++
		return []byte("live"), nil
	}

	for i := 0; i < 3; i++ {
		body, err := pc.GetOrCompute(ctx, "/", compute)
		require.NoError(t, err)
		assert.Equal(t, "live", string(body))
	}
	assert.Equal(t, 3, computed)
	assert.NoError(t, pc.Clear(ctx))
}
