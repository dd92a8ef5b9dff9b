package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	Use(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "pmtest")
	t.Cleanup(Reset)
	return mr
}

func TestJSONRoundTripUsesPrefix(t *testing.T) {
	mr := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "greeting", map[string]string{"hello": "喵"}, 0))
	assert.True(t, mr.Exists("pmtest:greeting"))

	var got map[string]string
	ok, err := GetJSON(ctx, "greeting", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "喵", got["hello"])

	ok, err = GetJSON(ctx, "absent", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDashboardInvalidate(t *testing.T) {
	mr := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, SetDashboard(ctx, "stats", map[string]int{"order_count": 3}))
	require.NoError(t, SetDashboard(ctx, "sales", []int{1, 2}))
	assert.True(t, mr.Exists("pmtest:dashboard:stats"))

	require.NoError(t, InvalidateDashboard(ctx, "stats", "sales"))
	assert.False(t, mr.Exists("pmtest:dashboard:stats"))
	assert.False(t, mr.Exists("pmtest:dashboard:sales"))
}

func TestDisabledCacheIsNoop(t *testing.T) {
	Reset()
	ctx := context.Background()
	assert.NoError(t, SetJSON(ctx, "k", 1, 0))
	var v int
	ok, err := GetJSON(ctx, "k", &v)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, Client())
}
