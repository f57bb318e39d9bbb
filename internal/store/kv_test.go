package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestKV(t *testing.T) (*miniredis.Miniredis, *RedisKV) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewRedisKV(client)
}

func TestRedisKV_GetMiss(t *testing.T) {
	_, kv := setupTestKV(t)

	_, err := kv.Get(context.Background(), "demo:mode")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisKV_SetGetDelete(t *testing.T) {
	_, kv := setupTestKV(t)
	ctx := context.Background()

	err := kv.Set(ctx, "demo:mode", "true", 0)
	require.NoError(t, err)

	val, err := kv.Get(ctx, "demo:mode")
	require.NoError(t, err)
	assert.Equal(t, "true", val)

	err = kv.Delete(ctx, "demo:mode")
	require.NoError(t, err)

	_, err = kv.Get(ctx, "demo:mode")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisKV_SetWithTTL(t *testing.T) {
	mr, kv := setupTestKV(t)
	ctx := context.Background()

	err := kv.Set(ctx, "demo:mode", "true", time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = kv.Get(ctx, "demo:mode")
	assert.ErrorIs(t, err, ErrMiss)
}
