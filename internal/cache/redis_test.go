package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halya-h/MovieMapUA/internal/cache"
)

func newRedisClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestConnect(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := cache.Connect(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(context.Background()).Err())
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-redis-url")
	require.Error(t, err)
}

func TestRedisDetailStore_SetAndGet(t *testing.T) {
	client, _ := newRedisClient(t)
	s := cache.NewRedisDetailStore(client)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "p1", sampleDetail()))

	got, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Opera House", got.Name)
	assert.Equal(t, 812, got.ReviewCount)
}

func TestRedisDetailStore_MissReturnsNilNil(t *testing.T) {
	client, _ := newRedisClient(t)
	s := cache.NewRedisDetailStore(client)

	got, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisDetailStore_EntriesExpire(t *testing.T) {
	client, mr := newRedisClient(t)
	s := cache.NewRedisDetailStore(client)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "p1", sampleDetail()))
	mr.FastForward(2 * time.Hour)

	got, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisTranslationStore_SetAndGet(t *testing.T) {
	client, _ := newRedisClient(t)
	s := cache.NewRedisTranslationStore(client)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "uk", "Opera House", "Оперний театр"))

	got, ok, err := s.Get(ctx, "uk", "Opera House")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Оперний театр", got)
}

func TestRedisTranslationStore_Miss(t *testing.T) {
	client, _ := newRedisClient(t)
	s := cache.NewRedisTranslationStore(client)

	_, ok, err := s.Get(context.Background(), "uk", "never cached")
	require.NoError(t, err)
	assert.False(t, ok)
}
