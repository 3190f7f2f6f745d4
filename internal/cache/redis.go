package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

const defaultTTL = time.Hour

// Connect parses redisURL, creates a client, and verifies connectivity.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// RedisDetailStore is a Redis-backed detail cache shared across instances.
// Unlike the in-memory store it bounds growth with a TTL.
type RedisDetailStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDetailStore constructs a detail store with a 1-hour TTL.
func NewRedisDetailStore(client *redis.Client) *RedisDetailStore {
	return &RedisDetailStore{client: client, ttl: defaultTTL}
}

func detailKey(locationID string) string {
	return "detail:" + locationID
}

func (s *RedisDetailStore) Get(ctx context.Context, locationID string) (*model.PlaceDetail, error) {
	val, err := s.client.Get(ctx, detailKey(locationID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for place %s: %w", locationID, err)
	}

	var detail model.PlaceDetail
	if err := json.Unmarshal([]byte(val), &detail); err != nil {
		return nil, fmt.Errorf("unmarshaling cached detail for place %s: %w", locationID, err)
	}

	return &detail, nil
}

func (s *RedisDetailStore) Set(ctx context.Context, locationID string, detail *model.PlaceDetail) error {
	if detail == nil {
		return nil
	}

	b, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshaling detail for place %s: %w", locationID, err)
	}

	if err := s.client.Set(ctx, detailKey(locationID), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for place %s: %w", locationID, err)
	}

	return nil
}

// RedisTranslationStore is the Redis-backed (language, text) cache.
type RedisTranslationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTranslationStore constructs a translation store with a 1-hour TTL.
func NewRedisTranslationStore(client *redis.Client) *RedisTranslationStore {
	return &RedisTranslationStore{client: client, ttl: defaultTTL}
}

func (s *RedisTranslationStore) Get(ctx context.Context, lang, text string) (string, bool, error) {
	val, err := s.client.Get(ctx, "translation:"+translationKey(lang, text)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("cache get for translation %s: %w", lang, err)
	}
	return val, true, nil
}

func (s *RedisTranslationStore) Set(ctx context.Context, lang, text, translated string) error {
	if err := s.client.Set(ctx, "translation:"+translationKey(lang, text), translated, s.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for translation %s: %w", lang, err)
	}
	return nil
}
