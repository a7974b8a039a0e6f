package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"cragfeed/internal/application/common"
	"cragfeed/internal/domain/entities"
)

const feedVersionKey = "feed:version"

// RedisService caches user profiles and feed pages. With no address
// configured, or when redis is unreachable at startup, the client stays
// nil and every call is a no-op; nothing here is load-bearing.
type RedisService struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRedisService(addr, password string, db int, log zerolog.Logger) *RedisService {
	if addr == "" {
		return &RedisService{log: log}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis connection failed, caching disabled")
		return &RedisService{log: log}
	}

	log.Info().Str("addr", addr).Msg("connected to redis")
	return &RedisService{client: client, log: log}
}

func (r *RedisService) SetProfile(ctx context.Context, userID int, user *entities.User, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	userData, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, fmt.Sprintf("profile:%d", userID), userData, ttl).Err()
}

func (r *RedisService) GetProfile(ctx context.Context, userID int) (*entities.User, error) {
	if r.client == nil {
		return nil, redis.Nil
	}
	userData, err := r.client.Get(ctx, fmt.Sprintf("profile:%d", userID)).Result()
	if err != nil {
		return nil, err
	}

	var user entities.User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FeedVersion returns the current feed generation. Cached pages embed the
// generation in their key, so bumping it orphans every stale page at
// once and the TTL reaps them.
func (r *RedisService) FeedVersion(ctx context.Context) int64 {
	if r.client == nil {
		return 0
	}
	version, err := r.client.Get(ctx, feedVersionKey).Int64()
	if err != nil {
		return 0
	}
	return version
}

func (r *RedisService) BumpFeedVersion(ctx context.Context) {
	if r.client == nil {
		return
	}
	if err := r.client.Incr(ctx, feedVersionKey).Err(); err != nil {
		r.log.Warn().Err(err).Msg("failed to bump feed version")
	}
}

func (r *RedisService) SetFeedPage(ctx context.Context, version int64, page, limit int, result *common.FeedResult, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, feedPageKey(version, page, limit), data, ttl).Err()
}

func (r *RedisService) GetFeedPage(ctx context.Context, version int64, page, limit int) (*common.FeedResult, error) {
	if r.client == nil {
		return nil, redis.Nil
	}
	data, err := r.client.Get(ctx, feedPageKey(version, page, limit)).Result()
	if err != nil {
		return nil, err
	}

	var result common.FeedResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func feedPageKey(version int64, page, limit int) string {
	return fmt.Sprintf("feed:v%d:%d:%d", version, page, limit)
}
