package session

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/streakfit/pkg/cleanup"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

// RedisStore keeps sessions as keys with a TTL, so expiry is done by Redis.
type RedisStore struct {
	rdb redis.UniversalClient
}

func NewRedisStore(cfg RedisCfg) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error while pinging redis for session store: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    rdb.Close,
	})
	return &RedisStore{rdb: rdb}
}

func NewRedisStoreWithClient(rdb redis.UniversalClient) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, id string, uid uuid.UUID, ttl time.Duration) error {
	return s.rdb.Set(ctx, redisKeyPrefix+id, uid.String(), ttl).Err()
}

func (s *RedisStore) Lookup(ctx context.Context, id string) (uuid.UUID, error) {
	value, err := s.rdb.Get(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.UUID{}, ErrSessionNotFound
		}
		return uuid.UUID{}, err
	}
	uid, err := uuid.Parse(value)
	if err != nil {
		return uuid.UUID{}, ErrSessionNotFound
	}
	return uid, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+id).Err()
}
