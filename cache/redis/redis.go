package redis

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zlnvch/noteverse/models"
)

type RedisNoteverseCache struct {
	client redis.UniversalClient
}

func NewRedisNoteverseCache(ctx context.Context, devMode bool, redisEndpoint string) (*RedisNoteverseCache, error) {
	var client redis.UniversalClient
	if devMode {
		client = redis.NewClient(&redis.Options{
			Addr: redisEndpoint,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: redisEndpoint,
			// AWS elasticache endpoints require TLS
			TLSConfig: &tls.Config{},
		})
	}

	err := client.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return &RedisNoteverseCache{client: client}, nil
}

const userTTL = 10 * time.Minute

// Hash-tagged key for cluster compatibility
func buildUserKey(email string) string {
	return "user:{" + email + "}"
}

func (redisCache *RedisNoteverseCache) GetUser(ctx context.Context, email string) (models.User, error) {
	data, err := redisCache.client.Get(ctx, buildUserKey(email)).Bytes()
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (redisCache *RedisNoteverseCache) SetUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return redisCache.client.Set(ctx, buildUserKey(user.Email), data, userTTL).Err()
}
