package catalog

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/errors"
	redisclient "github.com/KirkDiggler/build-roller/internal/redis"
)

// Key pattern: catalog:{fingerprint}
const keyPrefix = "catalog:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get retrieves a catalog by key
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.Key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("catalog %s not found", input.Key)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get catalog from Redis")
	}

	var c armory.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal catalog %s", input.Key)
	}

	return &GetOutput{Catalog: &c}, nil
}

// Put stores a catalog as JSON with an optional TTL
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Catalog)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal catalog")
	}

	// a zero TTL means no expiry for go-redis
	if err := r.client.Set(ctx, buildKey(input.Key), data, input.TTL).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store catalog in Redis")
	}

	return &PutOutput{}, nil
}

func buildKey(key string) string {
	return keyPrefix + key
}
