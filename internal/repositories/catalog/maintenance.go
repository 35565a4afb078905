package catalog

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/errors"
	redisclient "github.com/KirkDiggler/build-roller/internal/redis"
)

const scanBatch = 100

// CheckOutput reports a scan of the catalogs stored in Redis
type CheckOutput struct {
	Checked int
	// Corrupt holds full Redis keys whose value does not decode to a valid catalog
	Corrupt []string
}

// CheckRedis walks every catalog key and flags entries that no longer
// decode or validate. Keys that expire mid-scan are skipped.
func CheckRedis(ctx context.Context, client redisclient.Client) (*CheckOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}

	out := &CheckOutput{}
	iter := client.Scan(ctx, 0, keyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		data, err := client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", key)
		}
		out.Checked++

		var c armory.Catalog
		if err := json.Unmarshal(data, &c); err != nil {
			out.Corrupt = append(out.Corrupt, key)
			continue
		}
		if err := c.Validate(); err != nil {
			out.Corrupt = append(out.Corrupt, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan catalog keys")
	}

	return out, nil
}

// DeleteRedisKeys removes the given keys and returns how many existed
func DeleteRedisKeys(ctx context.Context, client redisclient.Client, keys []string) (int64, error) {
	if client == nil {
		return 0, errors.InvalidArgument("redis client is required")
	}
	if len(keys) == 0 {
		return 0, nil
	}

	n, err := client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete catalog keys")
	}
	return n, nil
}
