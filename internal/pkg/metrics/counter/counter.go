package counter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/enternet/portal/internal/pkg/cache"
)

const intakeKey = "portal:counters:intake"

// Add increments field in the support intake hash. It is a no-op while no
// cache is configured.
func Add(ctx context.Context, field string) error {
	rdb := cache.GetClient()
	if rdb == nil {
		return nil
	}
	return rdb.HIncrBy(ctx, intakeKey, field, 1).Err()
}

// Snapshot returns the current intake counters, empty without a cache
func Snapshot(ctx context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	rdb := cache.GetClient()
	if rdb == nil {
		return out, nil
	}

	raw, err := rdb.HGetAll(ctx, intakeKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read intake counters: %w", err)
	}
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		out[field] = n
	}
	return out, nil
}
