package cache

import (
	"context"
	"fmt"
)

// Open builds the cache named by driver: "memory", "redis" or "none".
func Open(ctx context.Context, driver string, redisOpts RedisOptions) (Cache, error) {
	switch driver {
	case "", "memory":
		return NewMemory(), nil
	case "redis":
		r, err := NewRedis(ctx, redisOpts)
		if err != nil {
			return nil, err
		}
		return r, nil
	case "none", "off":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unsupported CACHE_DRIVER %q", driver)
	}
}
