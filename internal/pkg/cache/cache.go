package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/enternet/portal/internal/pkg/env"
)

var client *redis.Client

// Enabled reports whether a redis compatible cache server is configured
func Enabled() bool {
	return env.GetEnv("CACHE_HOST", "") != ""
}

// SetupCache connects to the cache server named by CACHE_HOST. Without
// CACHE_HOST the portal keeps sessions and rate limits in process memory.
func SetupCache() {
	if !Enabled() {
		slog.Info("CACHE_HOST not set, using in-memory session and limiter storage")
		return
	}

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", env.GetEnv("CACHE_HOST", "localhost"), env.GetEnv("CACHE_PORT", "6379")),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Could not connect to cache", "addr", client.Options().Addr, "error", err)
		return
	}
	slog.Info("Connected to cache", "addr", client.Options().Addr)
}

// GetClient returns the redis client, or nil when no cache is configured
func GetClient() *redis.Client {
	return client
}

// Ping checks the cache connection. It returns nil when no cache is configured.
func Ping(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}

// Close releases the cache connection
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
