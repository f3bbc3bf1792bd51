package session

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/enternet/portal/internal/pkg/cache"
	"github.com/enternet/portal/internal/pkg/env"
)

var sessionStore *session.Store

// NewSessionStore creates the portal session store. Sessions live in redis
// database 1 when a cache is configured and in process memory otherwise.
func NewSessionStore() *session.Store {
	cfg := session.Config{
		CookieHTTPOnly: true,
		CookieSecure:   !env.IsDev(),
		CookieSameSite: "Lax",
		Expiration:     time.Hour * 1,
		KeyLookup:      "cookie:portal_session",
	}
	if storage := NewRedisStorage(1); storage != nil {
		cfg.Storage = storage
	}

	sessionStore = session.New(cfg)
	return sessionStore
}

// NewRedisStorage returns fiber storage on the configured cache server, or nil
// when no cache client exists
func NewRedisStorage(database int) *redis.Storage {
	cacheClient := cache.GetClient()
	if cacheClient == nil {
		return nil
	}

	host := "localhost"
	port := 6379
	if h, p, err := net.SplitHostPort(cacheClient.Options().Addr); err == nil {
		host = h
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: cacheClient.Options().Password,
		Database: database,
		Reset:    false,
	})
}

func GetSessionStore() *session.Store {
	return sessionStore
}

// SetSessionValue stores a key-value pair in the visitor's session
func SetSessionValue(c *fiber.Ctx, key string, value string) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	sess.Set(key, value)
	return sess.Save()
}

// GetSessionValue retrieves a value by key from the visitor's session
func GetSessionValue(c *fiber.Ctx, key string) string {
	if sessionStore == nil {
		return ""
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return ""
	}

	if value, ok := sess.Get(key).(string); ok {
		return value
	}
	return ""
}
