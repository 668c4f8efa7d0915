package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
)

// combatTestDB keeps test snapshots away from a developer's local data
const combatTestDB = 15

// TestRedisConfig points the combat store tests at a Redis instance
type TestRedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DefaultTestRedisConfig targets a local Redis on the combat test DB
func DefaultTestRedisConfig() *TestRedisConfig {
	return &TestRedisConfig{
		Addr: "localhost:6379",
		DB:   combatTestDB,
	}
}

// CreateTestRedisClient returns a client on an empty combat test DB. The DB
// is emptied again and the client closed when the test ends. Tests are
// skipped, not failed, when nothing answers at cfg.Addr.
func CreateTestRedisClient(t testing.TB, cfg *TestRedisConfig) redis.UniversalClient {
	t.Helper()
	if cfg == nil {
		cfg = DefaultTestRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("no redis for combat store tests at %s: %v", cfg.Addr, err)
	}
	require.NoError(t, client.FlushDB(ctx).Err(), "emptying combat test db")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

// WaitForRedis polls addr with PING until it answers or timeout passes
func WaitForRedis(addr string, timeout time.Duration) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		if err := client.Ping(ctx).Err(); err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return dnderr.Wrapf(ctx.Err(), "redis at %s not ready after %v", addr, timeout)
		case <-ticker.C:
		}
	}
}
