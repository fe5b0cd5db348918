// Package testutils provides shared test helpers: an in-memory Redis and
// recruit fixtures
package testutils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/dreamshade/recruit-api/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing. The
// server is closed when the test ends.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}

// FlushTestRedis removes every key from the client's database
func FlushTestRedis(ctx context.Context, client redis.Client) error {
	return client.FlushDB(ctx).Err()
}
