// Package testutils provides helpers shared by package tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/maze-api/internal/redis"
)

// TestRedis is an in-memory redis server plus a client bound to it
type TestRedis struct {
	Client redis.Client
	Server *miniredis.Miniredis
}

// NewTestRedis starts miniredis for the duration of the test
func NewTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return &TestRedis{Client: client, Server: mr}
}

// CreateTestRedisClient returns a client backed by miniredis and a cleanup func
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, func() {
		_ = client.Close()
		mr.Close()
	}
}
