package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the go-redis universal client. Single node and cluster
// clients both satisfy it.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of missing keys
const Nil = redis.Nil
