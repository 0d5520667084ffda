package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the stores depend on. It covers plain
// commands, transactions and pub/sub.
type Client interface {
	redis.UniversalClient
}
