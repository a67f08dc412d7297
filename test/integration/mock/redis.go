package mock

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is a miniredis server with a connected client.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts a miniredis server.
func NewRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return &Redis{
		Server: server,
		Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
	}
}

// Clear flushes every key.
func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

// Close stops the client and the server.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.Server.Close()
}
