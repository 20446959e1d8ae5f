// Package mock provides in-memory test doubles for integration tests.
package mock

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis bundles a miniredis server with a client pointed at it.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts an in-process redis server and returns a connected client.
func NewRedis() (*Redis, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})

	return &Redis{
		Server: server,
		Client: client,
	}, nil
}

// Close shuts down the client and server.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.Server.Close()
}
