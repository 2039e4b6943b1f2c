package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// OpenRedis connects to the Redis at addr, or starts an embedded server when
// addr is empty so the mock runs without external infrastructure. The
// returned cleanup closes the client and, if started, the embedded server.
func OpenRedis(ctx context.Context, addr string) (*redis.Client, func(), error) {
	stop := func() {}

	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("embedded redis: %w", err)
		}
		addr = mr.Addr()
		stop = mr.Close
		log.Printf("embedded redis listening on %s", addr)
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		stop()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
		stop()
	}
	return client, cleanup, nil
}
