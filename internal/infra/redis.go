package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// OpenRedis connects to the cache. A missing URL or failed ping returns nil;
// the API runs without caching rather than refusing to start.
func OpenRedis(url string) *redis.Client {
	if url == "" {
		log.Info().Msg("redis not configured, caching disabled")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Warn().Err(err).Msg("invalid redis url, caching disabled")
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, caching disabled")
		return nil
	}
	return client
}
