package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// RedisMovieCache implements domain.MovieCache. Cache misses and Redis
// failures both fall through to the database; the cache is best-effort.
type RedisMovieCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisMovieCache creates a new movie cache
func NewRedisMovieCache(client *redis.Client, ttl time.Duration) *RedisMovieCache {
	return &RedisMovieCache{
		client: client,
		prefix: "movie:",
		ttl:    ttl,
	}
}

// Get implements domain.MovieCache
func (c *RedisMovieCache) Get(ctx context.Context, id uint) (*domain.Movie, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err != nil {
		return nil, false
	}

	var movie domain.Movie
	if err := json.Unmarshal([]byte(data), &movie); err != nil {
		c.client.Del(ctx, c.key(id))
		return nil, false
	}
	return &movie, true
}

// Set implements domain.MovieCache
func (c *RedisMovieCache) Set(ctx context.Context, movie *domain.Movie) {
	data, err := json.Marshal(movie)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(movie.ID), data, c.ttl)
}

// Invalidate implements domain.MovieCache
func (c *RedisMovieCache) Invalidate(ctx context.Context, id uint) {
	c.client.Del(ctx, c.key(id))
}

func (c *RedisMovieCache) key(id uint) string {
	return fmt.Sprintf("%s%d", c.prefix, id)
}

var _ domain.MovieCache = (*RedisMovieCache)(nil)
