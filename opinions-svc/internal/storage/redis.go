package storage

import (
	"context"
	"time"

	"movierama/opinions-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey = "ratings:alltime"
	dailyKeyPrefix = "ratings:daily:"
)

func MovieStatsKey(movieID string) string {
	return "movie:" + movieID
}

func DailyKey(t time.Time) string {
	return dailyKeyPrefix + t.Format("2006-01-02")
}

// AggregateCache mirrors each movie's latest aggregate into Redis for quick
// lookups: a per-movie stats hash, an all-time leaderboard scored by the
// derived average, and a daily rating-volume set. It is refreshed best-effort
// after every durable write; Mongo stays the source of truth.
type AggregateCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewAggregateCache(client *redis.Client, ttl time.Duration) *AggregateCache {
	return &AggregateCache{Client: client, TTL: ttl}
}

func (c *AggregateCache) RecordRating(ctx context.Context, agg domain.MovieAggregate) error {
	key := MovieStatsKey(agg.MovieID)
	if err := c.Client.HSet(ctx, key, map[string]interface{}{
		"avg_rating":    agg.AvgRating(),
		"ratings_count": agg.RatingsCount,
		"last_updated":  time.Now().Unix(),
	}).Err(); err != nil {
		return err
	}
	c.Client.Expire(ctx, key, c.TTL)

	c.Client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  agg.AvgRating(),
		Member: agg.MovieID,
	})

	dailyKey := DailyKey(time.Now())
	c.Client.ZIncrBy(ctx, dailyKey, 1, agg.MovieID)
	c.Client.Expire(ctx, dailyKey, 7*24*time.Hour)

	return nil
}
