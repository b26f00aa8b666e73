package storage

import (
	"context"
	"strconv"
	"time"

	"movierama/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey = "ratings:alltime"
	dailyKeyPrefix = "ratings:daily:"
)

func movieStatsKey(movieID string) string {
	return "movie:" + movieID
}

// CacheReader reads the snapshots the opinions consumer mirrors into Redis.
// Misses are reported as nil results, never errors; callers fall back to Mongo.
type CacheReader struct {
	Client *redis.Client
}

func NewCacheReader(client *redis.Client) *CacheReader {
	return &CacheReader{Client: client}
}

func (c *CacheReader) MovieStats(ctx context.Context, movieID string) (*domain.MovieStats, error) {
	stats, err := c.Client.HGetAll(ctx, movieStatsKey(movieID)).Result()
	if err != nil || len(stats) == 0 {
		return nil, err
	}

	avgRating, _ := strconv.ParseFloat(stats["avg_rating"], 64)
	ratingsCount, _ := strconv.ParseInt(stats["ratings_count"], 10, 64)
	return &domain.MovieStats{
		MovieID:      movieID,
		AvgRating:    avgRating,
		RatingsCount: ratingsCount,
	}, nil
}

func (c *CacheReader) TopRated(ctx context.Context, limit int) ([]domain.MovieStats, error) {
	results, err := c.Client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	var top []domain.MovieStats
	for _, member := range results {
		movieID, ok := member.Member.(string)
		if !ok {
			continue
		}
		stats := domain.MovieStats{MovieID: movieID, AvgRating: member.Score}
		if count, err := c.Client.HGet(ctx, movieStatsKey(movieID), "ratings_count").Int64(); err == nil {
			stats.RatingsCount = count
		}
		top = append(top, stats)
	}
	return top, nil
}

func (c *CacheReader) TrendingToday(ctx context.Context, limit int) ([]domain.TrendingMovie, error) {
	key := dailyKeyPrefix + time.Now().Format("2006-01-02")
	results, err := c.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	trending := make([]domain.TrendingMovie, 0, len(results))
	for _, member := range results {
		movieID, ok := member.Member.(string)
		if !ok {
			continue
		}
		trending = append(trending, domain.TrendingMovie{
			MovieID:      movieID,
			RatingsToday: int64(member.Score),
		})
	}
	return trending, nil
}
