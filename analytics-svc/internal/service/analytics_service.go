package service

import (
	"context"
	"log"

	"movierama/analytics-svc/internal/domain"
)

// AnalyticsService answers read queries from the Redis snapshots when they
// are warm and falls back to Mongo, the source of truth, when they are not.
type AnalyticsService struct {
	store AggregateReader
	cache StatsCache
}

func NewAnalyticsService(store AggregateReader, cache StatsCache) *AnalyticsService {
	return &AnalyticsService{store: store, cache: cache}
}

func (s *AnalyticsService) MovieStats(ctx context.Context, movieID string) (*domain.MovieStats, error) {
	stats, err := s.cache.MovieStats(ctx, movieID)
	if err == nil && stats != nil {
		return stats, nil
	}
	if err != nil {
		log.Printf("Warning: stats cache lookup failed for %s: %v", movieID, err)
	}
	return s.store.GetAggregate(ctx, movieID)
}

func (s *AnalyticsService) TopMovies(ctx context.Context, limit int) ([]domain.MovieStats, error) {
	top, err := s.cache.TopRated(ctx, limit)
	if err == nil && len(top) > 0 {
		return top, nil
	}
	if err != nil {
		log.Printf("Warning: leaderboard lookup failed: %v", err)
	}
	return s.store.TopAggregates(ctx, limit)
}

func (s *AnalyticsService) TrendingToday(ctx context.Context, limit int) ([]domain.TrendingMovie, error) {
	return s.cache.TrendingToday(ctx, limit)
}

func (s *AnalyticsService) RatingDistribution(ctx context.Context, movieID string) (map[string]int, error) {
	return s.store.RatingDistribution(ctx, movieID)
}
