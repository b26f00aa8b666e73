package service

import (
	"context"

	"movierama/analytics-svc/internal/domain"
	"movierama/analytics-svc/internal/storage"
)

type AnalyticsInterface interface {
	MovieStats(ctx context.Context, movieID string) (*domain.MovieStats, error)
	TopMovies(ctx context.Context, limit int) ([]domain.MovieStats, error)
	TrendingToday(ctx context.Context, limit int) ([]domain.TrendingMovie, error)
	RatingDistribution(ctx context.Context, movieID string) (map[string]int, error)
}

type AggregateReader interface {
	GetAggregate(ctx context.Context, movieID string) (*domain.MovieStats, error)
	TopAggregates(ctx context.Context, limit int) ([]domain.MovieStats, error)
	RatingDistribution(ctx context.Context, movieID string) (map[string]int, error)
}

type RecommenderInterface interface {
	Recommend(ctx context.Context, limit int) ([]domain.Recommendation, error)
}

type CatalogReader interface {
	MoviesByID(ctx context.Context, ids []string) ([]domain.Movie, error)
	SampleMovies(ctx context.Context, size int) ([]domain.Movie, error)
}

type StatsCache interface {
	MovieStats(ctx context.Context, movieID string) (*domain.MovieStats, error)
	TopRated(ctx context.Context, limit int) ([]domain.MovieStats, error)
	TrendingToday(ctx context.Context, limit int) ([]domain.TrendingMovie, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
var _ RecommenderInterface = (*Recommender)(nil)
var _ AggregateReader = (*storage.Store)(nil)
var _ CatalogReader = (*storage.Store)(nil)
var _ StatsCache = (*storage.CacheReader)(nil)
