package service

import (
	"context"
	"sort"

	"movierama/analytics-svc/internal/domain"
)

const (
	// topRatedPool is how many of the best-rated movies anchor the
	// similarity search.
	topRatedPool = 50
	// candidatePool is how many catalog movies are sampled and scored.
	candidatePool = 200
)

// Recommender suggests catalog movies similar to whatever is currently rated
// best. Each sampled candidate gets the highest similarity it reaches against
// any of the top-rated movies.
type Recommender struct {
	store   AggregateReader
	catalog CatalogReader
}

func NewRecommender(store AggregateReader, catalog CatalogReader) *Recommender {
	return &Recommender{store: store, catalog: catalog}
}

func (r *Recommender) Recommend(ctx context.Context, limit int) ([]domain.Recommendation, error) {
	top, err := r.store.TopAggregates(ctx, topRatedPool)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		// No ratings yet means nothing to anchor similarity on.
		return []domain.Recommendation{}, nil
	}

	ids := make([]string, len(top))
	for i, m := range top {
		ids[i] = m.MovieID
	}

	targets, err := r.catalog.MoviesByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	candidates, err := r.catalog.SampleMovies(ctx, candidatePool)
	if err != nil {
		return nil, err
	}

	// One shared vocabulary for targets and candidates.
	plots := make([]string, 0, len(targets)+len(candidates))
	for _, m := range targets {
		plots = append(plots, m.FullPlot)
	}
	for _, m := range candidates {
		plots = append(plots, m.FullPlot)
	}
	vectors := tfidfVectors(plots)
	targetVecs := vectors[:len(targets)]
	candidateVecs := vectors[len(targets):]

	seen := make(map[string]bool, len(candidates))
	recommendations := make([]domain.Recommendation, 0, len(candidates))
	for i, candidate := range candidates {
		if seen[candidate.ID] {
			continue
		}
		seen[candidate.ID] = true

		var best float64
		for j, target := range targets {
			if target.ID == candidate.ID {
				continue
			}
			if score := similarity(target, candidate, targetVecs[j], candidateVecs[i]); score > best {
				best = score
			}
		}
		recommendations = append(recommendations, domain.Recommendation{Movie: candidate, Score: best})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations, nil
}
