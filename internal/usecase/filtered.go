package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/upbringing/recommender/internal/domain"
)

// FilterStrategy hard-filters the catalog by application substring match and
// power tier equality before ranking purely by text similarity. Unlike the
// hybrid strategy it can return an empty result set: no application match
// means no recommendations, with success status. A power filter that matches
// nothing falls back to the application-only candidate set.
type FilterStrategy struct{}

func NewFilterStrategy() *FilterStrategy {
	return &FilterStrategy{}
}

func (s *FilterStrategy) Name() string {
	return "filter"
}

// rankedCandidate tracks a candidate by its original catalog position so
// similarity scores stay aligned with products without any reverse lookup.
type rankedCandidate struct {
	position int
	score    float64
}

func (s *FilterStrategy) Recommend(ctx context.Context, query domain.Query, snap *domain.Snapshot) ([]domain.Recommendation, error) {
	if snap == nil {
		return nil, domain.ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	count := query.Count
	if count <= 0 {
		count = defaultResultCount
	}

	userApp := strings.ToLower(query.Application)
	userPower := strings.ToLower(query.PowerTier)

	appMatches := make([]int, 0, len(snap.Products))
	for i, p := range snap.Products {
		if strings.Contains(p.Application, userApp) {
			appMatches = append(appMatches, i)
		}
	}
	if len(appMatches) == 0 {
		return []domain.Recommendation{}, nil
	}

	powerMatches := make([]int, 0, len(appMatches))
	for _, i := range appMatches {
		if string(snap.Products[i].PowerTier) == userPower {
			powerMatches = append(powerMatches, i)
		}
	}
	filtered := powerMatches
	if len(filtered) == 0 {
		filtered = appMatches
	}

	queryText := strings.ToLower(query.Description) + " " + userApp
	similarities := snap.Index.Similarities(queryText)

	ranked := make([]rankedCandidate, len(filtered))
	for i, pos := range filtered {
		ranked[i] = rankedCandidate{position: pos, score: similarities[pos]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > count {
		ranked = ranked[:count]
	}

	results := make([]domain.Recommendation, len(ranked))
	for i, c := range ranked {
		results[i] = displayRecommendation(snap.Products[c.position], c.score)
	}
	return results, nil
}
