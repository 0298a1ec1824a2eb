package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/upbringing/recommender/internal/domain"
)

// Default hybrid score weights. A product matching both categorical facets
// scores at least Application+Power, so exact categorical matches always
// outrank text-only matches.
const (
	defaultWeightApplication = 0.40
	defaultWeightPower       = 0.40
	defaultWeightDescription = 0.20

	// weightSumTolerance bounds floating-point drift when validating that
	// weights sum to 1.0
	weightSumTolerance = 1e-9
)

// defaultResultCount is used when a query does not specify a count
const defaultResultCount = 5

// Weights configures the hybrid score blend. The three weights must be
// non-negative and sum to 1.0 so hybrid scores stay in [0,1].
type Weights struct {
	Application float64
	Power       float64
	Description float64
}

// DefaultWeights returns the standard 40/40/20 blend
func DefaultWeights() Weights {
	return Weights{
		Application: defaultWeightApplication,
		Power:       defaultWeightPower,
		Description: defaultWeightDescription,
	}
}

// Validate checks the score-boundedness invariant
func (w Weights) Validate() error {
	if w.Application < 0 || w.Power < 0 || w.Description < 0 {
		return fmt.Errorf("%w: weights must be non-negative", domain.ErrInvalidInput)
	}
	sum := w.Application + w.Power + w.Description
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: weights must sum to 1.0, got %.4f", domain.ErrInvalidInput, sum)
	}
	return nil
}

// scoredCandidate is the ephemeral per-query scoring record for one product,
// identified by its catalog position.
type scoredCandidate struct {
	position    int
	categorical float64
	similarity  float64
	hybrid      float64
}

// HybridStrategy blends exact categorical match signals with description
// text similarity into one bounded score per product, then selects a
// brand-diverse top-N.
type HybridStrategy struct {
	weights Weights
}

// NewHybridStrategy creates the hybrid strategy. Zero-value weights select
// the default blend; explicit weights must sum to 1.0.
func NewHybridStrategy(weights Weights) (*HybridStrategy, error) {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &HybridStrategy{weights: weights}, nil
}

func (s *HybridStrategy) Name() string {
	return "hybrid"
}

// Recommend scores every product and returns a brand-diverse top-N.
// The application signal is substring containment against the product's
// application text; the power signal is exact tier equality.
func (s *HybridStrategy) Recommend(ctx context.Context, query domain.Query, snap *domain.Snapshot) ([]domain.Recommendation, error) {
	if snap == nil {
		return nil, domain.ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	topN := query.Count
	if topN <= 0 {
		topN = defaultResultCount
	}

	userApp := strings.ToLower(query.Application)
	userPower := strings.ToLower(query.PowerTier)
	similarities := snap.Index.Similarities(strings.ToLower(query.Description))

	candidates := make([]scoredCandidate, len(snap.Products))
	for i, p := range snap.Products {
		var categorical float64
		// An empty application query is a substring of every application
		// text, so it awards the application weight to the whole catalog.
		if strings.Contains(p.Application, userApp) {
			categorical += s.weights.Application
		}
		if userPower == string(p.PowerTier) {
			categorical += s.weights.Power
		}
		similarity := similarities[i] * s.weights.Description
		candidates[i] = scoredCandidate{
			position:    i,
			categorical: categorical,
			similarity:  similarity,
			hybrid:      categorical + similarity,
		}
	}

	// Stable sort keeps catalog order on ties so repeated queries are
	// byte-identical.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].hybrid > candidates[j].hybrid
	})

	return selectDiverse(candidates, snap.Products, topN), nil
}

// selectDiverse picks at most topN of the score-ranked candidates, spreading
// results across distinct brands before repeating one. Brand diversity is a
// soft preference: when fewer than topN distinct brands exist among the
// eligible candidates, the remaining slots are filled with the best-ranked
// duplicates. Only the first 2*topN ranked candidates are eligible, so
// selection cost stays bounded by the requested count. The returned list
// keeps rank order: descending score, ties by catalog order.
func selectDiverse(candidates []scoredCandidate, products []domain.Product, topN int) []domain.Recommendation {
	eligible := candidates
	if len(eligible) > 2*topN {
		eligible = eligible[:2*topN]
	}

	chosen := make([]bool, len(eligible))
	accepted := 0

	// First pass: one candidate per brand, best-ranked first
	seenBrands := make(map[string]bool, topN)
	for i, c := range eligible {
		if accepted >= topN {
			break
		}
		brand := products[c.position].Brand
		if seenBrands[brand] {
			continue
		}
		seenBrands[brand] = true
		chosen[i] = true
		accepted++
	}

	// Second pass: fill any remaining slots with skipped duplicates
	for i := range eligible {
		if accepted >= topN {
			break
		}
		if !chosen[i] {
			chosen[i] = true
			accepted++
		}
	}

	results := make([]domain.Recommendation, 0, accepted)
	for i, c := range eligible {
		if chosen[i] {
			results = append(results, displayRecommendation(products[c.position], c.hybrid))
		}
	}
	return results
}
