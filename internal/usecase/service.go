package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/upbringing/recommender/internal/domain"
)

// ServiceConfig holds configuration for the recommender service
type ServiceConfig struct {
	Weights      Weights
	DefaultCount int
}

// Status describes the readiness of the service for the health surface
type Status struct {
	ProductsLoaded bool `json:"products_loaded"`
	ProductCount   int  `json:"product_count"`
	IndexCached    bool `json:"index_cached"`
}

// RecommenderService owns the catalog store and the named recommendation
// strategies. It is the single entry point for both the HTTP and CLI surfaces.
type RecommenderService struct {
	store        domain.CatalogStore
	strategies   map[string]domain.Strategy
	defaultCount int
}

// NewRecommenderService wires the hybrid and filter strategies over the
// given catalog store. Invalid weights are rejected here, before any request
// is served.
func NewRecommenderService(store domain.CatalogStore, config ServiceConfig) (*RecommenderService, error) {
	hybrid, err := NewHybridStrategy(config.Weights)
	if err != nil {
		return nil, err
	}
	filter := NewFilterStrategy()

	defaultCount := config.DefaultCount
	if defaultCount <= 0 {
		defaultCount = defaultResultCount
	}

	return &RecommenderService{
		store: store,
		strategies: map[string]domain.Strategy{
			hybrid.Name(): hybrid,
			filter.Name(): filter,
		},
		defaultCount: defaultCount,
	}, nil
}

// Load replaces the active catalog with one built from the given records
func (s *RecommenderService) Load(ctx context.Context, records []domain.RawRecord) error {
	return s.store.Replace(ctx, records)
}

// Recommend runs the named strategy against the current catalog snapshot.
// An empty strategy name selects the filter strategy.
func (s *RecommenderService) Recommend(ctx context.Context, strategy string, query domain.Query) ([]domain.Recommendation, error) {
	if strategy == "" {
		strategy = "filter"
	}
	st, ok := s.strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: unknown strategy %q", domain.ErrInvalidInput, strategy)
	}

	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	if query.Count <= 0 {
		query.Count = s.defaultCount
	}
	return st.Recommend(ctx, query, snap)
}

// Status reports catalog readiness
func (s *RecommenderService) Status() Status {
	snap, err := s.store.Snapshot()
	if err != nil {
		return Status{}
	}
	return Status{
		ProductsLoaded: true,
		ProductCount:   len(snap.Products),
		IndexCached:    snap.Index != nil,
	}
}

// ProductCount returns the size of the active catalog, zero before the
// first load.
func (s *RecommenderService) ProductCount() int {
	snap, err := s.store.Snapshot()
	if err != nil {
		return 0
	}
	return len(snap.Products)
}

// BuildSnapshot runs the full catalog pipeline: normalize records, build the
// combined-text corpus, fit the index. A fit failure self-heals by retrying
// once against the minimal brand+name corpus before reporting an index error.
func BuildSnapshot(ctx context.Context, records []domain.RawRecord) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records to load", domain.ErrEmptyCatalog)
	}

	products := NormalizeCatalog(records)
	corpus := BuildCorpus(products)

	index, err := FitIndex(corpus)
	if err != nil {
		log.Printf("[INDEX] fit failed, retrying with minimal corpus: %v", err)
		index, err = FitIndex(MinimalCorpus(products))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrIndexFit, err)
		}
	}

	return &domain.Snapshot{
		Products: products,
		Index:    index,
		LoadedAt: time.Now(),
	}, nil
}
