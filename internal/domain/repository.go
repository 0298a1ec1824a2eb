package domain

import "context"

// Index is a fitted text index over a catalog's combined-text corpus.
type Index interface {
	// Similarities scores a raw query text against every indexed document,
	// returning one cosine similarity in [0,1] per document, in catalog order.
	Similarities(text string) []float64

	// Terms reports the vocabulary size of the fitted index
	Terms() int
}

// Strategy is a named recommendation algorithm run against a catalog snapshot.
// Implementations must treat the snapshot as read-only.
type Strategy interface {
	Name() string
	Recommend(ctx context.Context, query Query, snap *Snapshot) ([]Recommendation, error)
}

// CatalogStore holds the currently active catalog/index pair.
type CatalogStore interface {
	// Snapshot returns the active snapshot, or ErrNotReady before the first load
	Snapshot() (*Snapshot, error)

	// Replace swaps in a new catalog built from raw records, invalidating the
	// previous snapshot
	Replace(ctx context.Context, records []RawRecord) error
}

// RecordSource yields raw catalog records from an external representation
// (CSV file, JSON blob, stdin).
type RecordSource interface {
	Records(ctx context.Context) ([]RawRecord, error)
}
