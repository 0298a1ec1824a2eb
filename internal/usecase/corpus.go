package usecase

import (
	"strings"

	"github.com/upbringing/recommender/internal/domain"
)

// Corpus construction constants
const (
	// domainKeywords is appended to every combined text so the index never
	// fits an all-empty vocabulary even when source descriptions are blank
	domainKeywords = "pump vacuum"

	// fallbackKeyword seeds the minimal corpus used when the full corpus is
	// degenerate or index fitting fails
	fallbackKeyword = "pump"

	// minCorpusChars is the total character count below which the full
	// corpus is considered degenerate. Low enough that a single product
	// with a real description stays on the full-corpus path.
	minCorpusChars = 50
)

// BuildCorpus produces one combined-text document per product, in catalog
// order, for index fitting. The combined text concatenates fields in a fixed
// order plus a literal power-tier token and the shared domain keywords; it is
// used only for indexing and never written back onto the product.
//
// If the total character count across the catalog falls below minCorpusChars,
// the whole corpus falls back to brand+name+keyword documents. This is a
// last-resort guard against degenerate catalogs, not the common path.
func BuildCorpus(products []domain.Product) []string {
	docs := make([]string, len(products))
	total := 0
	for i, p := range products {
		doc := joinFields(
			p.Brand,
			p.Name,
			p.Application,
			p.Type,
			p.Subtype,
			p.Details,
			"power "+string(p.PowerTier),
			domainKeywords,
		)
		docs[i] = doc
		total += len(doc)
	}

	if total < minCorpusChars {
		return MinimalCorpus(products)
	}
	return docs
}

// MinimalCorpus builds the brand+name-only fallback corpus
func MinimalCorpus(products []domain.Product) []string {
	docs := make([]string, len(products))
	for i, p := range products {
		docs[i] = joinFields(p.Brand, p.Name, fallbackKeyword)
	}
	return docs
}

// joinFields concatenates non-empty fields with single spaces
func joinFields(fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
