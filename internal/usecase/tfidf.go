package usecase

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/upbringing/recommender/internal/domain"
)

// tokenRegex matches single-word tokens; compiled once at package init
var tokenRegex = regexp.MustCompile(`\w+`)

// maxVocabularyTerms caps the fitted vocabulary. Terms are kept by highest
// corpus-wide count, ties broken alphabetically, so fitting an identical
// corpus always yields an identical index.
const maxVocabularyTerms = 1000

// Index is a sparse term-weighted (TF-IDF) vector space fitted over a
// catalog corpus. The vocabulary derives solely from the fitted documents;
// query terms outside it contribute zero weight. An Index is immutable after
// fitting and safe for concurrent queries.
type Index struct {
	vocabulary map[string]int
	idf        []float64
	rows       [][]float64 // one L2-normalized tf-idf vector per document
}

// FitIndex fits a TF-IDF index over the corpus, one document per catalog
// product in catalog order. Fitting an all-empty corpus succeeds with an
// empty vocabulary (all queries then score zero); only a zero-length corpus
// is an error.
func FitIndex(docs []string) (*Index, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: cannot fit index over empty corpus", domain.ErrInvalidInput)
	}

	tokenized := make([][]string, len(docs))
	termCounts := make(map[string]int)
	docFrequencies := make(map[string]int)
	for i, doc := range docs {
		tokens := tokenize(doc)
		tokenized[i] = tokens
		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			termCounts[tok]++
			if !seen[tok] {
				seen[tok] = true
				docFrequencies[tok]++
			}
		}
	}

	vocabulary := buildVocabulary(termCounts)

	idf := make([]float64, len(vocabulary))
	n := float64(len(docs))
	for term, col := range vocabulary {
		df := float64(docFrequencies[term])
		idf[col] = math.Log((1+n)/(1+df)) + 1
	}

	ix := &Index{
		vocabulary: vocabulary,
		idf:        idf,
		rows:       make([][]float64, len(docs)),
	}
	for i, tokens := range tokenized {
		ix.rows[i] = ix.vectorize(tokens)
	}
	return ix, nil
}

// Similarities scores a raw query text against every fitted document,
// returning one cosine similarity in [0,1] per document, in catalog order.
// Querying never mutates the index.
func (ix *Index) Similarities(text string) []float64 {
	out := make([]float64, len(ix.rows))
	query := ix.vectorize(tokenize(text))
	if query == nil {
		return out
	}
	for i, row := range ix.rows {
		if row == nil {
			continue
		}
		// rows and query are L2-normalized, so the dot product is the cosine
		out[i] = clamp01(floats.Dot(query, row))
	}
	return out
}

// Terms reports the fitted vocabulary size
func (ix *Index) Terms() int {
	return len(ix.vocabulary)
}

// vectorize builds the L2-normalized tf-idf vector for a token list.
// Returns nil when no token maps into the vocabulary.
func (ix *Index) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(ix.vocabulary))
	hit := false
	for _, tok := range tokens {
		if col, ok := ix.vocabulary[tok]; ok {
			vec[col]++
			hit = true
		}
	}
	if !hit {
		return nil
	}
	floats.Mul(vec, ix.idf)
	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// buildVocabulary selects up to maxVocabularyTerms terms and assigns each a
// stable column: selection by descending corpus count (ties alphabetical),
// column order alphabetical over the selected set.
func buildVocabulary(termCounts map[string]int) map[string]int {
	terms := make([]string, 0, len(termCounts))
	for term := range termCounts {
		terms = append(terms, term)
	}
	if len(terms) > maxVocabularyTerms {
		sort.Slice(terms, func(i, j int) bool {
			if termCounts[terms[i]] != termCounts[terms[j]] {
				return termCounts[terms[i]] > termCounts[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:maxVocabularyTerms]
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	for col, term := range terms {
		vocabulary[term] = col
	}
	return vocabulary
}

// tokenize lower-cases text and splits it into word tokens
func tokenize(text string) []string {
	return tokenRegex.FindAllString(strings.ToLower(text), -1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
