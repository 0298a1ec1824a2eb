package usecase

import (
	"math"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/upbringing/recommender/internal/domain"
)

// titleCasers pools cases.Caser values for reuse across result rows. A Caser
// carries transformer state, so a single shared instance is not safe for
// concurrent queries; pooling avoids rebuilding one per row.
var titleCasers = sync.Pool{
	New: func() any {
		caser := cases.Title(language.English)
		return &caser
	},
}

// displayRecommendation converts a product and its raw score (in [0,1]) into
// the outward result shape: title-cased facets and a percentage score rounded
// to two decimals.
func displayRecommendation(p domain.Product, score float64) domain.Recommendation {
	return domain.Recommendation{
		Product:     p.Name,
		Brand:       p.Brand,
		Application: titleCase(p.Application),
		PowerUsage:  titleCase(string(p.PowerTier)),
		Score:       roundScorePercent(score),
		ImageURL:    p.ImageURL,
	}
}

// titleCase title-cases each word for display
func titleCase(s string) string {
	caser := titleCasers.Get().(*cases.Caser)
	defer titleCasers.Put(caser)
	return caser.String(s)
}

// roundScorePercent converts a [0,1] score to a percentage with two decimals
func roundScorePercent(score float64) float64 {
	return math.Round(score*100*100) / 100
}
