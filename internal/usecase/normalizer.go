package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/upbringing/recommender/internal/domain"
)

// Power tier thresholds in kW. These are fixed domain constants; changing them
// breaks behavioral compatibility with existing catalogs.
const (
	powerHighThreshold   = 5.5
	powerMediumThreshold = 2.0
)

// Synonym key lists for the schema normalizer. Ordered: the first key present
// on a record wins, later synonyms are ignored.
var (
	applicationKeys = []string{"Application", "Applications"}
	detailsKeys     = []string{"Product_Details", "Description"}
	ratingKeys      = []string{"Motor Rating (kw)", "Motor_Rating_kW", "Motor Rating(kW)", "Motor_Rating"}
	nameKeys        = []string{"Product", "Product_Name"}
	brandKeys       = []string{"Brand"}
	imageKeys       = []string{"Image_URL", "Image"}
	typeKeys        = []string{"Type"}
	subtypeKeys     = []string{"Subtype"}
)

// ClassifyPower derives a power tier from a raw motor rating value.
// Compound ratings like "5.5/7.5" use only the value before the first "/".
// Any value that fails to parse (empty, missing, non-numeric) classifies as
// medium: a neutral default, not an error.
func ClassifyPower(raw string) domain.Tier {
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return domain.TierMedium
	}
	switch {
	case rating >= powerHighThreshold:
		return domain.TierHigh
	case rating >= powerMediumThreshold:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}

// NormalizeRecord maps one heterogeneous record onto the canonical product
// schema. Missing fields resolve to documented defaults, never to errors.
// Free-text fields are lower-cased after default substitution so that every
// value flowing out of the normalizer takes the same casing path.
// The input record is not mutated.
func NormalizeRecord(rec domain.RawRecord) domain.Product {
	name, ok := firstPresent(rec, nameKeys)
	if !ok || name == "" {
		name = domain.DefaultProductName
	}
	brand, ok := firstPresent(rec, brandKeys)
	if !ok || brand == "" {
		brand = domain.DefaultBrand
	}

	application, _ := firstPresent(rec, applicationKeys)
	details, _ := firstPresent(rec, detailsKeys)
	typ, _ := firstPresent(rec, typeKeys)
	subtype, _ := firstPresent(rec, subtypeKeys)
	image, _ := firstPresent(rec, imageKeys)
	rating, _ := firstPresent(rec, ratingKeys)

	return domain.Product{
		Name:        name,
		Brand:       brand,
		Application: strings.ToLower(application),
		PowerTier:   ClassifyPower(rating),
		Details:     strings.ToLower(details),
		Type:        strings.ToLower(typ),
		Subtype:     strings.ToLower(subtype),
		ImageURL:    image,
		RawRating:   rating,
	}
}

// NormalizeCatalog normalizes a list of records in order. Position in the
// returned slice is the product's identity for index alignment.
func NormalizeCatalog(records []domain.RawRecord) []domain.Product {
	products := make([]domain.Product, len(records))
	for i, rec := range records {
		products[i] = NormalizeRecord(rec)
	}
	return products
}

// firstPresent returns the stringified value of the first synonym key present
// on the record. A key holding nil counts as missing.
func firstPresent(rec domain.RawRecord, keys []string) (string, bool) {
	for _, key := range keys {
		if v, ok := rec[key]; ok && v != nil {
			return stringify(v), true
		}
	}
	return "", false
}

// stringify renders a record value as text. Numbers keep their shortest
// decimal form so a JSON 5.5 classifies the same as the string "5.5".
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
