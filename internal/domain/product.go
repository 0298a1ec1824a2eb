package domain

import "time"

// Tier is the derived power classification of a product's motor rating.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Placeholder values used when source records omit name or brand
const (
	DefaultProductName = "Unknown Product"
	DefaultBrand       = "Unknown Brand"
)

// RawRecord is a product record as received from a catalog source, before
// normalization. Keys are arbitrary column names from CSV headers or JSON objects.
type RawRecord map[string]any

// Product is a catalog entry in canonical form. Past the normalization
// boundary every field is populated: free-text fields are lower-cased,
// name/brand fall back to placeholder values, and PowerTier is always one
// of the three Tier constants.
type Product struct {
	Name        string `json:"Product"`
	Brand       string `json:"Brand"`
	Application string `json:"Application"`
	PowerTier   Tier   `json:"PowerUsage"`
	Details     string `json:"Product_Details"`
	Type        string `json:"Type,omitempty"`
	Subtype     string `json:"Subtype,omitempty"`
	ImageURL    string `json:"Image_URL,omitempty"`
	RawRating   string `json:"Motor_Rating,omitempty"`
}

// Query holds one recommendation request. Queries are stateless and never
// mutate the catalog they run against.
type Query struct {
	Application string
	PowerTier   string
	Description string
	Count       int
}

// Recommendation is one entry of a ranked result list. Application and
// PowerUsage are title-cased for display; Score is the product's hybrid or
// similarity score expressed as a percentage rounded to two decimals.
type Recommendation struct {
	Product     string  `json:"Product_Name"`
	Brand       string  `json:"Brand"`
	Application string  `json:"Application"`
	PowerUsage  string  `json:"PowerUsage"`
	Score       float64 `json:"Similarity_Score"`
	ImageURL    string  `json:"Image_URL"`
}

// Snapshot pairs a normalized catalog with the index fitted over it.
// A snapshot is immutable once published; replacing the catalog always
// produces a fresh snapshot, so in-flight queries never observe a catalog
// paired with an index fitted over a different product list.
type Snapshot struct {
	Products []Product
	Index    Index
	LoadedAt time.Time
}
