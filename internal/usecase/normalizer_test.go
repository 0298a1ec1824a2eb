package usecase

import (
	"testing"

	"github.com/upbringing/recommender/internal/domain"
)

func TestClassifyPower(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Tier
	}{
		{name: "high boundary", raw: "5.5", want: domain.TierHigh},
		{name: "just below high", raw: "5.49", want: domain.TierMedium},
		{name: "medium boundary", raw: "2.0", want: domain.TierMedium},
		{name: "just below medium", raw: "1.99", want: domain.TierLow},
		{name: "compound rating uses value before slash", raw: "7.5/10", want: domain.TierHigh},
		{name: "compound low rating", raw: "1.5/2.2", want: domain.TierLow},
		{name: "non-numeric", raw: "abc", want: domain.TierMedium},
		{name: "missing", raw: "", want: domain.TierMedium},
		{name: "whitespace around value", raw: " 6.0 ", want: domain.TierHigh},
		{name: "zero", raw: "0", want: domain.TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPower(tt.raw); got != tt.want {
				t.Errorf("ClassifyPower(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeRecord(t *testing.T) {
	t.Run("fills defaults for empty record", func(t *testing.T) {
		p := NormalizeRecord(domain.RawRecord{})
		if p.Name != domain.DefaultProductName {
			t.Errorf("Name = %q, want %q", p.Name, domain.DefaultProductName)
		}
		if p.Brand != domain.DefaultBrand {
			t.Errorf("Brand = %q, want %q", p.Brand, domain.DefaultBrand)
		}
		if p.Application != "" || p.Details != "" || p.ImageURL != "" {
			t.Errorf("text fields should default to empty, got %+v", p)
		}
		if p.PowerTier != domain.TierMedium {
			t.Errorf("PowerTier = %v, want medium for missing rating", p.PowerTier)
		}
	})

	t.Run("first synonym key wins", func(t *testing.T) {
		p := NormalizeRecord(domain.RawRecord{
			"Application":  "Packaging",
			"Applications": "Woodworking",
		})
		if p.Application != "packaging" {
			t.Errorf("Application = %q, want %q (first synonym)", p.Application, "packaging")
		}
	})

	t.Run("falls back to later synonym when first absent", func(t *testing.T) {
		p := NormalizeRecord(domain.RawRecord{
			"Applications": "Woodworking",
			"Description":  "Quiet Industrial Vacuum",
		})
		if p.Application != "woodworking" {
			t.Errorf("Application = %q, want %q", p.Application, "woodworking")
		}
		if p.Details != "quiet industrial vacuum" {
			t.Errorf("Details = %q, want lower-cased description", p.Details)
		}
	})

	t.Run("free-text fields are lower-cased", func(t *testing.T) {
		p := NormalizeRecord(domain.RawRecord{
			"Application":     "PACKAGING",
			"Product_Details": "High Flow",
			"Type":            "Rotary",
			"Subtype":         "Claw",
		})
		if p.Application != "packaging" || p.Details != "high flow" || p.Type != "rotary" || p.Subtype != "claw" {
			t.Errorf("expected lower-cased fields, got %+v", p)
		}
	})

	t.Run("name and brand keep their casing", func(t *testing.T) {
		p := NormalizeRecord(domain.RawRecord{"Product": "Vac100", "Brand": "Acme"})
		if p.Name != "Vac100" || p.Brand != "Acme" {
			t.Errorf("Name/Brand = %q/%q, want Vac100/Acme", p.Name, p.Brand)
		}
	})

	t.Run("numeric rating values classify like text", func(t *testing.T) {
		p := NormalizeRecord(domain.RawRecord{"Motor Rating (kw)": 6.0})
		if p.PowerTier != domain.TierHigh {
			t.Errorf("PowerTier = %v, want high for 6.0", p.PowerTier)
		}
	})

	t.Run("nil value counts as missing", func(t *testing.T) {
		p := NormalizeRecord(domain.RawRecord{
			"Motor Rating (kw)": nil,
			"Motor_Rating_kW":   "1.1",
		})
		if p.PowerTier != domain.TierLow {
			t.Errorf("PowerTier = %v, want low from fallback synonym", p.PowerTier)
		}
	})

	t.Run("does not mutate the input record", func(t *testing.T) {
		rec := domain.RawRecord{"Application": "PACKAGING"}
		NormalizeRecord(rec)
		if rec["Application"] != "PACKAGING" {
			t.Errorf("input record mutated: %v", rec)
		}
	})
}

func TestNormalizeCatalogIdempotence(t *testing.T) {
	records := []domain.RawRecord{
		{"Brand": "Acme", "Product": "Vac100", "Applications": "Woodworking", "Motor Rating (kw)": "6.0", "Description": "Quiet Industrial Vacuum"},
		{"Brand": "Globex", "Product": "Pump7", "Application": "packaging", "Motor_Rating_kW": "1.5"},
		{},
	}

	first := NormalizeCatalog(records)

	// Re-normalize via the canonical key spelling of each field
	renormalized := make([]domain.RawRecord, len(first))
	for i, p := range first {
		renormalized[i] = domain.RawRecord{
			"Product":         p.Name,
			"Brand":           p.Brand,
			"Application":     p.Application,
			"Product_Details": p.Details,
			"Motor_Rating":    p.RawRating,
			"Image_URL":       p.ImageURL,
			"Type":            p.Type,
			"Subtype":         p.Subtype,
		}
	}
	second := NormalizeCatalog(renormalized)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("product %d changed on re-normalization:\nfirst:  %+v\nsecond: %+v", i, first[i], second[i])
		}
	}
}

func TestNormalizeCatalogPreservesOrder(t *testing.T) {
	records := []domain.RawRecord{
		{"Product": "A"},
		{"Product": "B"},
		{"Product": "C"},
	}
	products := NormalizeCatalog(records)
	if len(products) != 3 {
		t.Fatalf("len = %d, want 3", len(products))
	}
	for i, want := range []string{"A", "B", "C"} {
		if products[i].Name != want {
			t.Errorf("products[%d].Name = %q, want %q", i, products[i].Name, want)
		}
	}
}
