package usecase

import (
	"strings"
	"testing"

	"github.com/upbringing/recommender/internal/domain"
)

func TestBuildCorpus(t *testing.T) {
	products := []domain.Product{
		{
			Name:        "Vac100",
			Brand:       "Acme",
			Application: "woodworking",
			PowerTier:   domain.TierHigh,
			Details:     "quiet industrial vacuum",
			Type:        "rotary",
			Subtype:     "claw",
		},
	}

	docs := BuildCorpus(products)
	if len(docs) != 1 {
		t.Fatalf("len(docs) = %d, want 1", len(docs))
	}

	doc := docs[0]
	for _, want := range []string{"acme", "vac100", "woodworking", "rotary", "claw", "quiet industrial vacuum", "power high", "pump vacuum"} {
		if !strings.Contains(doc, want) {
			t.Errorf("combined text missing %q: %q", want, doc)
		}
	}

	// Field order is fixed: brand before name before application
	if strings.Index(doc, "acme") > strings.Index(doc, "vac100") {
		t.Errorf("brand should precede name in %q", doc)
	}
}

func TestBuildCorpusDoesNotTouchProducts(t *testing.T) {
	products := []domain.Product{
		{Name: "Vac100", Brand: "Acme", Details: "original details", PowerTier: domain.TierLow},
	}
	BuildCorpus(products)
	if products[0].Details != "original details" {
		t.Errorf("Details mutated to %q", products[0].Details)
	}
}

func TestBuildCorpusTierToken(t *testing.T) {
	products := []domain.Product{
		{Name: "P", Brand: "B", Details: "a sturdy general purpose workshop machine", PowerTier: domain.TierMedium},
	}
	docs := BuildCorpus(products)
	if !strings.Contains(docs[0], "power medium") {
		t.Errorf("expected synthetic tier token in %q", docs[0])
	}
}

func TestBuildCorpusDegenerateFallback(t *testing.T) {
	// almost no text content anywhere: the whole corpus drops to the
	// brand+name guard documents
	products := []domain.Product{
		{Name: "X", Brand: "B", PowerTier: domain.TierMedium},
	}
	docs := BuildCorpus(products)
	if docs[0] != "b x pump" {
		t.Errorf("degenerate doc = %q, want %q", docs[0], "b x pump")
	}
}

func TestMinimalCorpus(t *testing.T) {
	products := []domain.Product{
		{Name: "Vac100", Brand: "Acme", Details: "should not appear", PowerTier: domain.TierHigh},
	}
	docs := MinimalCorpus(products)
	if docs[0] != "acme vac100 pump" {
		t.Errorf("minimal doc = %q, want %q", docs[0], "acme vac100 pump")
	}
}
