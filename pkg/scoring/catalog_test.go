package scoring_test

import (
	"math"
	"testing"

	"github.com/chainscope/chainscope/pkg/scoring"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := scoring.DefaultCatalog().Validate(); err != nil {
		t.Fatalf("DefaultCatalog().Validate() = %v", err)
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	catalog := scoring.DefaultCatalog()
	counts := map[scoring.Category]int{}
	for _, c := range catalog {
		counts[c.Category]++
	}
	if counts[scoring.CategoryChain] != 5 {
		t.Errorf("chain criteria = %d, want 5", counts[scoring.CategoryChain])
	}
	if counts[scoring.CategoryControl] != 5 {
		t.Errorf("control criteria = %d, want 5", counts[scoring.CategoryControl])
	}
	if counts[scoring.CategoryFairness] != 4 {
		t.Errorf("fairness criteria = %d, want 4", counts[scoring.CategoryFairness])
	}
	if _, ok := catalog.ByID(scoring.KillSwitchCriterion); !ok {
		t.Errorf("catalog is missing the kill-switch criterion %s", scoring.KillSwitchCriterion)
	}
}

func TestValidateRejectsMalformedCatalogs(t *testing.T) {
	inf := math.Inf(1)
	base := scoring.Criterion{
		ID:       "X1",
		Name:     "Test",
		Category: scoring.CategoryChain,
	}

	cases := []struct {
		name     string
		mappings []scoring.ScoreMapping
	}{
		{"empty mappings", nil},
		{"gap between ranges", []scoring.ScoreMapping{
			{Min: 0, Max: 10, Score: scoring.Fixed(1)},
			{Min: 20, Max: inf, Score: scoring.Fixed(5)},
		}},
		{"overlapping ranges", []scoring.ScoreMapping{
			{Min: 0, Max: 10, Score: scoring.Fixed(1)},
			{Min: 5, Max: inf, Score: scoring.Fixed(5)},
		}},
		{"inverted range", []scoring.ScoreMapping{
			{Min: 10, Max: 5, Score: scoring.Fixed(1)},
		}},
		{"unbounded non-final range", []scoring.ScoreMapping{
			{Min: 0, Max: inf, Score: scoring.Fixed(1)},
			{Min: 10, Max: 20, Score: scoring.Fixed(5)},
		}},
		{"interpolation over unbounded range", []scoring.ScoreMapping{
			{Min: 0, Max: inf, Score: scoring.Span(0, 10)},
		}},
		{"score above 10", []scoring.ScoreMapping{
			{Min: 0, Max: inf, Score: scoring.Fixed(11)},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			c.Mappings = tc.mappings
			if err := (scoring.Catalog{c}).Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	inf := math.Inf(1)
	c := scoring.Criterion{
		ID:       "X1",
		Category: scoring.CategoryChain,
		Mappings: []scoring.ScoreMapping{{Min: 0, Max: inf, Score: scoring.Fixed(5)}},
	}
	if err := (scoring.Catalog{c, c}).Validate(); err == nil {
		t.Error("Validate() = nil for duplicate IDs, want error")
	}
}
