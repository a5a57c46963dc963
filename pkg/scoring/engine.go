package scoring

import (
	"fmt"
	"math"
)

// Engine scores projects against a validated catalog with fixed category
// weights. Construct once and share; Score is pure and safe for concurrent
// use.
type Engine struct {
	catalog Catalog
	weights Weights
}

// NewEngine validates the catalog and weights and returns an Engine.
func NewEngine(catalog Catalog, weights Weights) (*Engine, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	return &Engine{catalog: catalog, weights: weights}, nil
}

// Catalog returns the engine's criterion catalog.
func (e *Engine) Catalog() Catalog { return e.catalog }

// Score resolves every catalog criterion against the given raw values and
// aggregates category and total scores. Criteria with no raw value (or an
// explicit nil) are N/A and excluded from their category's mean. A category
// whose criteria are all N/A scores 0.
//
// The total is the weighted sum of the uncapped category scores, rounded to
// one decimal for display. If the kill-switch criterion resolves to exactly
// zero, the displayed total is capped at 1.0; the uncapped total stays
// visible for transparency.
func (e *Engine) Score(raw RawValues) ProjectScores {
	var result ProjectScores

	sums := make(map[Category]float64)
	counts := make(map[Category]int)
	killSwitch := false

	for _, crit := range e.catalog {
		score := Resolve(crit, raw[crit.ID])
		result.CriterionScores = append(result.CriterionScores, CriterionScore{
			CriterionID: crit.ID,
			Score:       score,
		})
		if score == nil {
			continue
		}
		sums[crit.Category] += *score
		counts[crit.Category]++
		if crit.ID == KillSwitchCriterion && *score == 0 {
			killSwitch = true
		}
	}

	mean := func(cat Category) float64 {
		if counts[cat] == 0 {
			return 0
		}
		return sums[cat] / float64(counts[cat])
	}

	result.ChainScore = mean(CategoryChain)
	result.ControlScore = mean(CategoryControl)
	result.FairnessScore = mean(CategoryFairness)

	result.RawTotal = e.weights.Chain*result.ChainScore +
		e.weights.Control*result.ControlScore +
		e.weights.Fairness*result.FairnessScore

	result.UncappedTotalScore = round1(result.RawTotal)
	result.TotalScore = result.UncappedTotalScore
	result.KillSwitchActive = killSwitch
	if killSwitch {
		result.TotalScore = math.Min(result.TotalScore, 1.0)
	}

	return result
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
