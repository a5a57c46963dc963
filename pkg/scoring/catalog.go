package scoring

import (
	"fmt"
	"math"
)

// Catalog is the ordered set of criteria a project is scored against.
type Catalog []Criterion

// ByID returns the criterion with the given ID, or false if unknown.
func (c Catalog) ByID(id string) (Criterion, bool) {
	for _, crit := range c {
		if crit.ID == id {
			return crit, true
		}
	}
	return Criterion{}, false
}

// Validate checks structural invariants of every criterion. A malformed
// catalog is a configuration error: callers must fail at load time, never
// at request time.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	seen := make(map[string]bool)
	for _, crit := range c {
		if crit.ID == "" {
			return fmt.Errorf("criterion %q: missing id", crit.Name)
		}
		if seen[crit.ID] {
			return fmt.Errorf("criterion %s: duplicate id", crit.ID)
		}
		seen[crit.ID] = true

		switch crit.Category {
		case CategoryChain, CategoryControl, CategoryFairness:
		default:
			return fmt.Errorf("criterion %s: unknown category %q", crit.ID, crit.Category)
		}

		if err := validateMappings(crit.ID, crit.Mappings); err != nil {
			return err
		}
	}
	return nil
}

func validateMappings(id string, mappings []ScoreMapping) error {
	if len(mappings) == 0 {
		return fmt.Errorf("criterion %s: no mappings", id)
	}
	for i, m := range mappings {
		if m.Max <= m.Min {
			return fmt.Errorf("criterion %s: mapping %d: max %g <= min %g", id, i, m.Max, m.Min)
		}
		if m.Unbounded() {
			if i != len(mappings)-1 {
				return fmt.Errorf("criterion %s: mapping %d: only the final range may be unbounded", id, i)
			}
			if m.Score.Interpolate {
				return fmt.Errorf("criterion %s: mapping %d: cannot interpolate over an unbounded range", id, i)
			}
		}
		if i > 0 && m.Min != mappings[i-1].Max {
			return fmt.Errorf("criterion %s: mapping %d: gap or overlap at %g (previous max %g)",
				id, i, m.Min, mappings[i-1].Max)
		}
		for _, s := range []float64{m.Score.AtMin, m.Score.AtMax} {
			if s < 0 || s > 10 {
				return fmt.Errorf("criterion %s: mapping %d: score %g outside 0-10", id, i, s)
			}
		}
	}
	return nil
}

// DefaultCatalog returns the published Chainscope criterion catalog:
// five chain criteria (A), five control criteria (B), four fairness
// criteria (C). Raw-value units are documented per criterion.
func DefaultCatalog() Catalog {
	inf := math.Inf(1)
	return Catalog{
		{
			ID:          "A1",
			Name:        "Active validators",
			Description: "Number of distinct validators (or miners/pools) actively producing blocks.",
			Category:    CategoryChain,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 10, Score: Fixed(1), Label: "Trivially small set"},
				{Min: 10, Max: 50, Score: Span(2, 4), Label: "Small set"},
				{Min: 50, Max: 150, Score: Span(4, 6), Label: "Moderate set"},
				{Min: 150, Max: 1000, Score: Span(6, 8), Label: "Large set"},
				{Min: 1000, Max: 10000, Score: Span(8, 10), Label: "Very large set"},
				{Min: 10000, Max: inf, Score: Fixed(10), Label: "Massive set"},
			},
			Sources: []string{"chain explorer validator set"},
		},
		{
			ID:          "A2",
			Name:        "Validator concentration",
			Description: "Share of stake (or hashrate) held by the top 5 validators, percent.",
			Category:    CategoryChain,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 15, Score: Span(10, 9), Label: "Highly dispersed"},
				{Min: 15, Max: 25, Score: Span(9, 8), Label: "Dispersed"},
				{Min: 25, Max: 40, Score: Span(8, 7), Label: "Moderately concentrated"},
				{Min: 40, Max: 60, Score: Span(7, 4), Label: "Concentrated"},
				{Min: 60, Max: 100, Score: Span(4, 0), Label: "Dominated"},
				{Min: 100, Max: inf, Score: Fixed(0), Label: "Fully captured"},
			},
			Sources: []string{"staking dashboards", "mining pool stats"},
		},
		{
			ID:          "A3",
			Name:        "Nakamoto coefficient",
			Description: "Minimum number of entities whose collusion halts or censors the chain.",
			Category:    CategoryChain,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 1, Score: Fixed(0), Label: "Single point of failure"},
				{Min: 1, Max: 4, Score: Span(1, 3), Label: "Very low"},
				{Min: 4, Max: 10, Score: Span(3, 6), Label: "Low"},
				{Min: 10, Max: 30, Score: Span(6, 8), Label: "Moderate"},
				{Min: 30, Max: 100, Score: Span(8, 10), Label: "High"},
				{Min: 100, Max: inf, Score: Fixed(10), Label: "Very high"},
			},
			Sources: []string{"nakaflow.io-style trackers"},
		},
		{
			ID:          "A4",
			Name:        "Client diversity",
			Description: "Share of nodes running the single most popular client implementation, percent.",
			Category:    CategoryChain,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 34, Score: Span(10, 8), Label: "No supermajority client"},
				{Min: 34, Max: 50, Score: Span(8, 6), Label: "Dominant client below half"},
				{Min: 50, Max: 66, Score: Span(6, 4), Label: "Majority client"},
				{Min: 66, Max: 90, Score: Span(4, 1), Label: "Supermajority client"},
				{Min: 90, Max: inf, Score: Fixed(0), Label: "Client monoculture"},
			},
			Sources: []string{"client diversity dashboards"},
		},
		{
			ID:          "A5",
			Name:        "Node count",
			Description: "Publicly reachable full nodes.",
			Category:    CategoryChain,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 100, Score: Span(0, 3), Label: "Sparse"},
				{Min: 100, Max: 1000, Score: Span(3, 6), Label: "Modest"},
				{Min: 1000, Max: 5000, Score: Span(6, 8), Label: "Healthy"},
				{Min: 5000, Max: 15000, Score: Span(8, 10), Label: "Extensive"},
				{Min: 15000, Max: inf, Score: Fixed(10), Label: "Ubiquitous"},
			},
			Sources: []string{"crawler node counts"},
		},
		{
			ID:          "B1",
			Name:        "Upgrade authority",
			Description: "Independent signers required to push a protocol or contract upgrade.",
			Category:    CategoryControl,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 1, Score: Fixed(0), Label: "Unilateral upgrades"},
				{Min: 1, Max: 3, Score: Span(2, 4), Label: "Small multisig"},
				{Min: 3, Max: 6, Score: Span(4, 7), Label: "Medium multisig"},
				{Min: 6, Max: 10, Score: Span(7, 9), Label: "Large multisig"},
				{Min: 10, Max: inf, Score: Fixed(10), Label: "No privileged upgrade path"},
			},
			Sources: []string{"project docs", "on-chain multisig config"},
		},
		{
			ID:          "B2",
			Name:        "Foundation stake share",
			Description: "Stake controlled by the founding entity and affiliates, percent.",
			Category:    CategoryControl,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 5, Score: Span(10, 8), Label: "Negligible"},
				{Min: 5, Max: 15, Score: Span(8, 6), Label: "Minor"},
				{Min: 15, Max: 30, Score: Span(6, 3), Label: "Significant"},
				{Min: 30, Max: 50, Score: Span(3, 1), Label: "Dominant"},
				{Min: 50, Max: inf, Score: Fixed(0), Label: "Controlling"},
			},
			Sources: []string{"foundation disclosures", "token unlock trackers"},
		},
		{
			ID:          "B3",
			Name:        "Validator permissioning",
			Description: "0 = permissioned set, 1 = gated/allowlist, 2 = fully permissionless.",
			Category:    CategoryControl,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 1, Score: Fixed(0), Label: "Permissioned"},
				{Min: 1, Max: 2, Score: Fixed(5), Label: "Gated"},
				{Min: 2, Max: inf, Score: Fixed(10), Label: "Permissionless"},
			},
			Sources: []string{"protocol docs"},
		},
		{
			ID:          "B4",
			Name:        "Core development spread",
			Description: "Independent organizations contributing substantial core protocol work.",
			Category:    CategoryControl,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 1, Score: Fixed(0), Label: "No active development"},
				{Min: 1, Max: 2, Score: Fixed(2), Label: "Single organization"},
				{Min: 2, Max: 5, Score: Span(4, 7), Label: "A few organizations"},
				{Min: 5, Max: 10, Score: Span(7, 9), Label: "Broad"},
				{Min: 10, Max: inf, Score: Fixed(10), Label: "Very broad"},
			},
			Sources: []string{"repository contributor analysis"},
		},
		{
			ID:          "B5",
			Name:        "Kill switch",
			Description: "0 = a privileged party can halt or freeze the chain, 1 = no such capability.",
			Category:    CategoryControl,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 1, Score: Fixed(0), Label: "Halt capability exists"},
				{Min: 1, Max: inf, Score: Fixed(10), Label: "No halt capability"},
			},
			Sources: []string{"incident history", "protocol docs"},
		},
		{
			ID:          "C1",
			Name:        "Initial distribution",
			Description: "Genesis allocation to insiders (team, investors, foundation), percent.",
			Category:    CategoryFairness,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 10, Score: Span(10, 8), Label: "Broad launch"},
				{Min: 10, Max: 25, Score: Span(8, 6), Label: "Modest insider share"},
				{Min: 25, Max: 50, Score: Span(6, 3), Label: "Heavy insider share"},
				{Min: 50, Max: 80, Score: Span(3, 0), Label: "Insider-dominated"},
				{Min: 80, Max: inf, Score: Fixed(0), Label: "Effectively private"},
			},
			Sources: []string{"genesis allocation research"},
		},
		{
			ID:          "C2",
			Name:        "Holder concentration",
			Description: "Supply held by the top 10 non-custodial addresses, percent.",
			Category:    CategoryFairness,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 20, Score: Span(10, 8), Label: "Dispersed supply"},
				{Min: 20, Max: 40, Score: Span(8, 5), Label: "Concentrated"},
				{Min: 40, Max: 70, Score: Span(5, 2), Label: "Highly concentrated"},
				{Min: 70, Max: inf, Score: Fixed(0), Label: "Whale-controlled"},
			},
			Sources: []string{"rich-list explorers"},
		},
		{
			ID:          "C3",
			Name:        "Staking participation",
			Description: "Share of circulating supply actively staked or delegated, percent.",
			Category:    CategoryFairness,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 10, Score: Span(0, 2), Label: "Minimal participation"},
				{Min: 10, Max: 30, Score: Span(2, 5), Label: "Low participation"},
				{Min: 30, Max: 60, Score: Span(5, 8), Label: "Healthy participation"},
				{Min: 60, Max: 100, Score: Span(8, 10), Label: "Broad participation"},
				{Min: 100, Max: inf, Score: Fixed(10), Label: "Full participation"},
			},
			Sources: []string{"staking dashboards"},
		},
		{
			ID:          "C4",
			Name:        "Premine share",
			Description: "Supply created before public availability, percent of current supply.",
			Category:    CategoryFairness,
			Mappings: []ScoreMapping{
				{Min: 0, Max: 1, Score: Fixed(10), Label: "No premine"},
				{Min: 1, Max: 20, Score: Span(9, 6), Label: "Small premine"},
				{Min: 20, Max: 50, Score: Span(6, 2), Label: "Large premine"},
				{Min: 50, Max: inf, Score: Fixed(0), Label: "Majority premined"},
			},
			Sources: []string{"launch history research"},
		},
	}
}
