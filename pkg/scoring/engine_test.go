package scoring_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/chainscope/chainscope/pkg/scoring"
)

func newEngine(t *testing.T) *scoring.Engine {
	t.Helper()
	e, err := scoring.NewEngine(scoring.DefaultCatalog(), scoring.DefaultWeights())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// fixtureRaw resolves, against the default catalog, to every chain
// criterion = 8, control criteria = 4/7/5/4/10 (mean 6), every fairness
// criterion = 10. Categories: 8 / 6 / 10, total 0.4*8+0.4*6+0.2*10 = 7.6.
func fixtureRaw() scoring.RawValues {
	return scoring.RawValues{
		"A1": scoring.Float(1000), // -> 8
		"A2": scoring.Float(25),   // -> 8
		"A3": scoring.Float(30),   // -> 8
		"A4": scoring.Float(34),   // -> 8
		"A5": scoring.Float(5000), // -> 8
		"B1": scoring.Float(3),    // -> 4
		"B2": scoring.Float(10),   // -> 7
		"B3": scoring.Float(1),    // -> 5
		"B4": scoring.Float(2),    // -> 4
		"B5": scoring.Float(1),    // -> 10
		"C1": scoring.Float(0),    // -> 10
		"C2": scoring.Float(0),    // -> 10
		"C3": scoring.Float(100),  // -> 10
		"C4": scoring.Float(0),    // -> 10
	}
}

func TestScoreWeightedTotal(t *testing.T) {
	e := newEngine(t)
	s := e.Score(fixtureRaw())

	if s.ChainScore != 8 || s.ControlScore != 6 || s.FairnessScore != 10 {
		t.Fatalf("category scores = %g/%g/%g, want 8/6/10",
			s.ChainScore, s.ControlScore, s.FairnessScore)
	}
	if want := 7.6; s.TotalScore != want {
		t.Errorf("TotalScore = %g, want %g", s.TotalScore, want)
	}
	if want := 7.6; s.UncappedTotalScore != want {
		t.Errorf("UncappedTotalScore = %g, want %g", s.UncappedTotalScore, want)
	}
	if s.KillSwitchActive {
		t.Error("KillSwitchActive = true, want false")
	}
	if len(s.CriterionScores) != len(scoring.DefaultCatalog()) {
		t.Errorf("got %d criterion scores, want %d", len(s.CriterionScores), len(scoring.DefaultCatalog()))
	}
}

func TestScoreRoundingIdentity(t *testing.T) {
	e := newEngine(t)
	raw := fixtureRaw()
	raw["A2"] = scoring.Float(30) // 7.667: forces a non-trivial rounding

	s := e.Score(raw)
	want := math.Round((0.4*s.ChainScore+0.4*s.ControlScore+0.2*s.FairnessScore)*10) / 10
	if s.UncappedTotalScore != want {
		t.Errorf("UncappedTotalScore = %g, want round1 of weighted sum %g", s.UncappedTotalScore, want)
	}
	if s.RawTotal == s.UncappedTotalScore {
		t.Error("RawTotal should keep the unrounded weighted sum")
	}
}

func TestScoreKillSwitchCap(t *testing.T) {
	e := newEngine(t)
	raw := fixtureRaw()
	raw["B5"] = scoring.Float(0) // halt capability exists

	s := e.Score(raw)
	if !s.KillSwitchActive {
		t.Fatal("KillSwitchActive = false, want true")
	}
	if s.TotalScore != 1.0 {
		t.Errorf("TotalScore = %g, want capped 1.0", s.TotalScore)
	}
	// Control mean drops to (4+7+5+4+0)/5 = 4; uncapped total stays
	// retrievable: 0.4*8 + 0.4*4 + 0.2*10 = 6.8.
	if s.UncappedTotalScore != 6.8 {
		t.Errorf("UncappedTotalScore = %g, want 6.8", s.UncappedTotalScore)
	}
}

func TestScoreKillSwitchExactZeroBoundary(t *testing.T) {
	e := newEngine(t)
	raw := fixtureRaw()

	// 0.01 still lands in B5's [0,1) zero bucket, so the cap fires for any
	// value short of 1. The cap keys on the resolved score, not the raw.
	raw["B5"] = scoring.Float(0.01)
	if s := e.Score(raw); !s.KillSwitchActive {
		t.Error("B5=0.01 resolves to 0, cap should fire")
	}
	raw["B5"] = scoring.Float(1)
	if s := e.Score(raw); s.KillSwitchActive {
		t.Error("B5=1 resolves to 10, cap should not fire")
	}
}

func TestScoreNAExcludedFromCategoryMean(t *testing.T) {
	e := newEngine(t)
	raw := fixtureRaw()
	for _, id := range []string{"A2", "A3", "A4", "A5"} {
		raw[id] = nil
	}

	s := e.Score(raw)
	// Only A1 (=8) remains; the mean must be 8, not 8/5.
	if s.ChainScore != 8 {
		t.Errorf("ChainScore = %g, want 8 (N/A criteria must not dilute the mean)", s.ChainScore)
	}
}

func TestScoreAllNACategoryIsZero(t *testing.T) {
	e := newEngine(t)
	raw := fixtureRaw()
	for _, id := range []string{"C1", "C2", "C3", "C4"} {
		raw[id] = nil
	}
	s := e.Score(raw)
	if s.FairnessScore != 0 {
		t.Errorf("FairnessScore = %g, want 0 for all-N/A category", s.FairnessScore)
	}
}

func TestScoreDeterministic(t *testing.T) {
	e := newEngine(t)
	raw := fixtureRaw()
	raw["A3"] = nil

	first := e.Score(raw)
	second := e.Score(raw)
	if !reflect.DeepEqual(first, second) {
		t.Error("Score is not deterministic for identical inputs")
	}
}

func TestScoreMissingKeysAreNA(t *testing.T) {
	e := newEngine(t)
	s := e.Score(scoring.RawValues{})
	if s.TotalScore != 0 {
		t.Errorf("TotalScore = %g, want 0 when every criterion is N/A", s.TotalScore)
	}
	if s.KillSwitchActive {
		t.Error("KillSwitchActive = true with no B5 value")
	}
	for _, cs := range s.CriterionScores {
		if cs.Score != nil {
			t.Errorf("criterion %s scored %g with no raw value", cs.CriterionID, *cs.Score)
		}
	}
}
