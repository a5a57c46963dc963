package projects_test

import (
	"testing"

	"github.com/chainscope/chainscope/pkg/projects"
	"github.com/chainscope/chainscope/pkg/scoring"
)

func defaultRegistry(t *testing.T) *projects.Registry {
	t.Helper()
	engine, err := scoring.NewEngine(scoring.DefaultCatalog(), scoring.DefaultWeights())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	r, err := projects.NewRegistry(engine, projects.DefaultDefinitions())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func TestRegistryOrderedByScore(t *testing.T) {
	r := defaultRegistry(t)
	all := r.All()
	if len(all) == 0 {
		t.Fatal("empty registry")
	}
	key := func(p projects.Project) float64 {
		if p.Scores.KillSwitchActive && p.Scores.RawTotal > 1.0 {
			return 1.0
		}
		return p.Scores.RawTotal
	}
	for i := 1; i < len(all); i++ {
		if key(all[i-1]) < key(all[i]) {
			t.Errorf("registry out of order: %s (%g) before %s (%g)",
				all[i-1].ID, key(all[i-1]), all[i].ID, key(all[i]))
		}
	}
}

func TestRegistryByID(t *testing.T) {
	r := defaultRegistry(t)
	p, ok := r.ByID("bitcoin")
	if !ok {
		t.Fatal("bitcoin not registered")
	}
	if p.Symbol != "BTC" {
		t.Errorf("Symbol = %q, want BTC", p.Symbol)
	}
	if _, ok := r.ByID("dogecoin"); ok {
		t.Error("ByID returned a project for an unknown id")
	}
}

func TestDefaultKillSwitchProjectsAreCapped(t *testing.T) {
	r := defaultRegistry(t)
	for _, id := range []string{"solana", "bnb"} {
		p, ok := r.ByID(id)
		if !ok {
			t.Fatalf("%s not registered", id)
		}
		if !p.Scores.KillSwitchActive {
			t.Errorf("%s: KillSwitchActive = false, want true", id)
		}
		if p.Scores.TotalScore > 1.0 {
			t.Errorf("%s: TotalScore = %g, want <= 1.0", id, p.Scores.TotalScore)
		}
		if p.Scores.UncappedTotalScore <= p.Scores.TotalScore {
			t.Errorf("%s: uncapped total %g should exceed capped %g",
				id, p.Scores.UncappedTotalScore, p.Scores.TotalScore)
		}
	}
}

func TestDefaultNACriteriaStayNA(t *testing.T) {
	r := defaultRegistry(t)
	p, _ := r.ByID("bitcoin")
	for _, cs := range p.Scores.CriterionScores {
		switch cs.CriterionID {
		case "B1", "C3": // not applicable to proof-of-work
			if cs.Score != nil {
				t.Errorf("bitcoin %s: score = %g, want N/A", cs.CriterionID, *cs.Score)
			}
		}
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	engine, err := scoring.NewEngine(scoring.DefaultCatalog(), scoring.DefaultWeights())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defs := []projects.Definition{
		{ID: "x", Name: "X"},
		{ID: "x", Name: "X again"},
	}
	if _, err := projects.NewRegistry(engine, defs); err == nil {
		t.Error("NewRegistry accepted duplicate project IDs")
	}
}
