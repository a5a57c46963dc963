package scoring_test

import (
	"math"
	"testing"

	"github.com/chainscope/chainscope/pkg/scoring"
)

func mustCriterion(t *testing.T, id string) scoring.Criterion {
	t.Helper()
	crit, ok := scoring.DefaultCatalog().ByID(id)
	if !ok {
		t.Fatalf("criterion %s not in default catalog", id)
	}
	return crit
}

func resolveAt(t *testing.T, c scoring.Criterion, raw float64) float64 {
	t.Helper()
	got := scoring.Resolve(c, scoring.Float(raw))
	if got == nil {
		t.Fatalf("Resolve(%s, %g) = nil, want score", c.ID, raw)
	}
	return *got
}

func TestResolveNilIsNA(t *testing.T) {
	c := mustCriterion(t, "A2")
	if got := scoring.Resolve(c, nil); got != nil {
		t.Errorf("Resolve(nil) = %v, want nil", *got)
	}
}

func TestResolveInterpolation(t *testing.T) {
	// A2's {25, 40, [8, 7]} range is the published example:
	// 8 - (30-25)/(40-25)*(8-7) = 7.667
	c := mustCriterion(t, "A2")
	got := resolveAt(t, c, 30)
	want := 8.0 - (30.0-25.0)/(40.0-25.0)*1.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Resolve(A2, 30) = %g, want %g", got, want)
	}
}

func TestResolveInterpolationBoundaries(t *testing.T) {
	c := mustCriterion(t, "A2")

	// Exactly at a range's min yields its score-at-min.
	if got := resolveAt(t, c, 25); got != 8 {
		t.Errorf("Resolve(A2, 25) = %g, want 8", got)
	}
	// Exactly at a range's max falls into the next contiguous range; the
	// catalog is value-continuous so this equals the closing score.
	if got := resolveAt(t, c, 40); got != 7 {
		t.Errorf("Resolve(A2, 40) = %g, want 7", got)
	}
	// Midpoint of a pair is the mean of its endpoints.
	mid := resolveAt(t, c, 32.5)
	if math.Abs(mid-7.5) > 1e-9 {
		t.Errorf("Resolve(A2, 32.5) = %g, want 7.5", mid)
	}
}

func TestResolveClampsBelowDomain(t *testing.T) {
	for _, c := range scoring.DefaultCatalog() {
		got := resolveAt(t, c, c.Mappings[0].Min-100)
		want := c.Mappings[0].Score.AtMin
		if got != want {
			t.Errorf("%s: Resolve below domain = %g, want first range score %g", c.ID, got, want)
		}
	}
}

func TestResolveClampsAboveDomain(t *testing.T) {
	for _, c := range scoring.DefaultCatalog() {
		last := c.Mappings[len(c.Mappings)-1]
		probe := last.Min + 1e6
		got := resolveAt(t, c, probe)
		want := last.Score.AtMax
		if got != want {
			t.Errorf("%s: Resolve(%g) = %g, want last range score %g", c.ID, probe, got, want)
		}
	}
}

func TestResolveFixedRange(t *testing.T) {
	// B3 is bucketed: no interpolation inside a range.
	c := mustCriterion(t, "B3")
	for _, raw := range []float64{1.0, 1.2, 1.9} {
		if got := resolveAt(t, c, raw); got != 5 {
			t.Errorf("Resolve(B3, %g) = %g, want 5", raw, got)
		}
	}
}
