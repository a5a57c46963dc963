// Package scoring implements the Chainscope decentralization scoring engine.
// It maps raw per-criterion network measurements to 0-10 scores via piecewise
// range lookups and rolls them up into weighted category and total scores.
package scoring

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Category groups criteria into one of the three scored dimensions.
type Category string

const (
	CategoryChain    Category = "chain"
	CategoryControl  Category = "control"
	CategoryFairness Category = "fairness"
)

// KillSwitchCriterion is the criterion whose zero score caps the total.
const KillSwitchCriterion = "B5"

// ScoreValue is the score assigned by a mapping range: either a fixed score
// for the whole range, or an interpolation pair giving the score at the
// range's min and max. The pair may be descending (lower raw value scores
// higher, e.g. concentration percentages).
type ScoreValue struct {
	AtMin       float64
	AtMax       float64
	Interpolate bool
}

// Fixed returns a ScoreValue that assigns s to every value in the range.
func Fixed(s float64) ScoreValue {
	return ScoreValue{AtMin: s, AtMax: s}
}

// Span returns a ScoreValue that interpolates linearly from atMin to atMax.
func Span(atMin, atMax float64) ScoreValue {
	return ScoreValue{AtMin: atMin, AtMax: atMax, Interpolate: true}
}

// MarshalJSON renders a fixed score as a number and an interpolation pair
// as a two-element array, matching the catalog's wire shape.
func (v ScoreValue) MarshalJSON() ([]byte, error) {
	if v.Interpolate {
		return json.Marshal([2]float64{v.AtMin, v.AtMax})
	}
	return json.Marshal(v.AtMin)
}

// UnmarshalJSON accepts a number or a two-element array.
func (v *ScoreValue) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err == nil {
		*v = Span(pair[0], pair[1])
		return nil
	}
	var s float64
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("score must be a number or [atMin, atMax] pair")
	}
	*v = Fixed(s)
	return nil
}

// UnmarshalYAML accepts a scalar or a two-element sequence, so catalog
// override files can write `score: 5` or `score: [8, 7]`.
func (v *ScoreValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var pair [2]float64
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("score pair: %w", err)
		}
		*v = Span(pair[0], pair[1])
		return nil
	}
	var s float64
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	*v = Fixed(s)
	return nil
}

// ScoreMapping assigns a score to the half-open raw-value range [Min, Max).
// The final mapping of a criterion may have Max = +Inf.
type ScoreMapping struct {
	Min   float64    `json:"min" yaml:"min"`
	Max   float64    `json:"max" yaml:"max"`
	Score ScoreValue `json:"score" yaml:"score"`
	Label string     `json:"label" yaml:"label"`
}

// Unbounded reports whether the mapping's upper bound is open-ended.
func (m ScoreMapping) Unbounded() bool {
	return math.IsInf(m.Max, 1)
}

// Criterion is one scored dimension of decentralization, with an ordered,
// contiguous table of raw-value ranges.
type Criterion struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Category    Category       `json:"category" yaml:"category"`
	Mappings    []ScoreMapping `json:"mappings" yaml:"mappings"`
	Sources     []string       `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// RawValues maps criterion IDs to measured values. A nil value (or absent
// key) means the criterion is not applicable to the project.
type RawValues map[string]*float64

// Float is a convenience for building RawValues literals.
func Float(v float64) *float64 { return &v }

// CriterionScore is the resolved score for one criterion. A nil Score means
// N/A: the criterion is excluded from its category average, never counted
// as zero.
type CriterionScore struct {
	CriterionID string   `json:"criterion_id"`
	Score       *float64 `json:"score"`
}

// ProjectScores is the complete scoring output for one project.
// Immutable once computed.
type ProjectScores struct {
	CriterionScores    []CriterionScore `json:"criterion_scores"`
	ChainScore         float64          `json:"chain_score"`
	ControlScore       float64          `json:"control_score"`
	FairnessScore      float64          `json:"fairness_score"`
	TotalScore         float64          `json:"total_score"`
	UncappedTotalScore float64          `json:"uncapped_total_score"`
	KillSwitchActive   bool             `json:"kill_switch_active"`

	// RawTotal is the unrounded, uncapped weighted total. Display uses
	// TotalScore; ordering uses RawTotal so one-decimal ties stay stable.
	RawTotal float64 `json:"-"`
}

// Weights are the category weights applied to the total score.
type Weights struct {
	Chain    float64 `yaml:"chain"`
	Control  float64 `yaml:"control"`
	Fairness float64 `yaml:"fairness"`
}

// DefaultWeights returns the published methodology weights.
func DefaultWeights() Weights {
	return Weights{Chain: 0.4, Control: 0.4, Fairness: 0.2}
}

// Validate checks that the weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	if w.Chain < 0 || w.Control < 0 || w.Fairness < 0 {
		return fmt.Errorf("weights must be non-negative")
	}
	if math.Abs(w.Chain+w.Control+w.Fairness-1.0) > 1e-9 {
		return fmt.Errorf("weights must sum to 1, got %g", w.Chain+w.Control+w.Fairness)
	}
	return nil
}
