// Package projects holds the static registry of scored networks. Projects
// are constructed once from a raw-value table and are immutable afterwards:
// score changes ship as redeployments, never as runtime mutation.
package projects

import (
	"fmt"
	"sort"

	"github.com/chainscope/chainscope/pkg/scoring"
)

// Definition is the hand-maintained input record for one network.
type Definition struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name"`
	Symbol        string            `yaml:"symbol"`
	Category      string            `yaml:"category"`       // layer1, layer2, ...
	ConsensusType string            `yaml:"consensus_type"` // pow, pos, dpos, ...
	Description   string            `yaml:"description"`
	RawValues     scoring.RawValues `yaml:"raw_values"`
	LastUpdated   string            `yaml:"last_updated"` // YYYY-MM-DD of the last manual review
	Sources       []string          `yaml:"sources"`
	Notes         string            `yaml:"notes,omitempty"`
}

// Project is a scored network record.
type Project struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Symbol        string                `json:"symbol"`
	Category      string                `json:"category"`
	ConsensusType string                `json:"consensus_type"`
	Description   string                `json:"description"`
	Scores        scoring.ProjectScores `json:"scores"`
	LastUpdated   string                `json:"last_updated"`
	Sources       []string              `json:"sources,omitempty"`
	Notes         string                `json:"notes,omitempty"`
}

// Registry is the ordered, immutable set of scored projects.
type Registry struct {
	ordered []Project
	byID    map[string]Project
}

// NewRegistry scores every definition with the engine and freezes the
// result. Ordering is by unrounded total score descending; ties keep the
// definitions' insertion order.
func NewRegistry(engine *scoring.Engine, defs []Definition) (*Registry, error) {
	r := &Registry{byID: make(map[string]Project, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("project %q: missing id", d.Name)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("project %s: duplicate id", d.ID)
		}
		p := Project{
			ID:            d.ID,
			Name:          d.Name,
			Symbol:        d.Symbol,
			Category:      d.Category,
			ConsensusType: d.ConsensusType,
			Description:   d.Description,
			Scores:        engine.Score(d.RawValues),
			LastUpdated:   d.LastUpdated,
			Sources:       d.Sources,
			Notes:         d.Notes,
		}
		r.ordered = append(r.ordered, p)
		r.byID[p.ID] = p
	}
	sort.SliceStable(r.ordered, func(i, j int) bool {
		return sortKey(r.ordered[i]) > sortKey(r.ordered[j])
	})
	return r, nil
}

// sortKey orders by the unrounded total so one-decimal ties stay stable,
// with the kill-switch cap applied: a capped project ranks where it
// displays, not where its uncapped components would put it.
func sortKey(p Project) float64 {
	if p.Scores.KillSwitchActive && p.Scores.RawTotal > 1.0 {
		return 1.0
	}
	return p.Scores.RawTotal
}

// All returns the projects ordered by total score descending.
func (r *Registry) All() []Project {
	out := make([]Project, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// ByID returns the project with the given ID.
func (r *Registry) ByID(id string) (Project, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// IDs returns the project IDs in score order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ordered))
	for i, p := range r.ordered {
		ids[i] = p.ID
	}
	return ids
}

// Len returns the number of registered projects.
func (r *Registry) Len() int { return len(r.ordered) }
