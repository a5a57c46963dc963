// Package metrics defines the externally-fetched network metric snapshots
// shared by the fetchers, the live store, the archive, and the API.
package metrics

import (
	"encoding/json"
	"fmt"
	"time"
)

// FetchStatus records how completely a fetcher run succeeded.
type FetchStatus string

const (
	FetchSuccess FetchStatus = "success"
	FetchPartial FetchStatus = "partial"
	FetchFailed  FetchStatus = "failed"
)

// Kind discriminates the metric payload shape by chain family.
type Kind string

const (
	KindValidator Kind = "validator" // proof-of-stake networks
	KindMiner     Kind = "miner"     // proof-of-work networks
	KindGeneric   Kind = "generic"   // unmodeled chains
)

// ValidatorMetrics are the measurements collected for proof-of-stake chains.
type ValidatorMetrics struct {
	ActiveValidators     int     `json:"activeValidators"`
	TotalStaked          float64 `json:"totalStaked"`
	NakamotoCoefficient  int     `json:"nakamotoCoefficient"`
	Top5Concentration    float64 `json:"top5Concentration"`
	Top10Concentration   float64 `json:"top10Concentration"`
	StakingParticipation float64 `json:"stakingParticipation,omitempty"`
}

// MinerMetrics are the measurements collected for proof-of-work chains.
type MinerMetrics struct {
	ActivePools        int     `json:"activePools"`
	NetworkHashrate    float64 `json:"networkHashrate"`
	Top5Concentration  float64 `json:"top5Concentration"`
	Top10Concentration float64 `json:"top10Concentration"`
}

// Metrics is a tagged union over the per-family payload shapes. Exactly one
// of the variant fields is set, matching Kind.
type Metrics struct {
	Kind      Kind
	Validator *ValidatorMetrics
	Miner     *MinerMetrics
	Generic   map[string]any
}

// NewValidator wraps a ValidatorMetrics payload.
func NewValidator(v ValidatorMetrics) Metrics {
	return Metrics{Kind: KindValidator, Validator: &v}
}

// NewMiner wraps a MinerMetrics payload.
func NewMiner(m MinerMetrics) Metrics {
	return Metrics{Kind: KindMiner, Miner: &m}
}

// NewGeneric wraps an untyped payload for chains without a modeled shape.
func NewGeneric(fields map[string]any) Metrics {
	return Metrics{Kind: KindGeneric, Generic: fields}
}

type metricsEnvelope struct {
	Kind      Kind              `json:"kind"`
	Validator *ValidatorMetrics `json:"validator,omitempty"`
	Miner     *MinerMetrics     `json:"miner,omitempty"`
	Generic   map[string]any    `json:"generic,omitempty"`
}

func (m Metrics) MarshalJSON() ([]byte, error) {
	return json.Marshal(metricsEnvelope{
		Kind:      m.Kind,
		Validator: m.Validator,
		Miner:     m.Miner,
		Generic:   m.Generic,
	})
}

func (m *Metrics) UnmarshalJSON(data []byte) error {
	var env metricsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	switch env.Kind {
	case KindValidator, KindMiner, KindGeneric:
	case "":
		// Legacy snapshots carried a bare field map.
		var fields map[string]any
		if err := json.Unmarshal(data, &fields); err != nil {
			return fmt.Errorf("metrics payload: %w", err)
		}
		*m = NewGeneric(fields)
		return nil
	default:
		return fmt.Errorf("unknown metrics kind %q", env.Kind)
	}
	m.Kind = env.Kind
	m.Validator = env.Validator
	m.Miner = env.Miner
	m.Generic = env.Generic
	return nil
}

// MetricsData is one daily snapshot of externally-sourced network metrics
// for a single project.
type MetricsData struct {
	LastUpdated time.Time   `json:"lastUpdated"`
	Source      string      `json:"source,omitempty"`
	FetchStatus FetchStatus `json:"fetchStatus"`
	Metrics     Metrics     `json:"metrics"`
}
