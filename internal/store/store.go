// Package store persists the live per-project metric snapshots, the
// key-value layer the API and the archival job read from.
package store

import (
	"context"
	"errors"

	"github.com/chainscope/chainscope/pkg/metrics"
)

// ErrNotFound is returned when no live metrics exist for a project.
var ErrNotFound = errors.New("metrics not found")

// Store is the live-metrics key-value interface. Writes replace the whole
// record for a project; there are no partial updates.
type Store interface {
	PutMetrics(ctx context.Context, projectID string, data metrics.MetricsData) error
	GetMetrics(ctx context.Context, projectID string) (metrics.MetricsData, error)
	ListMetrics(ctx context.Context) (map[string]metrics.MetricsData, error)
}
