package store

import (
	"context"
	"sync"

	"github.com/chainscope/chainscope/pkg/metrics"
)

// MemoryStore is an in-process Store for tests and local development.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]metrics.MetricsData
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]metrics.MetricsData)}
}

func (s *MemoryStore) PutMetrics(ctx context.Context, projectID string, data metrics.MetricsData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[projectID] = data
	return nil
}

func (s *MemoryStore) GetMetrics(ctx context.Context, projectID string) (metrics.MetricsData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[projectID]
	if !ok {
		return metrics.MetricsData{}, ErrNotFound
	}
	return data, nil
}

func (s *MemoryStore) ListMetrics(ctx context.Context) (map[string]metrics.MetricsData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]metrics.MetricsData, len(s.data))
	for id, data := range s.data {
		out[id] = data
	}
	return out, nil
}
