package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chainscope/chainscope/pkg/metrics"
)

// PostgresStore implements Store on a single live_metrics table, one row
// per project, payload stored as JSONB.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Store backed by the given database.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// PutMetrics upserts the project's live metrics. The write is a single
// atomic row replacement.
func (s *PostgresStore) PutMetrics(ctx context.Context, projectID string, data metrics.MetricsData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal metrics for %s: %w", projectID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO live_metrics (project_id, payload, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (project_id) DO UPDATE
		   SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		projectID, payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("put metrics for %s: %w", projectID, err)
	}
	return nil
}

// GetMetrics loads one project's live metrics.
func (s *PostgresStore) GetMetrics(ctx context.Context, projectID string) (metrics.MetricsData, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM live_metrics WHERE project_id = $1`, projectID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return metrics.MetricsData{}, ErrNotFound
	}
	if err != nil {
		return metrics.MetricsData{}, fmt.Errorf("get metrics for %s: %w", projectID, err)
	}
	var data metrics.MetricsData
	if err := json.Unmarshal(payload, &data); err != nil {
		return metrics.MetricsData{}, fmt.Errorf("unmarshal metrics for %s: %w", projectID, err)
	}
	return data, nil
}

// ListMetrics loads the live metrics of every project.
func (s *PostgresStore) ListMetrics(ctx context.Context) (map[string]metrics.MetricsData, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT project_id, payload FROM live_metrics`)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	defer rows.Close()

	out := make(map[string]metrics.MetricsData)
	for rows.Next() {
		var (
			id      string
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan metrics row: %w", err)
		}
		var data metrics.MetricsData
		if err := json.Unmarshal(payload, &data); err != nil {
			return nil, fmt.Errorf("unmarshal metrics for %s: %w", id, err)
		}
		out[id] = data
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metrics rows: %w", err)
	}
	return out, nil
}
