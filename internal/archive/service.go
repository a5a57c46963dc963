package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/chainscope/chainscope/internal/store"
	"github.com/chainscope/chainscope/pkg/metrics"
	"github.com/chainscope/chainscope/pkg/projects"
)

// DateFormat is the snapshot partition key date layout.
const DateFormat = "2006-01-02"

// sparklineConcurrency bounds parallel snapshot reads during a batch.
const sparklineConcurrency = 8

// Snapshot is one archived project-day document.
type Snapshot struct {
	ProjectID  string              `json:"projectId"`
	Date       string              `json:"date"`
	TotalScore float64             `json:"totalScore"`
	Metrics    metrics.MetricsData `json:"metrics"`
}

// RunRecord summarizes one archival run.
type RunRecord struct {
	RunID    string   `json:"runId"`
	Date     string   `json:"date"`
	Archived int      `json:"archived"`
	Keys     []string `json:"keys"`
}

// Sparklines is the batch trend view: one ordered score series per project
// over the requested date window, oldest day first.
type Sparklines struct {
	Dates    []string             `json:"dates"`
	Projects map[string][]float64 `json:"projects"`
	Count    int                  `json:"count"`
}

// Service archives live metrics into dated object storage and reads them
// back. It holds no cross-invocation state: concurrent archival runs on the
// same day are last-write-wins per project key, which is acceptable because
// the job runs once daily under external cron control.
type Service struct {
	objects  ObjectStore
	live     store.Store
	registry *projects.Registry
	log      zerolog.Logger
	now      func() time.Time
}

// NewService creates an archival Service.
func NewService(objects ObjectStore, live store.Store, registry *projects.Registry, log zerolog.Logger) *Service {
	return &Service{
		objects:  objects,
		live:     live,
		registry: registry,
		log:      log,
		now:      time.Now,
	}
}

// ArchiveToday snapshots every project's current live metrics under today's
// date key. Re-running the same day overwrites rather than duplicates.
// Projects without live metrics are skipped, not failed.
func (s *Service) ArchiveToday(ctx context.Context) (RunRecord, error) {
	date := s.now().UTC().Format(DateFormat)
	record := RunRecord{RunID: uuid.NewString(), Date: date}

	live, err := s.live.ListMetrics(ctx)
	if err != nil {
		return record, fmt.Errorf("list live metrics: %w", err)
	}

	for _, p := range s.registry.All() {
		data, ok := live[p.ID]
		if !ok {
			s.log.Debug().Str("project", p.ID).Msg("no live metrics, skipping")
			continue
		}
		snap := Snapshot{
			ProjectID:  p.ID,
			Date:       date,
			TotalScore: p.Scores.TotalScore,
			Metrics:    data,
		}
		payload, err := json.Marshal(snap)
		if err != nil {
			return record, fmt.Errorf("marshal snapshot %s: %w", p.ID, err)
		}
		key := snapshotKey(p.ID, date)
		if err := s.objects.Put(ctx, key, payload); err != nil {
			return record, fmt.Errorf("archive %s: %w", p.ID, err)
		}
		record.Archived++
		record.Keys = append(record.Keys, key)
	}

	s.log.Info().Str("run_id", record.RunID).Str("date", date).
		Int("archived", record.Archived).Msg("archival run complete")
	return record, nil
}

// ReadSnapshot loads one project-day snapshot. ErrNotFound for absent days.
func (s *Service) ReadSnapshot(ctx context.Context, projectID, date string) (Snapshot, error) {
	data, err := s.objects.Get(ctx, snapshotKey(projectID, date))
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal snapshot %s/%s: %w", projectID, date, err)
	}
	return snap, nil
}

// ListDates returns all archived dates for a project, most recent first.
func (s *Service) ListDates(ctx context.Context, projectID string) ([]string, error) {
	keys, err := s.objects.List(ctx, projectID+"/")
	if err != nil {
		return nil, err
	}
	var dates []string
	for _, key := range keys {
		if d := dateFromKey(projectID, key); d != "" {
			dates = append(dates, d)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

// SparklineWindow returns the last n calendar dates ending today, oldest
// first.
func (s *Service) SparklineWindow(n int) []string {
	today := s.now().UTC()
	dates := make([]string, n)
	for i := 0; i < n; i++ {
		dates[i] = today.AddDate(0, 0, i-n+1).Format(DateFormat)
	}
	return dates
}

// BuildSparklines reads up to lastNDays of snapshots per project in
// parallel and extracts each day's total score. Days that fail to read are
// silently skipped; a project appears in the result only with at least two
// valid points, since fewer cannot render a trend. If projectIDs is empty,
// all registered projects are considered.
func (s *Service) BuildSparklines(ctx context.Context, projectIDs []string, lastNDays int) (Sparklines, error) {
	if len(projectIDs) == 0 {
		projectIDs = s.registry.IDs()
	}
	dates := s.SparklineWindow(lastNDays)

	// One slot per (project, day); nil marks a skipped read.
	points := make([]*float64, len(projectIDs)*len(dates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sparklineConcurrency)
	for pi, id := range projectIDs {
		for di, date := range dates {
			idx := pi*len(dates) + di
			id, date := id, date
			g.Go(func() error {
				snap, err := s.ReadSnapshot(gctx, id, date)
				if err != nil {
					// Missing or unreadable days are skipped, never
					// surfaced as partial failure.
					return nil
				}
				score := snap.TotalScore
				points[idx] = &score
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Sparklines{}, err
	}

	result := Sparklines{Dates: dates, Projects: make(map[string][]float64)}
	for pi, id := range projectIDs {
		var series []float64
		for di := range dates {
			if p := points[pi*len(dates)+di]; p != nil {
				series = append(series, *p)
			}
		}
		if len(series) >= 2 {
			result.Projects[id] = series
		}
	}
	result.Count = len(result.Projects)
	return result, nil
}
