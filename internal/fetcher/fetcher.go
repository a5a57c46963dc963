// Package fetcher collects live network metrics from public chain APIs.
// Each fetcher is independent: one chain's outage degrades that chain's
// fetchStatus, never the run as a whole.
package fetcher

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/chainscope/chainscope/internal/store"
	"github.com/chainscope/chainscope/pkg/metrics"
)

// Fetcher collects one project's current network metrics.
type Fetcher interface {
	ProjectID() string
	Fetch(ctx context.Context) (metrics.MetricsData, error)
}

// NewClient returns the shared HTTP client used by all fetchers.
func NewClient() *resty.Client {
	return resty.New().
		SetTimeout(20 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second).
		SetHeader("User-Agent", "chainscope-fetcher")
}

// Summary reports the outcome of one fetch run.
type Summary struct {
	Succeeded int
	Partial   int
	Failed    int
}

// RunAll runs every fetcher and stores whatever it got. A fetcher error is
// recorded as a failed snapshot for that project; it never aborts the run.
func RunAll(ctx context.Context, st store.Store, log zerolog.Logger, fetchers ...Fetcher) Summary {
	var sum Summary
	for _, f := range fetchers {
		data, err := f.Fetch(ctx)
		if err != nil {
			log.Warn().Err(err).Str("project", f.ProjectID()).Msg("fetch failed")
			data = metrics.MetricsData{
				LastUpdated: time.Now().UTC(),
				FetchStatus: metrics.FetchFailed,
				Metrics:     metrics.NewGeneric(nil),
			}
		}
		switch data.FetchStatus {
		case metrics.FetchSuccess:
			sum.Succeeded++
		case metrics.FetchPartial:
			sum.Partial++
		default:
			sum.Failed++
		}
		if err := st.PutMetrics(ctx, f.ProjectID(), data); err != nil {
			log.Error().Err(err).Str("project", f.ProjectID()).Msg("store metrics failed")
			continue
		}
		log.Info().Str("project", f.ProjectID()).
			Str("status", string(data.FetchStatus)).Msg("metrics stored")
	}
	return sum
}

// Defaults returns the fetchers for every chain with a live integration.
func Defaults(client *resty.Client) []Fetcher {
	return []Fetcher{
		NewEthereum(client, ""),
		NewSolana(client, ""),
		NewCosmos(client, ""),
	}
}
