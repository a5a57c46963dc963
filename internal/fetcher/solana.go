package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/chainscope/chainscope/pkg/metrics"
)

const defaultSolanaRPC = "https://api.mainnet-beta.solana.com"

const lamportsPerSol = 1e9

// Solana fetches validator metrics from a Solana JSON-RPC node.
type Solana struct {
	client *resty.Client
	rpcURL string
}

// NewSolana creates a Solana fetcher. An empty rpcURL uses the public
// mainnet endpoint.
func NewSolana(client *resty.Client, rpcURL string) *Solana {
	if rpcURL == "" {
		rpcURL = defaultSolanaRPC
	}
	return &Solana{client: client, rpcURL: rpcURL}
}

func (f *Solana) ProjectID() string { return "solana" }

func (f *Solana) Fetch(ctx context.Context) (metrics.MetricsData, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(`{"jsonrpc":"2.0","id":1,"method":"getVoteAccounts"}`).
		Post(f.rpcURL)
	if err != nil {
		return metrics.MetricsData{}, fmt.Errorf("solana getVoteAccounts: %w", err)
	}
	if resp.IsError() {
		return metrics.MetricsData{}, fmt.Errorf("solana getVoteAccounts: status %d", resp.StatusCode())
	}

	current := gjson.GetBytes(resp.Body(), "result.current")
	if !current.Exists() {
		return metrics.MetricsData{}, fmt.Errorf("solana getVoteAccounts: missing result.current")
	}

	var stakes []float64
	current.ForEach(func(_, v gjson.Result) bool {
		stakes = append(stakes, v.Get("activatedStake").Float()/lamportsPerSol)
		return true
	})

	var total float64
	for _, s := range stakes {
		total += s
	}

	return metrics.MetricsData{
		LastUpdated: time.Now().UTC(),
		Source:      f.rpcURL,
		FetchStatus: metrics.FetchSuccess,
		Metrics: metrics.NewValidator(metrics.ValidatorMetrics{
			ActiveValidators:    len(stakes),
			TotalStaked:         total,
			NakamotoCoefficient: nakamoto(stakes, 1.0/3.0),
			Top5Concentration:   topShare(stakes, 5),
			Top10Concentration:  topShare(stakes, 10),
		}),
	}, nil
}
