package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/chainscope/chainscope/pkg/metrics"
)

const defaultCosmosLCD = "https://cosmos-rest.publicnode.com"

const uatomPerAtom = 1e6

// Cosmos fetches the bonded validator set from a Cosmos Hub LCD endpoint.
type Cosmos struct {
	client *resty.Client
	lcdURL string
}

// NewCosmos creates a Cosmos Hub fetcher. An empty lcdURL uses a public
// LCD endpoint.
func NewCosmos(client *resty.Client, lcdURL string) *Cosmos {
	if lcdURL == "" {
		lcdURL = defaultCosmosLCD
	}
	return &Cosmos{client: client, lcdURL: lcdURL}
}

func (f *Cosmos) ProjectID() string { return "cosmos" }

func (f *Cosmos) Fetch(ctx context.Context) (metrics.MetricsData, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("status", "BOND_STATUS_BONDED").
		SetQueryParam("pagination.limit", "500").
		Get(f.lcdURL + "/cosmos/staking/v1beta1/validators")
	if err != nil {
		return metrics.MetricsData{}, fmt.Errorf("cosmos validators: %w", err)
	}
	if resp.IsError() {
		return metrics.MetricsData{}, fmt.Errorf("cosmos validators: status %d", resp.StatusCode())
	}

	validators := gjson.GetBytes(resp.Body(), "validators")
	if !validators.Exists() {
		return metrics.MetricsData{}, fmt.Errorf("cosmos validators: missing validators array")
	}

	var stakes []float64
	validators.ForEach(func(_, v gjson.Result) bool {
		stakes = append(stakes, v.Get("tokens").Float()/uatomPerAtom)
		return true
	})

	var total float64
	for _, s := range stakes {
		total += s
	}

	return metrics.MetricsData{
		LastUpdated: time.Now().UTC(),
		Source:      f.lcdURL,
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
