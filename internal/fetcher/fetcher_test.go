package fetcher

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/chainscope/chainscope/internal/store"
	"github.com/chainscope/chainscope/pkg/metrics"
)

func TestTopShare(t *testing.T) {
	stakes := []float64{50, 30, 10, 5, 3, 2}
	if got := topShare(stakes, 2); got != 80 {
		t.Errorf("topShare(2) = %g, want 80", got)
	}
	if got := topShare(stakes, 10); got != 100 {
		t.Errorf("topShare(10) = %g, want 100", got)
	}
	if got := topShare(nil, 5); got != 0 {
		t.Errorf("topShare(nil) = %g, want 0", got)
	}
	// Order must not matter.
	if got := topShare([]float64{2, 50, 3, 30, 5, 10}, 2); got != 80 {
		t.Errorf("topShare(unsorted) = %g, want 80", got)
	}
}

func TestNakamoto(t *testing.T) {
	// Total 100; one-third threshold crossed by the top two (50+30 > 33.3).
	stakes := []float64{10, 50, 30, 5, 3, 2}
	if got := nakamoto(stakes, 1.0/3.0); got != 1 {
		t.Errorf("nakamoto = %d, want 1 (50 > 33.3)", got)
	}
	if got := nakamoto([]float64{25, 25, 25, 25}, 1.0/3.0); got != 2 {
		t.Errorf("nakamoto(equal) = %d, want 2", got)
	}
	if got := nakamoto(nil, 1.0/3.0); got != 0 {
		t.Errorf("nakamoto(nil) = %d, want 0", got)
	}
}

const solanaVoteAccounts = `{"jsonrpc":"2.0","result":{"current":[
	{"votePubkey":"a","activatedStake":50000000000},
	{"votePubkey":"b","activatedStake":30000000000},
	{"votePubkey":"c","activatedStake":20000000000}
]},"id":1}`

func TestSolanaFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Write([]byte(solanaVoteAccounts))
	}))
	defer srv.Close()

	f := NewSolana(NewClient(), srv.URL)
	data, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if data.FetchStatus != metrics.FetchSuccess {
		t.Errorf("FetchStatus = %s, want success", data.FetchStatus)
	}
	v := data.Metrics.Validator
	if v == nil {
		t.Fatal("expected validator metrics")
	}
	if v.ActiveValidators != 3 {
		t.Errorf("ActiveValidators = %d, want 3", v.ActiveValidators)
	}
	if v.TotalStaked != 100 {
		t.Errorf("TotalStaked = %g, want 100 SOL", v.TotalStaked)
	}
	if v.NakamotoCoefficient != 1 {
		t.Errorf("NakamotoCoefficient = %d, want 1", v.NakamotoCoefficient)
	}
	if math.Abs(v.Top5Concentration-100) > 1e-9 {
		t.Errorf("Top5Concentration = %g, want 100", v.Top5Concentration)
	}
}

func TestSolanaFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewSolana(NewClient().SetRetryCount(0), srv.URL)
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Error("Fetch succeeded against a failing endpoint")
	}
}

const cosmosValidators = `{"validators":[
	{"tokens":"4000000"},
	{"tokens":"3000000"},
	{"tokens":"2000000"},
	{"tokens":"1000000"}
]}`

func TestCosmosFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cosmos/staking/v1beta1/validators" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(cosmosValidators))
	}))
	defer srv.Close()

	f := NewCosmos(NewClient(), srv.URL)
	data, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	v := data.Metrics.Validator
	if v == nil {
		t.Fatal("expected validator metrics")
	}
	if v.ActiveValidators != 4 {
		t.Errorf("ActiveValidators = %d, want 4", v.ActiveValidators)
	}
	if v.TotalStaked != 10 {
		t.Errorf("TotalStaked = %g, want 10 ATOM", v.TotalStaked)
	}
	// 4/10 > 1/3 already.
	if v.NakamotoCoefficient != 1 {
		t.Errorf("NakamotoCoefficient = %d, want 1", v.NakamotoCoefficient)
	}
}

func TestEthereumFetchPartialOnPoolsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/epoch/latest":
			w.Write([]byte(`{"data":{"validatorscount":1000000,"totalvalidatorbalance":32000000000000000}}`))
		default:
			http.Error(w, "unavailable", http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	f := NewEthereum(NewClient().SetRetryCount(0), srv.URL)
	data, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if data.FetchStatus != metrics.FetchPartial {
		t.Errorf("FetchStatus = %s, want partial when the pools endpoint is down", data.FetchStatus)
	}
	v := data.Metrics.Validator
	if v == nil || v.ActiveValidators != 1000000 {
		t.Errorf("validator metrics = %+v, want count from epoch endpoint", v)
	}
}

func TestRunAllStoresFailedRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	st := store.NewMemoryStore()
	client := NewClient().SetRetryCount(0)
	sum := RunAll(context.Background(), st, zerolog.Nop(), NewSolana(client, srv.URL))

	if sum.Failed != 1 {
		t.Errorf("Failed = %d, want 1", sum.Failed)
	}
	data, err := st.GetMetrics(context.Background(), "solana")
	if err != nil {
		t.Fatalf("GetMetrics: %v", err)
	}
	if data.FetchStatus != metrics.FetchFailed {
		t.Errorf("FetchStatus = %s, want failed record stored", data.FetchStatus)
	}
}
