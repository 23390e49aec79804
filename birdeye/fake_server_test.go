package birdeye

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bc "github.com/status-im/solana-price-feed/birdeye_common"
	"github.com/status-im/solana-price-feed/config"
)

const (
	testAPIKey = "test-api-key"

	wsolAddress = "So11111111111111111111111111111111111111112"
	usdcAddress = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	usdtAddress = "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCeqBenwNYB"
	bonkAddress = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
)

type fakeResponse struct {
	status int
	body   string
	delay  time.Duration
}

// fakeBirdeye serves canned responses per endpoint path and records requests
type fakeBirdeye struct {
	t      *testing.T
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]fakeResponse
	hits      map[string]int
	requests  []*http.Request
}

func newFakeBirdeye(t *testing.T) *fakeBirdeye {
	f := &fakeBirdeye{
		t:         t,
		responses: make(map[string]fakeResponse),
		hits:      make(map[string]int),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeBirdeye) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.URL.Path]++
	f.requests = append(f.requests, r.Clone(r.Context()))
	resp, ok := f.responses[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if resp.delay > 0 {
		select {
		case <-time.After(resp.delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func (f *fakeBirdeye) respond(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = fakeResponse{status: status, body: body}
}

// respondAfter holds the response back for delay unless the client goes away first
func (f *fakeBirdeye) respondAfter(path string, delay time.Duration, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = fakeResponse{status: status, body: body, delay: delay}
}

func (f *fakeBirdeye) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeBirdeye) totalHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.hits {
		total += n
	}
	return total
}

func (f *fakeBirdeye) lastRequest(path string) *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].URL.Path == path {
			return f.requests[i]
		}
	}
	return nil
}

func (f *fakeBirdeye) newClient(opts ...Option) *Client {
	f.t.Helper()

	cfg := config.DefaultBirdeyeConfig()
	cfg.BaseURL = f.server.URL

	client, err := NewClient(cfg, config.Credential{APIKey: testAPIKey}, opts...)
	require.NoError(f.t, err)
	return client
}

const defaultMultiPriceBody = `{
  "data": {
    "So11111111111111111111111111111111111111112": {"value": 170.31, "updateUnixTime": 1710000000, "priceChange24h": -7.07},
    "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": {"value": 1.0001, "updateUnixTime": 1710000000, "priceChange24h": 0.01}
  },
  "success": true
}`

const defaultTokenListBody = `{
  "data": {
    "updateUnixTime": 1710000000,
    "updateTime": "2024-03-09T16:00:00",
    "tokens": [
      {"address": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", "decimals": 6, "liquidity": 120000000.55, "logoURI": "https://example.com/usdc.png", "mc": 25000000000, "name": "USD Coin", "symbol": "USDC", "v24hChangePercent": 3.2, "v24hUSD": 900000000.12, "lastTradeUnixTime": 1710000000},
      {"address": "So11111111111111111111111111111111111111112", "decimals": 9, "liquidity": 5000000, "logoURI": "https://example.com/sol.png", "mc": 75000000000, "name": "Wrapped SOL", "symbol": "SOL", "v24hChangePercent": -1.5, "v24hUSD": 800000000, "lastTradeUnixTime": 1710000001},
      {"address": "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", "decimals": 5, "liquidity": 8000000.1, "mc": 1500000000, "name": "Bonk", "symbol": "Bonk", "v24hChangePercent": null, "v24hUSD": 30000000.3, "lastTradeUnixTime": 1710000002}
    ],
    "total": 3
  },
  "success": true
}`

func (f *fakeBirdeye) respondDefaults() {
	f.respond(bc.MultiPricePath, http.StatusOK, defaultMultiPriceBody)
	f.respond(bc.TokenListPath, http.StatusOK, defaultTokenListBody)
	f.respond(bc.ExistsTokenPath, http.StatusOK, `{"data": {"exists": true}, "success": true}`)
}
