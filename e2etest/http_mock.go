package e2etest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// MockServer imitates the Birdeye public API
type MockServer struct {
	server      *httptest.Server
	APIKey      string
	BirdeyeMock *BirdeyeMock

	mu   sync.RWMutex
	hits map[string]int
}

// BirdeyeMock contains mock data for the Birdeye API
type BirdeyeMock struct {
	// Prices maps address to the JSON object returned inside multi_price data
	Prices map[string]string
	// TokenListData is the JSON body served by the tokenlist endpoint
	TokenListData string
	// Existing lists addresses exists_token reports as present
	Existing map[string]bool
	// FailPaths forces a status code for an endpoint path
	FailPaths map[string]int
	// ExistsBody replaces the generated exists_token body when set
	ExistsBody string
}

// NewMockServer creates and returns a new mock server
func NewMockServer(apiKey string) *MockServer {
	ms := &MockServer{
		APIKey: apiKey,
		BirdeyeMock: &BirdeyeMock{
			Prices:        defaultPrices(),
			TokenListData: defaultTokenListData(),
			Existing:      defaultExisting(),
			FailPaths:     make(map[string]int),
		},
		hits: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ms.handleRequest)
	ms.server = httptest.NewServer(mux)

	return ms
}

// GetURL returns the base URL of the mock server
func (ms *MockServer) GetURL() string {
	return ms.server.URL
}

// Close closes the mock server
func (ms *MockServer) Close() {
	if ms.server != nil {
		ms.server.Close()
	}
}

// SetFailure makes the endpoint path answer with status
func (ms *MockServer) SetFailure(path string, status int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.BirdeyeMock.FailPaths[path] = status
}

// SetExistsBody serves body verbatim from exists_token
func (ms *MockServer) SetExistsBody(body string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.BirdeyeMock.ExistsBody = body
}

// Hits returns how many requests reached the endpoint path
func (ms *MockServer) Hits(path string) int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.hits[path]
}

// handleRequest processes incoming requests and returns mock data
func (ms *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	ms.hits[r.URL.Path]++
	failStatus, fail := ms.BirdeyeMock.FailPaths[r.URL.Path]
	ms.mu.Unlock()

	if r.Header.Get("X-API-KEY") != ms.APIKey {
		writeJSON(w, http.StatusUnauthorized, `{"success": false, "message": "Unauthorized"}`)
		return
	}
	if r.Header.Get("x-chain") != "solana" {
		writeJSON(w, http.StatusBadRequest, `{"success": false, "message": "unsupported chain"}`)
		return
	}
	if fail {
		writeJSON(w, failStatus, `{"success": false, "message": "forced failure"}`)
		return
	}

	ms.mu.RLock()
	defer ms.mu.RUnlock()

	switch r.URL.Path {
	case "/public/multi_price":
		ms.handleMultiPrice(w, r)
	case "/public/tokenlist":
		writeJSON(w, http.StatusOK, ms.BirdeyeMock.TokenListData)
	case "/public/exists_token":
		if ms.BirdeyeMock.ExistsBody != "" {
			writeJSON(w, http.StatusOK, ms.BirdeyeMock.ExistsBody)
			return
		}
		exists := ms.BirdeyeMock.Existing[r.URL.Query().Get("address")]
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{"data": {"exists": %t}, "success": true}`, exists))
	default:
		writeJSON(w, http.StatusNotFound, `{"success": false, "message": "Not found"}`)
	}
}

func (ms *MockServer) handleMultiPrice(w http.ResponseWriter, r *http.Request) {
	addresses := strings.Split(r.URL.Query().Get("list_address"), ",")

	entries := make([]string, 0, len(addresses))
	for _, address := range addresses {
		if price, ok := ms.BirdeyeMock.Prices[address]; ok {
			entries = append(entries, fmt.Sprintf("%q: %s", address, price))
		}
	}

	writeJSON(w, http.StatusOK, fmt.Sprintf(`{"data": {%s}, "success": true}`, strings.Join(entries, ",")))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

const (
	WSOLAddress = "So11111111111111111111111111111111111111112"
	USDCAddress = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	BONKAddress = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
	// JUPAddress exists on-chain but is not part of the default listing
	JUPAddress = "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"
)

func defaultPrices() map[string]string {
	return map[string]string{
		WSOLAddress: `{"value": 170.31, "updateUnixTime": 1710000000, "priceChange24h": -7.07}`,
		USDCAddress: `{"value": 1.0001, "updateUnixTime": 1710000000, "priceChange24h": 0.01}`,
		JUPAddress:  `{"value": 1.12, "updateUnixTime": 1710000000, "priceChange24h": 2.5}`,
	}
}

func defaultExisting() map[string]bool {
	return map[string]bool{
		WSOLAddress: true,
		USDCAddress: true,
		BONKAddress: true,
		JUPAddress:  true,
	}
}

func defaultTokenListData() string {
	return `{
  "data": {
    "updateUnixTime": 1710000000,
    "tokens": [
      {"address": "So11111111111111111111111111111111111111112", "decimals": 9, "liquidity": 5000000, "mc": 75000000000, "name": "Wrapped SOL", "symbol": "SOL", "v24hChangePercent": -1.5, "v24hUSD": 800000000},
      {"address": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", "decimals": 6, "liquidity": 120000000.55, "mc": 25000000000, "name": "USD Coin", "symbol": "USDC", "v24hChangePercent": 3.2, "v24hUSD": 900000000.12},
      {"address": "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", "decimals": 5, "liquidity": 8000000.1, "mc": 1500000000, "name": "Bonk", "symbol": "Bonk", "v24hUSD": 30000000.3}
    ],
    "total": 3
  },
  "success": true
}`
}
