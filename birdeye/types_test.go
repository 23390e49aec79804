package birdeye

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenOverview_UnmarshalJSON(t *testing.T) {
	data := []byte(`{
  "address": "So11111111111111111111111111111111111111112",
  "symbol": "SOL",
  "decimals": 9,
  "liquidity": 5000000.000000001,
  "mc": null,
  "v24hUSD": 1e9,
  "extensions": {"coingeckoId": "solana", "rank": 5},
  "tags": ["native", 1.25],
  "verified": true
}`)

	var token TokenOverview
	require.NoError(t, json.Unmarshal(data, &token))

	assert.Equal(t, wsolAddress, token.Address)
	assert.Equal(t, 9, token.Decimals)
	assert.Equal(t, "5000000.000000001", token.Liquidity.Decimal.String())
	assert.False(t, token.MarketCap.Valid)
	assert.True(t, token.V24hUSD.Decimal.Equal(decimal.NewFromInt(1000000000)))
	assert.False(t, token.Exists)

	verified, ok := token.Field("verified")
	require.True(t, ok)
	assert.Equal(t, true, verified)

	ext, ok := token.Field("extensions")
	require.True(t, ok)
	rank := ext.(map[string]interface{})["rank"]
	assert.Equal(t, "5", rank.(decimal.Decimal).String())

	tags, _ := token.Field("tags")
	assert.Equal(t, "1.25", tags.([]interface{})[1].(decimal.Decimal).String())

	mc, ok := token.Field("mc")
	assert.True(t, ok)
	assert.Nil(t, mc)

	_, ok = token.Field("missing")
	assert.False(t, ok)
}

func TestTokenOverview_MarshalJSON(t *testing.T) {
	token := TokenOverview{
		Address:   wsolAddress,
		Symbol:    "SOL",
		Liquidity: decimal.NewNullDecimal(decimal.RequireFromString("170.31")),
		Exists:    true,
	}

	out, err := json.Marshal(token)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "170.31", decoded["liquidity"])
	assert.Nil(t, decoded["mc"])
	assert.Equal(t, true, decoded["exists"])
}

func TestTokenOverview_UnmarshalIntegralFloats(t *testing.T) {
	var token TokenOverview
	require.NoError(t, json.Unmarshal([]byte(`{"address": "a", "decimals": 6.0, "lastTradeUnixTime": 1.71e9}`), &token))
	assert.Equal(t, 6, token.Decimals)
	assert.Equal(t, int64(1710000000), token.LastTradeUnixTime)

	var missing TokenOverview
	require.NoError(t, json.Unmarshal([]byte(`{"address": "a", "decimals": null}`), &missing))
	assert.Equal(t, 0, missing.Decimals)

	var fractional TokenOverview
	assert.Error(t, json.Unmarshal([]byte(`{"address": "a", "decimals": 6.5}`), &fractional))
}

func TestTokenOverview_MarshalJSONKeepsUpstreamFields(t *testing.T) {
	var token TokenOverview
	require.NoError(t, json.Unmarshal([]byte(`{
  "address": "So11111111111111111111111111111111111111112",
  "symbol": "SOL",
  "decimals": 9.0,
  "liquidity": 5000000,
  "extensions": {"coingeckoId": "solana"},
  "holder": 1200
}`), &token))
	token.Exists = true
	token.Symbol = "wSOL"

	out, err := json.Marshal(token)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "wSOL", decoded["symbol"])
	assert.Equal(t, float64(9), decoded["decimals"])
	assert.Equal(t, "5000000", decoded["liquidity"])
	assert.Equal(t, "1200", decoded["holder"])
	assert.Equal(t, map[string]interface{}{"coingeckoId": "solana"}, decoded["extensions"])
	assert.Equal(t, true, decoded["exists"])
}

func TestTokenListing_SortByVolume(t *testing.T) {
	volume := func(s string) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.RequireFromString(s))
	}

	listing := TokenListing{
		{Address: "a", V24hUSD: volume("10")},
		{Address: "b"},
		{Address: "c", V24hUSD: volume("30.5")},
		{Address: "d", V24hUSD: volume("10")},
		{Address: "e", V24hUSD: volume("30.49999999999999999")},
	}
	assert.False(t, listing.IsSortedByVolume())

	listing.SortByVolume()

	var order []string
	for _, token := range listing {
		order = append(order, token.Address)
	}
	assert.Equal(t, []string{"c", "e", "a", "d", "b"}, order)
	assert.True(t, listing.IsSortedByVolume())
}

func TestTokenListing_FindAndIndex(t *testing.T) {
	listing := TokenListing{
		{Address: "a", Symbol: "first"},
		{Address: "b", Symbol: "B"},
		{Address: "a", Symbol: "second"},
	}

	token, ok := listing.Find("a")
	require.True(t, ok)
	assert.Equal(t, "first", token.Symbol)

	_, ok = listing.Find("z")
	assert.False(t, ok)

	index := listing.Index()
	assert.Len(t, index, 2)
	assert.Equal(t, "first", index["a"].Symbol)
}

func TestTokenListing_EmptyIsSorted(t *testing.T) {
	assert.True(t, TokenListing{}.IsSortedByVolume())
	assert.True(t, TokenListing(nil).IsSortedByVolume())
}

func TestValidateAddress(t *testing.T) {
	for _, address := range []string{wsolAddress, usdcAddress, usdtAddress, bonkAddress} {
		assert.NoError(t, ValidateAddress(address), address)
	}

	assert.ErrorIs(t, ValidateAddress(""), ErrEmptyRequest)
	assert.ErrorIs(t, ValidateAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), ErrInvalidAddress)
	assert.ErrorIs(t, ValidateAddress("So111"), ErrInvalidAddress)
	assert.ErrorIs(t, ValidateAddress("So1111111111111111111111111111111111111111211111"), ErrInvalidAddress)
}

func TestNormalizeAddresses(t *testing.T) {
	got, err := normalizeAddresses([]string{" " + usdcAddress, wsolAddress, usdcAddress, ""})
	require.NoError(t, err)
	assert.Equal(t, []string{usdcAddress, wsolAddress}, got)

	_, err = normalizeAddresses([]string{"", " "})
	assert.ErrorIs(t, err, ErrEmptyRequest)

	_, err = normalizeAddresses([]string{wsolAddress, "bad"})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeOK, outcomeOf(nil))
	assert.Equal(t, OutcomeEmptyRequest, outcomeOf(ErrEmptyRequest))
	assert.Equal(t, OutcomeInvalidAddress, outcomeOf(ErrInvalidAddress))
	assert.Equal(t, OutcomeNotFound, outcomeOf(ErrNotFound))
	assert.Equal(t, OutcomeUpstream, outcomeOf(&UpstreamError{Endpoint: "tokenlist", StatusCode: 500}))
	assert.Equal(t, OutcomeError, outcomeOf(assert.AnError))
}

func TestUpstreamError_Error(t *testing.T) {
	err := &UpstreamError{Endpoint: "tokenlist", StatusCode: 503, Err: assert.AnError}
	assert.Contains(t, err.Error(), "tokenlist")
	assert.Contains(t, err.Error(), "503")
	assert.ErrorIs(t, err, assert.AnError)

	transport := &UpstreamError{Endpoint: "multi_price", Err: assert.AnError}
	assert.NotContains(t, transport.Error(), "status")
}
