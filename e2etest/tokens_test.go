package e2etest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenBody struct {
	Address string  `json:"address"`
	Symbol  string  `json:"symbol"`
	V24hUSD *string `json:"v24hUSD"`
	Exists  bool    `json:"exists"`
}

func TestTokenListEndpoint(t *testing.T) {
	env := SetupTest(t)

	var body []tokenBody
	status := getJSON(t, env.ServerBaseURL+"/api/v1/tokens", &body)

	require.Equal(t, http.StatusOK, status)
	require.Len(t, body, 3)
	// the mock lists SOL first although USDC has the higher volume
	assert.Equal(t, "USDC", body[0].Symbol)
	assert.Equal(t, "SOL", body[1].Symbol)
	assert.Equal(t, "Bonk", body[2].Symbol)

	var limited []tokenBody
	status = getJSON(t, env.ServerBaseURL+"/api/v1/tokens?limit=1", &limited)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, limited, 1)
	assert.Equal(t, USDCAddress, limited[0].Address)
}

func TestTokenOverviewEndpoint(t *testing.T) {
	env := SetupTest(t)

	t.Run("listed token", func(t *testing.T) {
		var body tokenBody
		status := getJSON(t, env.ServerBaseURL+"/api/v1/tokens/"+BONKAddress, &body)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, BONKAddress, body.Address)
		assert.Equal(t, "Bonk", body.Symbol)
		assert.True(t, body.Exists)
	})

	t.Run("existence is remembered", func(t *testing.T) {
		before := env.MockServer.Hits("/public/exists_token")

		status := getJSON(t, env.ServerBaseURL+"/api/v1/tokens/"+BONKAddress, nil)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, before, env.MockServer.Hits("/public/exists_token"))
	})

	t.Run("existing but unlisted token", func(t *testing.T) {
		var body errorBody
		status := getJSON(t, env.ServerBaseURL+"/api/v1/tokens/"+JUPAddress, &body)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "not_found", body.Kind)
	})

	t.Run("address that does not exist", func(t *testing.T) {
		// valid base58 public key the mock does not know
		const unknown = "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"
		listingHits := env.MockServer.Hits("/public/tokenlist")

		var body errorBody
		status := getJSON(t, env.ServerBaseURL+"/api/v1/tokens/"+unknown, &body)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid_address", body.Kind)
		assert.Equal(t, listingHits, env.MockServer.Hits("/public/tokenlist"))
	})
}

func TestTokenOverviewEndpoint_UpstreamFailure(t *testing.T) {
	env := SetupTest(t)
	env.MockServer.SetFailure("/public/exists_token", http.StatusInternalServerError)

	var body errorBody
	status := getJSON(t, env.ServerBaseURL+"/api/v1/tokens/"+WSOLAddress, &body)

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "exists_token", body.Endpoint)
	assert.Equal(t, http.StatusInternalServerError, body.UpstreamStatus)
}

func TestTokenOverviewEndpoint_MalformedExistsBody(t *testing.T) {
	env := SetupTest(t)
	env.MockServer.SetExistsBody(`{"data": {}, "success": true}`)

	var body errorBody
	status := getJSON(t, env.ServerBaseURL+"/api/v1/tokens/"+WSOLAddress, &body)

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "upstream_error", body.Kind)
	assert.Equal(t, "exists_token", body.Endpoint)
	assert.Equal(t, http.StatusOK, body.UpstreamStatus)
	assert.Equal(t, 0, env.MockServer.Hits("/public/tokenlist"))
}
