package e2etest

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// getJSON performs a GET against the proxy and decodes the body into out
func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
	}
	return resp.StatusCode
}

// errorBody mirrors the proxy error payload
type errorBody struct {
	Error          string `json:"error"`
	Kind           string `json:"kind"`
	Endpoint       string `json:"endpoint"`
	UpstreamStatus int    `json:"upstream_status"`
}
