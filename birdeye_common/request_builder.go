package birdeye_common

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// buildURL safely combines a base URL with a path
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// BirdeyeRequestBuilder implements the Builder pattern for Birdeye API requests
type BirdeyeRequestBuilder struct {
	baseURL    string
	httpMethod string
	apiPath    string
	params     map[string]string
	headers    map[string]string
}

// NewBirdeyeRequestBuilder creates a new base request builder for Birdeye endpoints
func NewBirdeyeRequestBuilder(baseURL, apiPath string) *BirdeyeRequestBuilder {
	rb := &BirdeyeRequestBuilder{
		baseURL:    baseURL,
		apiPath:    apiPath,
		httpMethod: http.MethodGet,
		params:     make(map[string]string),
		headers:    make(map[string]string),
	}

	rb.headers[HeaderAccept] = "application/json"

	return rb
}

// With adds a custom parameter to the URL query
func (rb *BirdeyeRequestBuilder) With(key, value string) *BirdeyeRequestBuilder {
	rb.params[key] = value
	return rb
}

// WithAddresses adds a comma-joined address list parameter
func (rb *BirdeyeRequestBuilder) WithAddresses(key string, addresses []string) *BirdeyeRequestBuilder {
	if len(addresses) > 0 {
		rb.params[key] = strings.Join(addresses, ",")
	}
	return rb
}

// WithChain sets the x-chain header
func (rb *BirdeyeRequestBuilder) WithChain(chain string) *BirdeyeRequestBuilder {
	if chain != "" {
		rb.headers[HeaderChain] = chain
	}
	return rb
}

// WithApiKey sets the X-API-KEY header
func (rb *BirdeyeRequestBuilder) WithApiKey(apiKey string) *BirdeyeRequestBuilder {
	if apiKey != "" {
		rb.headers[HeaderAPIKey] = apiKey
	}
	return rb
}

// WithHeader adds a custom HTTP header
func (rb *BirdeyeRequestBuilder) WithHeader(name, value string) *BirdeyeRequestBuilder {
	rb.headers[name] = value
	return rb
}

// BuildURL builds the complete URL for the request.
// Commas stay unescaped so address lists read as the API documents them.
func (rb *BirdeyeRequestBuilder) BuildURL() string {
	fullPath := buildURL(rb.baseURL, rb.apiPath)

	query := url.Values{}
	for key, value := range rb.params {
		query.Add(key, value)
	}

	queryString := strings.ReplaceAll(query.Encode(), "%2C", ",")
	if queryString == "" {
		return fullPath
	}
	return fmt.Sprintf("%s?%s", fullPath, queryString)
}

// Build creates an http.Request bound to ctx
func (rb *BirdeyeRequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, rb.httpMethod, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}

	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
