// Package birdeye implements a client for the Birdeye token price API on Solana.
package birdeye

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	bc "github.com/status-im/solana-price-feed/birdeye_common"
	"github.com/status-im/solana-price-feed/cache"
	"github.com/status-im/solana-price-feed/config"
)

// Client fetches prices and token listings from Birdeye.
// It holds only immutable configuration and is safe for concurrent use.
type Client struct {
	cfg        config.BirdeyeConfig
	credential config.Credential
	existence  cache.ExistenceCache
	logger     *zap.Logger

	multiPrice  *bc.HTTPClientWithRetries
	tokenList   *bc.HTTPClientWithRetries
	existsToken *bc.HTTPClientWithRetries
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	logger         *zap.Logger
	existence      cache.ExistenceCache
	httpClient     *http.Client
	handlerFactory func(endpoint string) bc.IHttpStatusHandler
}

// WithLogger sets the logger, zap.NewNop() by default
func WithLogger(logger *zap.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithExistenceCache memoises addresses confirmed to exist
func WithExistenceCache(existence cache.ExistenceCache) Option {
	return func(o *clientOptions) {
		o.existence = existence
	}
}

// WithHTTPClient replaces the transport built from the config timeouts.
// A client without a Timeout is used through a copy bounded by request_timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithStatusHandlerFactory replaces the Prometheus request handlers
func WithStatusHandlerFactory(factory func(endpoint string) bc.IHttpStatusHandler) Option {
	return func(o *clientOptions) {
		o.handlerFactory = factory
	}
}

// NewClient creates a Birdeye client. It fails with ErrConfig when the credential is
// empty or the settings are invalid.
func NewClient(cfg config.BirdeyeConfig, credential config.Credential, opts ...Option) (*Client, error) {
	if err := credential.Validate(); err != nil {
		return nil, err
	}
	if cfg.Chain == "" {
		cfg.Chain = config.DefaultChain
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := clientOptions{
		logger:         zap.NewNop(),
		handlerFactory: bc.NewEndpointStatusHandler,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = bc.NewHTTPClient(bc.RetryOptionsFromConfig(cfg, "Birdeye"))
	} else if httpClient.Timeout == 0 {
		bounded := *httpClient
		bounded.Timeout = cfg.RequestTimeout
		httpClient = &bounded
	}

	newEndpointClient := func(endpoint string) *bc.HTTPClientWithRetries {
		var handler bc.IHttpStatusHandler
		if o.handlerFactory != nil {
			handler = o.handlerFactory(endpoint)
		}
		return bc.NewHTTPClientWithRetries(httpClient, bc.RetryOptionsFromConfig(cfg, "Birdeye-"+endpoint), handler, o.logger)
	}

	return &Client{
		cfg:         cfg,
		credential:  credential,
		existence:   o.existence,
		logger:      o.logger,
		multiPrice:  newEndpointClient(bc.EndpointMultiPrice),
		tokenList:   newEndpointClient(bc.EndpointTokenList),
		existsToken: newEndpointClient(bc.EndpointExistsToken),
	}, nil
}

func (c *Client) newRequest(path string) *bc.BirdeyeRequestBuilder {
	return bc.NewBirdeyeRequestBuilder(c.cfg.BaseURL, path).
		WithChain(c.cfg.Chain).
		WithApiKey(c.credential.APIKey)
}

// execute sends the request and maps every failure onto an UpstreamError for endpoint
func (c *Client) execute(ctx context.Context, endpoint string, httpClient *bc.HTTPClientWithRetries, rb *bc.BirdeyeRequestBuilder) ([]byte, error) {
	req, err := rb.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating %s request: %w", endpoint, err)
	}

	body, _, err := httpClient.ExecuteRequest(req)
	if err != nil {
		upstreamErr := &UpstreamError{Endpoint: endpoint, Err: err}
		var statusErr *bc.HTTPStatusError
		if errors.As(err, &statusErr) {
			upstreamErr.StatusCode = statusErr.StatusCode
		}
		return nil, upstreamErr
	}

	return body, nil
}

// decodeResponse unwraps the Birdeye envelope. A body that does not parse, reports
// success=false or carries no data is an UpstreamError.
func decodeResponse[T any](endpoint string, body []byte) (*T, error) {
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, StatusCode: http.StatusOK, Err: fmt.Errorf("malformed response: %w", err)}
	}
	if env.Success != nil && !*env.Success {
		return nil, &UpstreamError{Endpoint: endpoint, StatusCode: http.StatusOK, Err: fmt.Errorf("request unsuccessful: %s", env.Message)}
	}
	if env.Data == nil {
		return nil, &UpstreamError{Endpoint: endpoint, StatusCode: http.StatusOK, Err: errors.New("malformed response: missing data")}
	}
	return env.Data, nil
}

func (c *Client) fetchMultiPrice(ctx context.Context, addresses []string) (multiPriceData, error) {
	rb := c.newRequest(bc.MultiPricePath).WithAddresses("list_address", addresses)

	body, err := c.execute(ctx, bc.EndpointMultiPrice, c.multiPrice, rb)
	if err != nil {
		return nil, err
	}

	data, err := decodeResponse[multiPriceData](bc.EndpointMultiPrice, body)
	if err != nil {
		return nil, err
	}
	return *data, nil
}

func (c *Client) fetchTokenList(ctx context.Context) (TokenListing, error) {
	rb := c.newRequest(bc.TokenListPath).
		With("sort_by", "v24hUSD").
		With("sort_type", "desc")

	body, err := c.execute(ctx, bc.EndpointTokenList, c.tokenList, rb)
	if err != nil {
		return nil, err
	}

	data, err := decodeResponse[tokenListData](bc.EndpointTokenList, body)
	if err != nil {
		return nil, err
	}
	return data.Tokens, nil
}

func (c *Client) fetchExists(ctx context.Context, address string) (bool, error) {
	rb := c.newRequest(bc.ExistsTokenPath).With("address", address)

	body, err := c.execute(ctx, bc.EndpointExistsToken, c.existsToken, rb)
	if err != nil {
		return false, err
	}

	data, err := decodeResponse[existsTokenData](bc.EndpointExistsToken, body)
	if err != nil {
		return false, err
	}
	if data.Exists == nil {
		return false, &UpstreamError{Endpoint: bc.EndpointExistsToken, StatusCode: http.StatusOK, Err: errors.New("malformed response: missing exists")}
	}
	return *data.Exists, nil
}
