package birdeye_common

const (
	// Endpoint paths of the Birdeye public API
	MultiPricePath  = "/public/multi_price"
	TokenListPath   = "/public/tokenlist"
	ExistsTokenPath = "/public/exists_token"

	// Endpoint names used in errors, logs and metric labels
	EndpointMultiPrice  = "multi_price"
	EndpointTokenList   = "tokenlist"
	EndpointExistsToken = "exists_token"

	// Request headers
	HeaderAccept = "accept"
	HeaderChain  = "x-chain"
	HeaderAPIKey = "X-API-KEY"

	// MaxErrorBodyLength caps the upstream body kept in errors for diagnostics
	MaxErrorBodyLength = 512
)
