package birdeye

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// PriceInfo is one token's quoted price paired with its liquidity.
// Liquidity comes from the token listing and is null when the token is not listed.
// PriceChange24h comes from the multi-price response.
type PriceInfo struct {
	Price          decimal.Decimal     `json:"price"`
	Liquidity      decimal.NullDecimal `json:"liquidity"`
	PriceChange24h decimal.NullDecimal `json:"priceChange24h"`
}

// TokenOverview is one row of the token listing.
// Fields holds every upstream field by name with numbers parsed as decimal.Decimal.
type TokenOverview struct {
	Address           string              `json:"address"`
	Symbol            string              `json:"symbol"`
	Name              string              `json:"name"`
	Decimals          int                 `json:"decimals"`
	LogoURI           string              `json:"logoURI"`
	Liquidity         decimal.NullDecimal `json:"liquidity"`
	MarketCap         decimal.NullDecimal `json:"mc"`
	V24hUSD           decimal.NullDecimal `json:"v24hUSD"`
	V24hChangePercent decimal.NullDecimal `json:"v24hChangePercent"`
	LastTradeUnixTime int64               `json:"lastTradeUnixTime"`

	Exists bool                   `json:"exists,omitempty"`
	Fields map[string]interface{} `json:"-"`
}

type plainTokenOverview TokenOverview

// UnmarshalJSON fills the typed fields and the Fields mapping.
// Integer fields accept integral numbers in any JSON notation, e.g. 1710000000.0.
func (t *TokenOverview) UnmarshalJSON(data []byte) error {
	var aux struct {
		*plainTokenOverview
		Decimals          decimal.NullDecimal `json:"decimals"`
		LastTradeUnixTime decimal.NullDecimal `json:"lastTradeUnixTime"`
	}
	aux.plainTokenOverview = (*plainTokenOverview)(t)
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	decimals, err := integralValue("decimals", aux.Decimals)
	if err != nil {
		return err
	}
	lastTrade, err := integralValue("lastTradeUnixTime", aux.LastTradeUnixTime)
	if err != nil {
		return err
	}
	t.Decimals = int(decimals)
	t.LastTradeUnixTime = lastTrade

	fields, err := decodeFields(data)
	if err != nil {
		return err
	}
	t.Fields = fields
	return nil
}

func integralValue(name string, value decimal.NullDecimal) (int64, error) {
	if !value.Valid {
		return 0, nil
	}
	if !value.Decimal.IsInteger() {
		return 0, fmt.Errorf("%s: %s is not an integer", name, value.Decimal)
	}
	return value.Decimal.IntPart(), nil
}

// MarshalJSON emits every upstream field, with the typed fields taking precedence
func (t TokenOverview) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(plainTokenOverview(t))
	if err != nil {
		return nil, err
	}
	if len(t.Fields) == 0 {
		return typed, nil
	}

	var typedFields map[string]json.RawMessage
	if err := json.Unmarshal(typed, &typedFields); err != nil {
		return nil, err
	}

	out := make(map[string]interface{}, len(t.Fields)+len(typedFields))
	for key, value := range t.Fields {
		out[key] = value
	}
	for key, value := range typedFields {
		out[key] = value
	}
	return json.Marshal(out)
}

// Field returns a raw upstream field
func (t TokenOverview) Field(name string) (interface{}, bool) {
	v, ok := t.Fields[name]
	return v, ok
}

func decodeFields(data []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	for key, value := range raw {
		normalized, err := normalizeNumbers(value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		raw[key] = normalized
	}
	return raw, nil
}

// normalizeNumbers converts json.Number values into decimals, recursing into objects and arrays
func normalizeNumbers(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case map[string]interface{}:
		for key, item := range v {
			normalized, err := normalizeNumbers(item)
			if err != nil {
				return nil, err
			}
			v[key] = normalized
		}
		return v, nil
	case []interface{}:
		for i, item := range v {
			normalized, err := normalizeNumbers(item)
			if err != nil {
				return nil, err
			}
			v[i] = normalized
		}
		return v, nil
	default:
		return v, nil
	}
}

// TokenListing is the token listing ordered by 24h USD volume, highest first
type TokenListing []TokenOverview

// Find returns the first entry with the given address
func (l TokenListing) Find(address string) (TokenOverview, bool) {
	for _, token := range l {
		if token.Address == address {
			return token, true
		}
	}
	return TokenOverview{}, false
}

// Index maps addresses to entries; the first occurrence of a duplicated address wins
func (l TokenListing) Index() map[string]TokenOverview {
	index := make(map[string]TokenOverview, len(l))
	for _, token := range l {
		if _, ok := index[token.Address]; !ok {
			index[token.Address] = token
		}
	}
	return index
}

// SortByVolume orders the listing by 24h USD volume descending.
// Entries without volume go last; equal volumes keep their upstream order.
func (l TokenListing) SortByVolume() {
	sort.SliceStable(l, func(i, j int) bool {
		return volumeGreater(l[i].V24hUSD, l[j].V24hUSD)
	})
}

// IsSortedByVolume reports whether volumes are non-increasing
func (l TokenListing) IsSortedByVolume() bool {
	for i := 1; i < len(l); i++ {
		if volumeGreater(l[i].V24hUSD, l[i-1].V24hUSD) {
			return false
		}
	}
	return true
}

func volumeGreater(a, b decimal.NullDecimal) bool {
	switch {
	case !a.Valid:
		return false
	case !b.Valid:
		return true
	default:
		return a.Decimal.GreaterThan(b.Decimal)
	}
}

type multiPriceEntry struct {
	Value          decimal.NullDecimal `json:"value"`
	PriceChange24h decimal.NullDecimal `json:"priceChange24h"`
	UpdateUnixTime int64               `json:"updateUnixTime"`
}

type multiPriceData map[string]*multiPriceEntry

type tokenListData struct {
	Tokens TokenListing `json:"tokens"`
	Total  int          `json:"total"`
}

type existsTokenData struct {
	Exists *bool `json:"exists"`
}

// envelope is the common Birdeye response wrapper
type envelope[T any] struct {
	Data    *T     `json:"data"`
	Success *bool  `json:"success"`
	Message string `json:"message"`
}
