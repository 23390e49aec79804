package birdeye

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// publicKeyLength is the size of a decoded Solana account address
const publicKeyLength = 32

// ValidateAddress checks that address is a base58 encoded Solana public key
func ValidateAddress(address string) error {
	if address == "" {
		return ErrEmptyRequest
	}

	decoded, err := base58.Decode(address)
	if err != nil {
		return fmt.Errorf("%w: %q is not base58: %v", ErrInvalidAddress, address, err)
	}
	if len(decoded) != publicKeyLength {
		return fmt.Errorf("%w: %q decodes to %d bytes, want %d", ErrInvalidAddress, address, len(decoded), publicKeyLength)
	}

	return nil
}

// normalizeAddresses trims, drops blanks and duplicates while keeping the caller's order,
// then validates every remaining address
func normalizeAddresses(addresses []string) ([]string, error) {
	seen := make(map[string]struct{}, len(addresses))
	result := make([]string, 0, len(addresses))

	for _, address := range addresses {
		address = strings.TrimSpace(address)
		if address == "" {
			continue
		}
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		result = append(result, address)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no token addresses provided", ErrEmptyRequest)
	}

	for _, address := range result {
		if err := ValidateAddress(address); err != nil {
			return nil, err
		}
	}

	return result, nil
}
