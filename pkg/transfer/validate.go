package transfer

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// NormalizeAddress validates a hex address and returns it checksummed.
func NormalizeAddress(address string) (string, error) {
	if !common.IsHexAddress(address) || !strings.HasPrefix(address, "0x") {
		return "", NewValidationError("address", address, errors.New("not a 20-byte hex address"))
	}
	return common.HexToAddress(address).Hex(), nil
}

// IsTxHash reports whether s is a 0x-prefixed 32-byte hex string.
func IsTxHash(s string) bool {
	return txHashPattern.MatchString(s)
}

// ValidateTxHash returns a ValidationError when s is not a transaction hash.
func ValidateTxHash(field, s string) error {
	if !IsTxHash(s) {
		return NewValidationError(field, s, errors.New("not a 32-byte hex hash"))
	}
	return nil
}

// ValidateAmount checks that amount is a non-negative integer in base units.
func ValidateAmount(amount string) error {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return NewValidationError("amount", amount, err)
	}
	if d.IsNegative() {
		return NewValidationError("amount", amount, errors.New("negative amount"))
	}
	if !d.Equal(d.Truncate(0)) {
		return NewValidationError("amount", amount, errors.New("amount must be in base units"))
	}
	return nil
}
