// Package fees computes the gas and fee needed to fund a retryable ticket on
// a child chain.
package fees

import (
	"errors"
	"fmt"
	"math/big"
)

// DefaultMinGasLimit is the floor applied to the submitted gas limit.
const DefaultMinGasLimit uint64 = 300_000

// l1PriceMultiplier converts the parent base fee to a per-byte calldata price.
const l1PriceMultiplier = 16

// ErrFeeUnavailable means no trustworthy estimate could be produced.
// Callers must not submit a ticket when they get it.
var ErrFeeUnavailable = errors.New("fee estimate unavailable")

// Components are the NodeInterface gas estimate outputs.
type Components struct {
	GasEstimateTotal      uint64   `json:"gasEstimateTotal"`
	GasEstimateForL1      uint64   `json:"gasEstimateForL1"`
	DestinationBaseFee    *big.Int `json:"destinationBaseFee"`
	OriginBaseFeeEstimate *big.Int `json:"originBaseFeeEstimate"`
}

// Breakdown is the computed ticket funding.
type Breakdown struct {
	Components

	L2Gas          *big.Int `json:"l2Gas"`
	L1PricePerByte *big.Int `json:"l1PricePerByte"`
	L1Size         *big.Int `json:"l1Size"`
	Buffer         *big.Int `json:"buffer"`
	// Gas is the total gas G the ticket needs.
	Gas *big.Int `json:"gas"`
	// Fee is DestinationBaseFee * Gas in the child chain's smallest unit.
	Fee *big.Int `json:"fee"`

	GasLimit     *big.Int `json:"gasLimit"`
	MaxFeePerGas *big.Int `json:"maxFeePerGas"`
}

// Compute applies the retryable ticket formula with floor division on
// unsigned integers:
//
//	L2G = total - forL1
//	L1P = originBaseFee * 16
//	L1S = (forL1 * destBaseFee) / L1P
//	B   = (L1P * L1S) / destBaseFee
//	G   = L2G + B
//	FEE = destBaseFee * G
func Compute(c Components) (*Breakdown, error) {
	return compute(c, DefaultMinGasLimit)
}

func compute(c Components, minGasLimit uint64) (*Breakdown, error) {
	if c.DestinationBaseFee == nil || c.DestinationBaseFee.Sign() <= 0 {
		return nil, fmt.Errorf("%w: destination base fee is zero", ErrFeeUnavailable)
	}
	if c.OriginBaseFeeEstimate == nil || c.OriginBaseFeeEstimate.Sign() <= 0 {
		return nil, fmt.Errorf("%w: origin base fee estimate is zero", ErrFeeUnavailable)
	}
	if c.GasEstimateForL1 > c.GasEstimateTotal {
		return nil, fmt.Errorf("%w: l1 gas %d exceeds total %d", ErrFeeUnavailable, c.GasEstimateForL1, c.GasEstimateTotal)
	}

	destFee := c.DestinationBaseFee
	l2Gas := new(big.Int).SetUint64(c.GasEstimateTotal - c.GasEstimateForL1)
	l1Price := new(big.Int).Mul(c.OriginBaseFeeEstimate, big.NewInt(l1PriceMultiplier))
	l1Cost := new(big.Int).Mul(new(big.Int).SetUint64(c.GasEstimateForL1), destFee)
	l1Size := new(big.Int).Quo(l1Cost, l1Price)
	buffer := new(big.Int).Quo(new(big.Int).Mul(l1Price, l1Size), destFee)
	gas := new(big.Int).Add(l2Gas, buffer)
	if gas.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero gas estimate", ErrFeeUnavailable)
	}
	fee := new(big.Int).Mul(destFee, gas)

	return &Breakdown{
		Components:     c,
		L2Gas:          l2Gas,
		L1PricePerByte: l1Price,
		L1Size:         l1Size,
		Buffer:         buffer,
		Gas:            gas,
		Fee:            fee,
		GasLimit:       gasLimit(gas, minGasLimit),
		MaxFeePerGas:   new(big.Int).Quo(fee, gas),
	}, nil
}

// gasLimit doubles G and applies the floor.
func gasLimit(gas *big.Int, floor uint64) *big.Int {
	limit := new(big.Int).Lsh(gas, 1)
	if f := new(big.Int).SetUint64(floor); limit.Cmp(f) < 0 {
		return f
	}
	return limit
}
