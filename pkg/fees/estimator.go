package fees

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-tracker/pkg/retry"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// GasEstimator queries NodeInterface.gasEstimateComponents on a chain.
type GasEstimator interface {
	GasEstimateComponents(ctx context.Context, chainID uint64, to common.Address, contractCreation bool, data []byte) (*contracts.GasComponents, error)
}

// Request describes the message a ticket will carry on the destination chain.
type Request struct {
	ChainID          uint64         `json:"chainId"`
	To               common.Address `json:"to"`
	Data             []byte         `json:"data"`
	ContractCreation bool           `json:"contractCreation"`
}

// Estimator fetches gas components with retries and computes the funding.
type Estimator struct {
	gas         GasEstimator
	policy      retry.Policy
	minGasLimit uint64
	logger      *zap.Logger
}

// NewEstimator creates an estimator. A zero minGasLimit uses DefaultMinGasLimit.
func NewEstimator(gas GasEstimator, policy retry.Policy, minGasLimit uint64, logger *zap.Logger) *Estimator {
	if minGasLimit == 0 {
		minGasLimit = DefaultMinGasLimit
	}
	return &Estimator{
		gas:         gas,
		policy:      policy,
		minGasLimit: minGasLimit,
		logger:      logger,
	}
}

// Estimate returns the ticket funding for req. Any failure other than a
// malformed request wraps ErrFeeUnavailable; no fallback value is produced.
func (e *Estimator) Estimate(ctx context.Context, req Request) (*Breakdown, error) {
	if req.ChainID == 0 {
		return nil, transfer.NewValidationError("chainId", "0", fmt.Errorf("required"))
	}

	gc, err := retry.Do(ctx, e.policy, e.logger, "fee_estimate", func(ctx context.Context) (*contracts.GasComponents, error) {
		return e.gas.GasEstimateComponents(ctx, req.ChainID, req.To, req.ContractCreation, req.Data)
	})
	if err != nil {
		if transfer.IsValidation(err) {
			metrics.FeeEstimatesTotal.WithLabelValues("invalid").Inc()
			return nil, err
		}
		metrics.FeeEstimatesTotal.WithLabelValues("unavailable").Inc()
		e.logger.Warn("Gas estimate failed",
			zap.Uint64("chain_id", req.ChainID),
			zap.String("to", req.To.Hex()),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFeeUnavailable, err)
	}

	b, err := compute(Components{
		GasEstimateTotal:      gc.GasEstimate,
		GasEstimateForL1:      gc.GasEstimateForL1,
		DestinationBaseFee:    gc.BaseFee,
		OriginBaseFeeEstimate: gc.L1BaseFeeEstimate,
	}, e.minGasLimit)
	if err != nil {
		metrics.FeeEstimatesTotal.WithLabelValues("unavailable").Inc()
		e.logger.Warn("Gas components unusable",
			zap.Uint64("chain_id", req.ChainID),
			zap.Error(err))
		return nil, err
	}

	metrics.FeeEstimatesTotal.WithLabelValues("ok").Inc()
	e.logger.Debug("Estimated retryable fee",
		zap.Uint64("chain_id", req.ChainID),
		zap.String("gas", b.Gas.String()),
		zap.String("fee", b.Fee.String()))
	return b, nil
}
