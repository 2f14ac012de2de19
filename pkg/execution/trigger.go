// Package execution submits the claim transaction for withdrawals that have
// become claimable.
package execution

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
	"github.com/chainsafe/bridge-tracker/pkg/chainstatus"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// Resolver re-reads a record's chain state.
type Resolver interface {
	ResolveRecord(ctx context.Context, rec *transfer.Record) (*chainstatus.Resolution, error)
}

// SendCounter reports the outbox's confirmed send count for a child chain.
type SendCounter interface {
	ConfirmedSendCount(ctx context.Context, childChainID uint64) (uint64, error)
}

// Claimer submits executeTransaction on the parent chain.
type Claimer interface {
	Claim(ctx context.Context, childChainID uint64, msg *contracts.L2ToL1Tx, sendCount uint64) (*ethereum.ClaimResult, error)
}

// Trigger executes claimable withdrawals at most once per record at a time.
type Trigger struct {
	resolver Resolver
	outbox   SendCounter
	claimer  Claimer
	logger   *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewTrigger creates a trigger.
func NewTrigger(resolver Resolver, outbox SendCounter, claimer Claimer, logger *zap.Logger) *Trigger {
	return &Trigger{
		resolver: resolver,
		outbox:   outbox,
		claimer:  claimer,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Execute claims rec, whose derived status must be CLAIMABLE. The record is
// re-resolved first so a withdrawal executed since the last poll is reported
// as ALREADY_EXECUTED instead of being claimed twice. Reverts come back as
// *transfer.ExecutionError and are never retried.
func (t *Trigger) Execute(ctx context.Context, rec *transfer.Record, derived transfer.Status) (*ethereum.ClaimResult, error) {
	if rec.Kind != transfer.Withdrawal {
		return nil, transfer.NewValidationError("type", string(rec.Kind), errors.New("only withdrawals can be claimed"))
	}
	if derived != transfer.StatusClaimable {
		return nil, transfer.NewValidationError("status", string(derived), errors.New("withdrawal is not claimable"))
	}

	key := rec.Key()
	if !t.acquire(key) {
		return nil, transfer.NewValidationError("hash", key, errors.New("claim already in progress"))
	}
	defer t.release(key)

	res, err := t.resolver.ResolveRecord(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to re-resolve withdrawal: %w", err)
	}
	switch {
	case res.MessageStatus == chainstatus.MessageExecuted:
		return nil, t.fail(key, &transfer.ExecutionError{Class: transfer.AlreadyExecuted, Reason: "withdrawal already executed"})
	case res.Message == nil:
		return nil, t.fail(key, &transfer.ExecutionError{Class: transfer.NotYetConfirmed, Reason: "withdrawal message not found"})
	case res.MessageStatus != chainstatus.MessageConfirmed:
		return nil, t.fail(key, &transfer.ExecutionError{Class: transfer.NotYetConfirmed, Reason: "withdrawal not confirmed"})
	}

	childChainID := rec.SubmittedChainID()
	sendCount, err := t.outbox.ConfirmedSendCount(ctx, childChainID)
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmed send count: %w", err)
	}

	result, err := t.claimer.Claim(ctx, childChainID, res.Message, sendCount)
	if err != nil {
		var revert *ethereum.RevertError
		if errors.As(err, &revert) {
			execErr := &transfer.ExecutionError{
				Class:  ClassifyRevert(revert.Reason),
				Reason: revert.Reason,
				Err:    err,
			}
			if revert.TxHash != (common.Hash{}) {
				execErr.TxHash = revert.TxHash.Hex()
			}
			return nil, t.fail(key, execErr)
		}
		metrics.ClaimsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to submit claim: %w", err)
	}

	metrics.ClaimsTotal.WithLabelValues("executed").Inc()
	metrics.GasUsed.WithLabelValues("claim").Observe(float64(result.GasUsed))
	t.logger.Info("Withdrawal claimed",
		zap.String("key", key),
		zap.String("tx_hash", result.TxHash.Hex()),
		zap.Uint64("block", result.BlockNumber),
		zap.Uint64("gas_used", result.GasUsed))
	return result, nil
}

func (t *Trigger) fail(key string, err *transfer.ExecutionError) error {
	metrics.ClaimsTotal.WithLabelValues(strings.ToLower(string(err.Class))).Inc()
	t.logger.Warn("Claim rejected",
		zap.String("key", key),
		zap.String("class", string(err.Class)),
		zap.String("reason", err.Reason))
	return err
}

func (t *Trigger) acquire(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, busy := t.inFlight[key]; busy {
		return false
	}
	t.inFlight[key] = struct{}{}
	return true
}

func (t *Trigger) release(key string) {
	t.mu.Lock()
	delete(t.inFlight, key)
	t.mu.Unlock()
}

// ClassifyRevert maps an outbox revert reason or custom error name to a class.
func ClassifyRevert(reason string) transfer.RevertClass {
	r := strings.ToLower(reason)
	switch {
	case strings.Contains(r, "alreadyspent"), strings.Contains(r, "already spent"), strings.Contains(r, "already executed"):
		return transfer.AlreadyExecuted
	case strings.Contains(r, "unknownroot"), strings.Contains(r, "not confirmed"), strings.Contains(r, "not yet"):
		return transfer.NotYetConfirmed
	default:
		return transfer.GenericRevert
	}
}
