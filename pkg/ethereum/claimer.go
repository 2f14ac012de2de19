package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/ethereum/contracts"
)

// RevertError is a claim transaction rejected by the outbox, either during
// gas estimation or after being mined.
type RevertError struct {
	TxHash common.Hash
	Reason string
	Data   []byte
	Err    error
}

func (e *RevertError) Error() string {
	if e.TxHash != (common.Hash{}) {
		return fmt.Sprintf("claim %s reverted: %s", e.TxHash.Hex(), e.Reason)
	}
	return fmt.Sprintf("claim reverted: %s", e.Reason)
}

func (e *RevertError) Unwrap() error { return e.Err }

// ClaimResult describes a mined claim.
type ClaimResult struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}

// Claimer executes confirmed withdrawal messages on the parent chain.
type Claimer struct {
	pool        *Pool
	key         *ecdsa.PrivateKey
	address     common.Address
	maxGasPrice *big.Int
	mineTimeout time.Duration
	logger      *zap.Logger
}

// NewClaimer binds a signer key to the pool. maxGasPrice may be nil.
func NewClaimer(pool *Pool, key *ecdsa.PrivateKey, maxGasPrice *big.Int, mineTimeout time.Duration, logger *zap.Logger) *Claimer {
	return &Claimer{
		pool:        pool,
		key:         key,
		address:     crypto.PubkeyToAddress(key.PublicKey),
		maxGasPrice: maxGasPrice,
		mineTimeout: mineTimeout,
		logger:      logger,
	}
}

// Address is the signer address paying for claims.
func (c *Claimer) Address() common.Address {
	return c.address
}

func (c *Claimer) transactor(ctx context.Context, backend Backend, chainID uint64) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(c.key, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	nonce, err := backend.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, classify(err, "eth_getTransactionCount", chainID, c.address.Hex())
	}
	auth.Nonce = new(big.Int).SetUint64(nonce)

	if c.maxGasPrice != nil {
		gasPrice, err := backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, classify(err, "eth_gasPrice", chainID, "")
		}
		if gasPrice.Cmp(c.maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", c.maxGasPrice.String()))
			gasPrice = c.maxGasPrice
		}
		auth.GasPrice = gasPrice
	}
	return auth, nil
}

// Claim proves msg against the outbox's confirmed send count and submits
// executeTransaction from the signer. It waits for the transaction to be
// mined. It never retries.
func (c *Claimer) Claim(ctx context.Context, childChainID uint64, msg *contracts.L2ToL1Tx, sendCount uint64) (*ClaimResult, error) {
	child, parent, err := c.pool.rollup(childChainID)
	if err != nil {
		return nil, err
	}
	proof, err := c.pool.ConstructOutboxProof(ctx, childChainID, sendCount, msg.Position.Uint64())
	if err != nil {
		return nil, fmt.Errorf("failed to construct outbox proof: %w", err)
	}
	backend, err := c.pool.Backend(parent.ChainID)
	if err != nil {
		return nil, err
	}
	opts, err := c.transactor(ctx, backend, parent.ChainID)
	if err != nil {
		return nil, err
	}

	outbox := bind.NewBoundContract(child.Outbox, *contracts.OutboxABI(), backend, backend, backend)
	tx, err := outbox.Transact(opts, "executeTransaction", msg.ExecuteTransactionArgs(proof.Proof)...)
	if err != nil {
		if data := revertData(err); data != nil || isExecutionReverted(err) {
			return nil, &RevertError{Reason: revertReason(err, data), Data: data, Err: err}
		}
		return nil, classify(err, "outbox.executeTransaction", parent.ChainID, child.Outbox.Hex())
	}

	c.logger.Info("Claim transaction submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("chain_id", parent.ChainID),
		zap.String("position", msg.Position.String()))

	waitCtx := ctx
	if c.mineTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, c.mineTimeout)
		defer cancel()
	}
	receipt, err := bind.WaitMined(waitCtx, backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for claim %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		data, reason := c.replay(ctx, backend, tx, receipt)
		return nil, &RevertError{TxHash: tx.Hash(), Reason: reason, Data: data}
	}

	return &ClaimResult{
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// replay re-executes a reverted transaction at its block to recover the
// revert payload, which receipts do not carry.
func (c *Claimer) replay(ctx context.Context, backend Backend, tx *types.Transaction, receipt *types.Receipt) ([]byte, string) {
	_, err := backend.CallContract(ctx, geth.CallMsg{
		From:  c.address,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}, receipt.BlockNumber)
	if err == nil {
		return nil, "reverted without reason"
	}
	data := revertData(err)
	return data, revertReason(err, data)
}

func revertReason(err error, data []byte) string {
	if reason, uerr := abi.UnpackRevert(data); uerr == nil {
		return reason
	}
	if name := contracts.OutboxErrorName(data); name != "" {
		return name
	}
	return err.Error()
}

func isExecutionReverted(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}
