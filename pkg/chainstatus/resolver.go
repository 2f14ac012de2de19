// Package chainstatus resolves the on-chain state of a transfer: the receipt
// of the submitted transaction, the rollup message it emitted and whether
// that message has been confirmed or executed on the other leg.
package chainstatus

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-tracker/pkg/network"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// MessageStatus is the state of a cross-chain message.
type MessageStatus string

const (
	MessageUnknown     MessageStatus = "UNKNOWN"
	MessageUnconfirmed MessageStatus = "UNCONFIRMED"
	MessageConfirmed   MessageStatus = "CONFIRMED"
	MessageExecuted    MessageStatus = "EXECUTED"
)

// ChainReader reads receipts and blocks on any configured chain.
//
//go:generate mockery --name ChainReader --output mocks --outpkg mocks --filename mock_chain_reader.go --with-expecter
type ChainReader interface {
	TransactionReceipt(ctx context.Context, chainID uint64, hash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context, chainID uint64) (uint64, error)
	BlockTime(ctx context.Context, chainID uint64, number uint64) (uint64, error)
}

// OutboxReader queries a rollup's outbox on its parent chain.
//
//go:generate mockery --name OutboxReader --output mocks --outpkg mocks --filename mock_outbox_reader.go --with-expecter
type OutboxReader interface {
	IsSpent(ctx context.Context, childChainID uint64, position *big.Int) (bool, error)
	ConfirmedSendCount(ctx context.Context, childChainID uint64) (uint64, error)
}

// Query names the transaction to resolve.
type Query struct {
	Kind               transfer.Kind
	TxHash             string
	ChainID            uint64
	CounterpartChainID uint64
	// CounterpartHash is the other leg's transaction, when already known.
	CounterpartHash string
}

// QueryFor builds the query for a record's submitted transaction.
func QueryFor(r *transfer.Record) Query {
	return Query{
		Kind:               r.Kind,
		TxHash:             r.SubmittedHash(),
		ChainID:            r.SubmittedChainID(),
		CounterpartChainID: r.CounterpartChainID(),
		CounterpartHash:    r.CounterpartHash(),
	}
}

// Resolution is what the chains report about a transfer. Nil fields are
// unknown, not failures.
type Resolution struct {
	Mined    bool
	Reverted bool

	// Message is the decoded withdrawal message, if found in the receipt.
	Message *contracts.L2ToL1Tx
	// MessageNum is the inbox sequence number of a deposit.
	MessageNum *big.Int

	CounterpartyAddress *common.Address
	Value               *big.Int
	EmittedAt           *int64
	Confirmations       *uint64
	MessageStatus       MessageStatus

	DestinationExecuted bool
	DestinationReverted bool
	// DestinationTxHash is the child-chain transaction derived from a
	// deposit's inbox message: the redemption once it succeeded, otherwise
	// the ticket or deposit transaction.
	DestinationTxHash *common.Hash
}

// Resolver reads chain state for transfers of one or more network types.
type Resolver struct {
	chains   ChainReader
	outbox   OutboxReader
	networks network.Registries
	logger   *zap.Logger
}

// NewResolver creates a resolver. The outbox reader only needs read access
// to the parent chains.
func NewResolver(chains ChainReader, outbox OutboxReader, networks network.Registries, logger *zap.Logger) *Resolver {
	return &Resolver{
		chains:   chains,
		outbox:   outbox,
		networks: networks,
		logger:   logger,
	}
}

// ResolveRecord resolves the record's submitted transaction.
func (r *Resolver) ResolveRecord(ctx context.Context, rec *transfer.Record) (*Resolution, error) {
	return r.Resolve(ctx, QueryFor(rec))
}

// Resolve fetches the receipt of q.TxHash and the status of the message it
// emitted. A missing receipt is a transfer.ChainStateError. Failures past
// the receipt degrade individual fields and are not returned.
func (r *Resolver) Resolve(ctx context.Context, q Query) (*Resolution, error) {
	res, err := r.resolve(ctx, q)
	switch {
	case err == nil:
		outcome := "ok"
		if res.Reverted {
			outcome = "reverted"
		}
		metrics.ResolverCallsTotal.WithLabelValues(string(q.Kind), outcome).Inc()
	case transfer.IsChainState(err):
		metrics.ResolverCallsTotal.WithLabelValues(string(q.Kind), "pending").Inc()
		r.logger.Debug("Transaction not observable yet",
			zap.String("tx_hash", q.TxHash),
			zap.Uint64("chain_id", q.ChainID))
	default:
		metrics.ResolverCallsTotal.WithLabelValues(string(q.Kind), "error").Inc()
	}
	return res, err
}

func (r *Resolver) resolve(ctx context.Context, q Query) (*Resolution, error) {
	if err := transfer.ValidateTxHash("txHash", q.TxHash); err != nil {
		return nil, err
	}
	if _, ok := r.networks.Lookup(q.ChainID); !ok {
		return nil, transfer.NewValidationError("chainId", fmt.Sprint(q.ChainID), fmt.Errorf("unknown chain"))
	}

	receipt, err := r.chains.TransactionReceipt(ctx, q.ChainID, common.HexToHash(q.TxHash))
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		Mined:         true,
		Reverted:      receipt.Status != types.ReceiptStatusSuccessful,
		MessageStatus: MessageUnknown,
	}
	res.Confirmations = r.confirmations(ctx, q.ChainID, receipt)
	if res.Reverted {
		return res, nil
	}

	switch q.Kind {
	case transfer.Withdrawal:
		r.resolveWithdrawal(ctx, q, receipt, res)
	case transfer.Deposit:
		r.resolveDeposit(ctx, q, receipt, res)
	case transfer.Claim:
		res.MessageStatus = MessageExecuted
	default:
		return nil, transfer.NewValidationError("kind", string(q.Kind), fmt.Errorf("unknown transfer kind"))
	}
	return res, nil
}

func (r *Resolver) confirmations(ctx context.Context, chainID uint64, receipt *types.Receipt) *uint64 {
	if receipt.BlockNumber == nil {
		return nil
	}
	head, err := r.chains.BlockNumber(ctx, chainID)
	if err != nil {
		r.logger.Debug("Failed to read chain head", zap.Uint64("chain_id", chainID), zap.Error(err))
		return nil
	}
	mined := receipt.BlockNumber.Uint64()
	var n uint64
	if head >= mined {
		n = head - mined + 1
	}
	return &n
}

// resolveWithdrawal decodes the ArbSys message and checks it against the
// child's outbox on the parent chain.
func (r *Resolver) resolveWithdrawal(ctx context.Context, q Query, receipt *types.Receipt, res *Resolution) {
	child, ok := r.networks.Lookup(q.ChainID)
	if !ok || !child.IsRollup() {
		return
	}
	msg, ok := contracts.FindL2ToL1Tx(receipt.Logs, child.ArbSys)
	if !ok {
		r.logger.Debug("Withdrawal message not found in receipt",
			zap.String("tx_hash", q.TxHash),
			zap.Uint64("chain_id", q.ChainID))
		return
	}

	res.Message = msg
	dest := msg.Destination
	res.CounterpartyAddress = &dest
	res.Value = msg.Callvalue
	if msg.Timestamp != nil && msg.Timestamp.IsInt64() {
		ts := msg.Timestamp.Int64()
		res.EmittedAt = &ts
	}

	spent, err := r.outbox.IsSpent(ctx, child.ChainID, msg.Position)
	if err != nil {
		r.logger.Warn("Failed to query outbox spent state",
			zap.Uint64("chain_id", child.ChainID),
			zap.String("position", msg.Position.String()),
			zap.Error(err))
		return
	}
	if spent {
		res.MessageStatus = MessageExecuted
		return
	}

	count, err := r.outbox.ConfirmedSendCount(ctx, child.ChainID)
	if err != nil {
		if !transfer.IsChainState(err) {
			r.logger.Warn("Failed to read confirmed send count",
				zap.Uint64("chain_id", child.ChainID),
				zap.Error(err))
			return
		}
		// nothing confirmed inside the lookback window
		res.MessageStatus = MessageUnconfirmed
		return
	}
	if new(big.Int).SetUint64(count).Cmp(msg.Position) > 0 {
		res.MessageStatus = MessageConfirmed
	} else {
		res.MessageStatus = MessageUnconfirmed
	}
}

// resolveDeposit decodes the inbox delivery. A known child-leg hash is
// checked directly; otherwise the child transaction is derived from the
// message and followed to its redemption.
func (r *Resolver) resolveDeposit(ctx context.Context, q Query, receipt *types.Receipt, res *Resolution) {
	if receipt.BlockNumber != nil {
		if ts, err := r.chains.BlockTime(ctx, q.ChainID, receipt.BlockNumber.Uint64()); err == nil {
			at := int64(ts)
			res.EmittedAt = &at
		}
	}

	child, ok := r.networks.Lookup(q.CounterpartChainID)
	var msg *contracts.InboxMessageDelivered
	if ok && child.Inbox != (common.Address{}) {
		if m, found := contracts.FindInboxMessageDelivered(receipt.Logs, child.Inbox); found {
			msg = m
			res.MessageNum = m.MessageNum
			res.MessageStatus = MessageUnconfirmed
		}
	}

	if q.CounterpartHash != "" && transfer.IsTxHash(q.CounterpartHash) {
		r.checkDestination(ctx, q, res)
		return
	}
	if msg != nil && child.Bridge != (common.Address{}) {
		r.followMessage(ctx, child.ChainID, child.Bridge, receipt, msg, res)
	}
}

func (r *Resolver) checkDestination(ctx context.Context, q Query, res *Resolution) {
	dest, err := r.chains.TransactionReceipt(ctx, q.CounterpartChainID, common.HexToHash(q.CounterpartHash))
	switch {
	case err == nil && dest.Status == types.ReceiptStatusSuccessful:
		res.DestinationExecuted = true
		res.MessageStatus = MessageExecuted
	case err == nil:
		res.DestinationReverted = true
	case transfer.IsChainState(err):
		res.MessageStatus = MessageUnconfirmed
	default:
		r.logger.Warn("Failed to read destination receipt",
			zap.String("tx_hash", q.CounterpartHash),
			zap.Uint64("chain_id", q.CounterpartChainID),
			zap.Error(err))
	}
}

// followMessage derives the child transaction of a native deposit or
// retryable ticket from the bridge header and reads it on the child chain.
// A ticket whose automatic redemption failed stays CONFIRMED: it can still
// be redeemed by hand until it expires.
func (r *Resolver) followMessage(
	ctx context.Context,
	childID uint64,
	bridge common.Address,
	receipt *types.Receipt,
	msg *contracts.InboxMessageDelivered,
	res *Resolution,
) {
	header, ok := contracts.FindMessageDelivered(receipt.Logs, bridge, msg.MessageNum)
	if !ok {
		return
	}

	var (
		childTx   common.Hash
		err       error
		retryable bool
	)
	switch header.Kind {
	case contracts.KindEthDeposit:
		var dep *contracts.EthDeposit
		if dep, err = contracts.ParseEthDeposit(msg.Data); err == nil {
			childTx, err = contracts.EthDepositTxID(childID, header, dep)
		}
	case contracts.KindSubmitRetryable:
		retryable = true
		var ticket *contracts.RetryableTicket
		if ticket, err = contracts.ParseRetryableTicket(msg.Data); err == nil {
			childTx, err = contracts.RetryableTicketID(childID, header, ticket)
		}
	default:
		return
	}
	if err != nil {
		r.logger.Warn("Failed to derive child transaction",
			zap.String("message_num", msg.MessageNum.String()),
			zap.Uint8("kind", header.Kind),
			zap.Error(err))
		return
	}
	res.DestinationTxHash = &childTx

	created, err := r.chains.TransactionReceipt(ctx, childID, childTx)
	switch {
	case transfer.IsChainState(err):
		return
	case err != nil:
		r.logger.Warn("Failed to read child transaction",
			zap.String("tx_hash", childTx.Hex()),
			zap.Uint64("chain_id", childID),
			zap.Error(err))
		return
	case created.Status != types.ReceiptStatusSuccessful:
		res.DestinationReverted = true
		return
	}
	if !retryable {
		res.DestinationExecuted = true
		res.MessageStatus = MessageExecuted
		return
	}

	res.MessageStatus = MessageConfirmed
	redeem, ok := contracts.FindRedeemScheduled(created.Logs, childTx)
	if !ok {
		return
	}
	retryTx := common.Hash(redeem.RetryTxHash)
	out, err := r.chains.TransactionReceipt(ctx, childID, retryTx)
	if err == nil && out.Status == types.ReceiptStatusSuccessful {
		res.DestinationExecuted = true
		res.MessageStatus = MessageExecuted
		res.DestinationTxHash = &retryTx
	}
}
