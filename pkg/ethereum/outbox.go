package ethereum

import (
	"context"
	"fmt"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// IsSpent reports whether the withdrawal at position has been executed on the
// child chain's outbox.
func (p *Pool) IsSpent(ctx context.Context, childChainID uint64, position *big.Int) (bool, error) {
	child, parent, err := p.rollup(childChainID)
	if err != nil {
		return false, err
	}

	data, err := contracts.PackIsSpent(position)
	if err != nil {
		return false, err
	}
	out, err := p.call(ctx, parent.ChainID, child.Outbox, data, "outbox.isSpent")
	if err != nil {
		return false, err
	}
	return contracts.UnpackIsSpent(out)
}

// ConfirmedSendCount returns how many child-chain messages the outbox has
// confirmed: the send count of the child block named by the newest
// SendRootUpdated log within the lookback window.
func (p *Pool) ConfirmedSendCount(ctx context.Context, childChainID uint64) (uint64, error) {
	child, parent, err := p.rollup(childChainID)
	if err != nil {
		return 0, err
	}
	parentBackend, err := p.Backend(parent.ChainID)
	if err != nil {
		return 0, err
	}

	head, err := parentBackend.BlockNumber(ctx)
	if err != nil {
		return 0, classify(err, "eth_blockNumber", parent.ChainID, "")
	}
	from := uint64(0)
	if head > p.lookback {
		from = head - p.lookback
	}

	logs, err := parentBackend.FilterLogs(ctx, geth.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(head),
		Addresses: []common.Address{child.Outbox},
		Topics:    [][]common.Hash{{contracts.SendRootUpdatedTopic()}},
	})
	if err != nil {
		return 0, classify(err, "eth_getLogs", parent.ChainID, child.Outbox.Hex())
	}
	if len(logs) == 0 {
		return 0, &transfer.ChainStateError{ChainID: parent.ChainID, Hash: child.Outbox.Hex(), Reason: "no confirmed send root in lookback window"}
	}

	latest, err := contracts.ParseSendRootUpdated(logs[len(logs)-1])
	if err != nil {
		return 0, fmt.Errorf("failed to decode send root: %w", err)
	}
	blockHash := common.Hash(latest.L2BlockHash)
	if count, ok := p.sendCounts.Get(blockHash); ok {
		return count, nil
	}

	childBackend, err := p.Backend(child.ChainID)
	if err != nil {
		return 0, err
	}
	header, err := childBackend.HeaderByHash(ctx, blockHash)
	if err != nil {
		return 0, classify(err, "eth_getBlockByHash", child.ChainID, blockHash.Hex())
	}
	count := contracts.SendCountFromHeader(header)
	p.sendCounts.Add(blockHash, count)

	p.logger.Debug("Resolved confirmed send count",
		zap.Uint64("chain_id", child.ChainID),
		zap.String("block_hash", blockHash.Hex()),
		zap.Uint64("send_count", count))
	return count, nil
}
