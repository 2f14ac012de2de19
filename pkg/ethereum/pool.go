// Package ethereum holds the per-chain RPC clients and the read and write
// paths the tracker needs against the rollup contracts.
package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/network"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const (
	// DefaultLogLookback bounds the outbox log scan for the latest confirmation.
	DefaultLogLookback uint64 = 50_000
	sendCountCacheSize        = 1024
)

// Backend is the subset of ethclient.Client the pool uses.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByHash(ctx context.Context, hash common.Hash) (*types.Header, error)
}

// Pool holds one RPC backend per configured chain. It is safe for concurrent use.
type Pool struct {
	networks network.Registries
	logger   *zap.Logger
	lookback uint64

	mu       sync.RWMutex
	backends map[uint64]Backend
	closers  []func()

	// confirmed send counts keyed by child block hash never change
	sendCounts *lru.Cache[common.Hash, uint64]
}

// NewPool wraps already-constructed backends.
func NewPool(networks network.Registries, backends map[uint64]Backend, logger *zap.Logger) *Pool {
	cache, _ := lru.New[common.Hash, uint64](sendCountCacheSize)
	return &Pool{
		networks:   networks,
		logger:     logger,
		lookback:   DefaultLogLookback,
		backends:   backends,
		sendCounts: cache,
	}
}

// Dial connects to every configured chain.
func Dial(ctx context.Context, networks network.Registries, logger *zap.Logger) (*Pool, error) {
	backends := make(map[uint64]Backend)
	var closers []func()
	for _, reg := range networks {
		for _, n := range reg.All() {
			client, err := ethclient.DialContext(ctx, n.RPCURL)
			if err != nil {
				for _, c := range closers {
					c()
				}
				return nil, fmt.Errorf("failed to connect to %s (%d): %w", n.Name, n.ChainID, err)
			}
			backends[n.ChainID] = client
			closers = append(closers, client.Close)

			logger.Info("Connected to chain",
				zap.String("network", n.Name),
				zap.Uint64("chain_id", n.ChainID),
				zap.String("network_type", string(reg.NetworkType())))
		}
	}

	p := NewPool(networks, backends, logger)
	p.closers = closers
	return p, nil
}

// SetLogLookback overrides the outbox log scan window.
func (p *Pool) SetLogLookback(blocks uint64) {
	if blocks > 0 {
		p.lookback = blocks
	}
}

// Close closes every dialed client.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.closers {
		c()
	}
	p.closers = nil
}

// Backend returns the RPC backend of a chain.
func (p *Pool) Backend(chainID uint64) (Backend, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	b, ok := p.backends[chainID]
	if !ok {
		return nil, transfer.NewValidationError("chainId", fmt.Sprint(chainID), fmt.Errorf("no rpc configured"))
	}
	return b, nil
}

// rollup returns a child network together with its parent.
func (p *Pool) rollup(childChainID uint64) (network.Network, network.Network, error) {
	child, ok := p.networks.Lookup(childChainID)
	if !ok {
		return network.Network{}, network.Network{}, transfer.NewValidationError("chainId", fmt.Sprint(childChainID), fmt.Errorf("unknown chain"))
	}
	if !child.IsRollup() {
		return network.Network{}, network.Network{}, transfer.NewValidationError("chainId", fmt.Sprint(childChainID), fmt.Errorf("not a rollup"))
	}
	parent, ok := p.networks.Lookup(child.ParentChainID)
	if !ok {
		return network.Network{}, network.Network{}, transfer.NewValidationError("chainId", fmt.Sprint(child.ParentChainID), fmt.Errorf("unknown parent chain"))
	}
	return child, parent, nil
}

// TransactionReceipt fetches a receipt. A receipt that does not exist yet is
// reported as a ChainStateError.
func (p *Pool) TransactionReceipt(ctx context.Context, chainID uint64, hash common.Hash) (*types.Receipt, error) {
	b, err := p.Backend(chainID)
	if err != nil {
		return nil, err
	}
	receipt, err := b.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, classify(err, "eth_getTransactionReceipt", chainID, hash.Hex())
	}
	return receipt, nil
}

// BlockNumber returns the chain head.
func (p *Pool) BlockNumber(ctx context.Context, chainID uint64) (uint64, error) {
	b, err := p.Backend(chainID)
	if err != nil {
		return 0, err
	}
	n, err := b.BlockNumber(ctx)
	if err != nil {
		return 0, classify(err, "eth_blockNumber", chainID, "")
	}
	return n, nil
}

// BlockTime returns the unix timestamp of a block.
func (p *Pool) BlockTime(ctx context.Context, chainID uint64, number uint64) (uint64, error) {
	b, err := p.Backend(chainID)
	if err != nil {
		return 0, err
	}
	h, err := b.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return 0, classify(err, "eth_getBlockByNumber", chainID, fmt.Sprint(number))
	}
	return h.Time, nil
}

func (p *Pool) call(ctx context.Context, chainID uint64, to common.Address, data []byte, op string) ([]byte, error) {
	b, err := p.Backend(chainID)
	if err != nil {
		return nil, err
	}
	out, err := b.CallContract(ctx, ethCallMsg(to, data), nil)
	if err != nil {
		return nil, classify(err, op, chainID, to.Hex())
	}
	return out, nil
}
