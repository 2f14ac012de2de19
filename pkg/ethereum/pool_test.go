package ethereum

import (
	"context"
	"encoding/binary"
	"errors"
	"math/big"
	"testing"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-tracker/pkg/network"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const (
	l1ID = 11155111
	l2ID = 421614
	l3ID = 13746
)

var (
	l3Outbox = common.HexToAddress("0x64105c6C1C1b0a8a1D3e8F3E07a8b7e2B8E0F3A1")
	l3Inbox  = common.HexToAddress("0xB6A3e1e6A5D4C0F7E2b5a1c9D8E7F6A5B4C3D2E1")
)

// fakeBackend implements the calls the pool makes; anything else panics
// through the nil embedded interface.
type fakeBackend struct {
	Backend

	receipts  map[common.Hash]*types.Receipt
	head      uint64
	logs      []types.Log
	headers   map[common.Hash]*types.Header
	callOut   map[common.Address][]byte
	callErr   error
	netErr    error
	headerHit int
	lastQuery geth.FilterQuery
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, h common.Hash) (*types.Receipt, error) {
	if f.netErr != nil {
		return nil, f.netErr
	}
	r, ok := f.receipts[h]
	if !ok {
		return nil, geth.NotFound
	}
	return r, nil
}

func (f *fakeBackend) BlockNumber(context.Context) (uint64, error) { return f.head, f.netErr }

func (f *fakeBackend) HeaderByNumber(_ context.Context, n *big.Int) (*types.Header, error) {
	return &types.Header{Number: n, Time: 1700000000 + n.Uint64()}, nil
}

func (f *fakeBackend) HeaderByHash(_ context.Context, h common.Hash) (*types.Header, error) {
	f.headerHit++
	hdr, ok := f.headers[h]
	if !ok {
		return nil, geth.NotFound
	}
	return hdr, nil
}

func (f *fakeBackend) FilterLogs(_ context.Context, q geth.FilterQuery) ([]types.Log, error) {
	f.lastQuery = q
	return f.logs, f.netErr
}

func (f *fakeBackend) CallContract(_ context.Context, msg geth.CallMsg, _ *big.Int) ([]byte, error) {
	if f.callErr != nil {
		return nil, f.callErr
	}
	return f.callOut[*msg.To], nil
}

func testRegistries(t *testing.T) network.Registries {
	t.Helper()
	reg, err := network.NewRegistry(transfer.Testnet, []network.Network{
		{Name: "sepolia", ChainID: l1ID},
		{Name: "arbitrum-sepolia", ChainID: l2ID, ParentChainID: l1ID},
		{Name: "g7-testnet", ChainID: l3ID, ParentChainID: l2ID, Outbox: l3Outbox, Inbox: l3Inbox, ChallengePeriod: time.Hour},
	})
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}
	return network.Registries{transfer.Testnet: reg}
}

func newTestPool(t *testing.T, backends map[uint64]*fakeBackend) *Pool {
	t.Helper()
	bs := make(map[uint64]Backend, len(backends))
	for id, b := range backends {
		bs[id] = b
	}
	return NewPool(testRegistries(t), bs, zap.NewNop())
}

func TestTransactionReceipt_Classification(t *testing.T) {
	known := crypto.Keccak256Hash([]byte("known"))
	l2 := &fakeBackend{receipts: map[common.Hash]*types.Receipt{known: {Status: 1}}}
	pool := newTestPool(t, map[uint64]*fakeBackend{l2ID: l2})
	ctx := context.Background()

	if r, err := pool.TransactionReceipt(ctx, l2ID, known); err != nil || r.Status != 1 {
		t.Fatalf("TransactionReceipt() = %v, %v", r, err)
	}
	if _, err := pool.TransactionReceipt(ctx, l2ID, crypto.Keccak256Hash([]byte("pending"))); !transfer.IsChainState(err) {
		t.Fatalf("expected chain state error, got %v", err)
	}

	l2.netErr = errors.New("connection refused")
	if _, err := pool.TransactionReceipt(ctx, l2ID, known); !transfer.IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}

	if _, err := pool.TransactionReceipt(ctx, 999, known); !transfer.IsValidation(err) {
		t.Fatalf("expected validation error for unknown chain, got %v", err)
	}
}

func TestBlockTime(t *testing.T) {
	pool := newTestPool(t, map[uint64]*fakeBackend{l1ID: {}})
	ts, err := pool.BlockTime(context.Background(), l1ID, 10)
	if err != nil || ts != 1700000010 {
		t.Fatalf("BlockTime() = %d, %v", ts, err)
	}
}

func TestIsSpent(t *testing.T) {
	out, _ := contracts.OutboxABI().Methods["isSpent"].Outputs.Pack(true)
	l2 := &fakeBackend{callOut: map[common.Address][]byte{l3Outbox: out}}
	pool := newTestPool(t, map[uint64]*fakeBackend{l2ID: l2, l3ID: {}})

	spent, err := pool.IsSpent(context.Background(), l3ID, big.NewInt(4))
	if err != nil || !spent {
		t.Fatalf("IsSpent() = %v, %v", spent, err)
	}

	if _, err := pool.IsSpent(context.Background(), l1ID, big.NewInt(4)); !transfer.IsValidation(err) {
		t.Fatalf("expected validation error for a non-rollup chain, got %v", err)
	}
}

func TestConfirmedSendCount(t *testing.T) {
	oldBlock := crypto.Keccak256Hash([]byte("old"))
	newBlock := crypto.Keccak256Hash([]byte("new"))
	topic := contracts.SendRootUpdatedTopic()

	var mix common.Hash
	binary.BigEndian.PutUint64(mix[:8], 321)

	l2 := &fakeBackend{
		head: 100_000,
		logs: []types.Log{
			{Address: l3Outbox, Topics: []common.Hash{topic, crypto.Keccak256Hash([]byte("r1")), oldBlock}},
			{Address: l3Outbox, Topics: []common.Hash{topic, crypto.Keccak256Hash([]byte("r2")), newBlock}},
		},
	}
	l3 := &fakeBackend{headers: map[common.Hash]*types.Header{newBlock: {MixDigest: mix}}}
	pool := newTestPool(t, map[uint64]*fakeBackend{l2ID: l2, l3ID: l3})
	pool.SetLogLookback(1000)
	ctx := context.Background()

	count, err := pool.ConfirmedSendCount(ctx, l3ID)
	if err != nil || count != 321 {
		t.Fatalf("ConfirmedSendCount() = %d, %v", count, err)
	}
	if l2.lastQuery.FromBlock.Uint64() != 99_000 || l2.lastQuery.Addresses[0] != l3Outbox {
		t.Fatalf("unexpected filter query: %+v", l2.lastQuery)
	}

	// cached per block hash
	if _, err := pool.ConfirmedSendCount(ctx, l3ID); err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if l3.headerHit != 1 {
		t.Fatalf("expected one header lookup, got %d", l3.headerHit)
	}
}

func TestConfirmedSendCount_NoConfirmations(t *testing.T) {
	pool := newTestPool(t, map[uint64]*fakeBackend{l2ID: {head: 10}, l3ID: {}})
	if _, err := pool.ConfirmedSendCount(context.Background(), l3ID); !transfer.IsChainState(err) {
		t.Fatalf("expected chain state error, got %v", err)
	}
}

func TestGasEstimateComponents(t *testing.T) {
	out, _ := contracts.NodeInterfaceABI().Methods["gasEstimateComponents"].Outputs.Pack(
		uint64(210000), uint64(150000), big.NewInt(100), big.NewInt(50))
	l3 := &fakeBackend{callOut: map[common.Address][]byte{network.DefaultNodeInterface: out}}
	pool := newTestPool(t, map[uint64]*fakeBackend{l3ID: l3})

	gc, err := pool.GasEstimateComponents(context.Background(), l3ID, common.Address{1}, false, nil)
	if err != nil {
		t.Fatalf("GasEstimateComponents() failed: %v", err)
	}
	if gc.GasEstimate != 210000 || gc.L1BaseFeeEstimate.Int64() != 50 {
		t.Fatalf("unexpected components: %+v", gc)
	}
}
