package execution

import (
	"context"

	"github.com/chainsafe/bridge-tracker/pkg/chainstatus"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

type MockResolver struct {
	ResolveRecordFunc func(ctx context.Context, rec *transfer.Record) (*chainstatus.Resolution, error)
}

func (m *MockResolver) ResolveRecord(ctx context.Context, rec *transfer.Record) (*chainstatus.Resolution, error) {
	if m.ResolveRecordFunc != nil {
		return m.ResolveRecordFunc(ctx, rec)
	}
	return nil, nil
}

type MockSendCounter struct {
	ConfirmedSendCountFunc func(ctx context.Context, childChainID uint64) (uint64, error)
}

func (m *MockSendCounter) ConfirmedSendCount(ctx context.Context, childChainID uint64) (uint64, error) {
	if m.ConfirmedSendCountFunc != nil {
		return m.ConfirmedSendCountFunc(ctx, childChainID)
	}
	return 0, nil
}

type MockClaimer struct {
	ClaimFunc func(ctx context.Context, childChainID uint64, msg *contracts.L2ToL1Tx, sendCount uint64) (*ethereum.ClaimResult, error)
	calls     int
}

func (m *MockClaimer) Claim(ctx context.Context, childChainID uint64, msg *contracts.L2ToL1Tx, sendCount uint64) (*ethereum.ClaimResult, error) {
	m.calls++
	if m.ClaimFunc != nil {
		return m.ClaimFunc(ctx, childChainID, msg, sendCount)
	}
	return &ethereum.ClaimResult{}, nil
}
