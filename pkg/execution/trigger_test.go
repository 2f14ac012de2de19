package execution

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/chainstatus"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const withdrawalHash = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func claimable() *transfer.Record {
	return &transfer.Record{
		Kind:               transfer.Withdrawal,
		OriginChainID:      421614,
		DestinationChainID: 13746,
		DestinationHash:    withdrawalHash,
		Status:             transfer.StatusClaimable,
	}
}

func resolved(status chainstatus.MessageStatus) *MockResolver {
	return &MockResolver{ResolveRecordFunc: func(context.Context, *transfer.Record) (*chainstatus.Resolution, error) {
		return &chainstatus.Resolution{
			Mined:         true,
			MessageStatus: status,
			Message:       &contracts.L2ToL1Tx{Position: big.NewInt(5)},
		}, nil
	}}
}

func sendCount(n uint64) *MockSendCounter {
	return &MockSendCounter{ConfirmedSendCountFunc: func(context.Context, uint64) (uint64, error) { return n, nil }}
}

func TestExecute_Success(t *testing.T) {
	txHash := common.HexToHash("0x01")
	claimer := &MockClaimer{ClaimFunc: func(_ context.Context, child uint64, msg *contracts.L2ToL1Tx, count uint64) (*ethereum.ClaimResult, error) {
		if child != 13746 || msg.Position.Int64() != 5 || count != 9 {
			t.Fatalf("unexpected claim args: %d %s %d", child, msg.Position, count)
		}
		return &ethereum.ClaimResult{TxHash: txHash, BlockNumber: 10, GasUsed: 120000}, nil
	}}
	trigger := NewTrigger(resolved(chainstatus.MessageConfirmed), sendCount(9), claimer, zap.NewNop())

	res, err := trigger.Execute(context.Background(), claimable(), transfer.StatusClaimable)
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if res.TxHash != txHash {
		t.Fatalf("TxHash = %s", res.TxHash.Hex())
	}
}

func TestExecute_RejectsIneligible(t *testing.T) {
	trigger := NewTrigger(resolved(chainstatus.MessageConfirmed), sendCount(9), &MockClaimer{}, zap.NewNop())

	dep := claimable()
	dep.Kind = transfer.Deposit
	dep.OriginHash = withdrawalHash
	if _, err := trigger.Execute(context.Background(), dep, transfer.StatusClaimable); !transfer.IsValidation(err) {
		t.Fatalf("expected validation error for deposit, got %v", err)
	}
	if _, err := trigger.Execute(context.Background(), claimable(), transfer.StatusUnconfirmed); !transfer.IsValidation(err) {
		t.Fatalf("expected validation error for unconfirmed, got %v", err)
	}
}

func TestExecute_ReResolvesBeforeSubmitting(t *testing.T) {
	tests := []struct {
		name   string
		status chainstatus.MessageStatus
		want   transfer.RevertClass
	}{
		{"executed since last poll", chainstatus.MessageExecuted, transfer.AlreadyExecuted},
		{"confirmation rolled back", chainstatus.MessageUnconfirmed, transfer.NotYetConfirmed},
		{"outbox unreadable", chainstatus.MessageUnknown, transfer.NotYetConfirmed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claimer := &MockClaimer{}
			trigger := NewTrigger(resolved(tt.status), sendCount(9), claimer, zap.NewNop())

			_, err := trigger.Execute(context.Background(), claimable(), transfer.StatusClaimable)
			execErr, ok := transfer.AsExecution(err)
			if !ok || execErr.Class != tt.want {
				t.Fatalf("expected %s, got %v", tt.want, err)
			}
			if claimer.calls != 0 {
				t.Fatal("claim must not be submitted")
			}
		})
	}
}

func TestExecute_ClassifiesReverts(t *testing.T) {
	tests := []struct {
		reason string
		want   transfer.RevertClass
	}{
		{"AlreadySpent", transfer.AlreadyExecuted},
		{"UnknownRoot", transfer.NotYetConfirmed},
		{"execution reverted: ProofTooLong", transfer.GenericRevert},
	}
	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			claimer := &MockClaimer{ClaimFunc: func(context.Context, uint64, *contracts.L2ToL1Tx, uint64) (*ethereum.ClaimResult, error) {
				return nil, &ethereum.RevertError{TxHash: common.HexToHash("0x02"), Reason: tt.reason}
			}}
			trigger := NewTrigger(resolved(chainstatus.MessageConfirmed), sendCount(9), claimer, zap.NewNop())

			_, err := trigger.Execute(context.Background(), claimable(), transfer.StatusClaimable)
			execErr, ok := transfer.AsExecution(err)
			if !ok || execErr.Class != tt.want {
				t.Fatalf("expected %s, got %v", tt.want, err)
			}
			if execErr.TxHash != common.HexToHash("0x02").Hex() || claimer.calls != 1 {
				t.Fatalf("unexpected error %+v after %d calls", execErr, claimer.calls)
			}
		})
	}
}

func TestExecute_NetworkErrorIsNotExecutionError(t *testing.T) {
	claimer := &MockClaimer{ClaimFunc: func(context.Context, uint64, *contracts.L2ToL1Tx, uint64) (*ethereum.ClaimResult, error) {
		return nil, transfer.NewNetworkError("eth_sendRawTransaction", errors.New("timeout"))
	}}
	trigger := NewTrigger(resolved(chainstatus.MessageConfirmed), sendCount(9), claimer, zap.NewNop())

	_, err := trigger.Execute(context.Background(), claimable(), transfer.StatusClaimable)
	if _, ok := transfer.AsExecution(err); ok || !transfer.IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	if claimer.calls != 1 {
		t.Fatalf("claims must never be retried, got %d calls", claimer.calls)
	}
}

func TestExecute_InFlightGuard(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	claimer := &MockClaimer{ClaimFunc: func(context.Context, uint64, *contracts.L2ToL1Tx, uint64) (*ethereum.ClaimResult, error) {
		close(entered)
		<-release
		return &ethereum.ClaimResult{}, nil
	}}
	trigger := NewTrigger(resolved(chainstatus.MessageConfirmed), sendCount(9), claimer, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := trigger.Execute(context.Background(), claimable(), transfer.StatusClaimable)
		done <- err
	}()
	<-entered

	if _, err := trigger.Execute(context.Background(), claimable(), transfer.StatusClaimable); !transfer.IsValidation(err) {
		t.Fatalf("expected concurrent claim to be rejected, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first claim failed: %v", err)
	}

	// the guard is released afterwards
	claimer.ClaimFunc = nil
	if _, err := trigger.Execute(context.Background(), claimable(), transfer.StatusClaimable); err != nil {
		t.Fatalf("claim after release failed: %v", err)
	}
}

func TestClassifyRevert(t *testing.T) {
	tests := map[string]transfer.RevertClass{
		"AlreadySpent":             transfer.AlreadyExecuted,
		"withdrawal already spent": transfer.AlreadyExecuted,
		"UnknownRoot":              transfer.NotYetConfirmed,
		"root not confirmed":       transfer.NotYetConfirmed,
		"not yet claimable":        transfer.NotYetConfirmed,
		"out of gas":               transfer.GenericRevert,
		"":                         transfer.GenericRevert,
	}
	for reason, want := range tests {
		if got := ClassifyRevert(reason); got != want {
			t.Errorf("ClassifyRevert(%q) = %s, want %s", reason, got, want)
		}
	}
}
