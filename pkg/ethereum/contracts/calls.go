package contracts

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// GasComponents is the NodeInterface gasEstimateComponents result.
type GasComponents struct {
	GasEstimate       uint64
	GasEstimateForL1  uint64
	BaseFee           *big.Int
	L1BaseFeeEstimate *big.Int
}

// OutboxProof is the NodeInterface constructOutboxProof result.
type OutboxProof struct {
	Send  [32]byte
	Root  [32]byte
	Proof [][32]byte
}

// PackGasEstimateComponents encodes a gasEstimateComponents call.
func PackGasEstimateComponents(to common.Address, contractCreation bool, data []byte) ([]byte, error) {
	if data == nil {
		data = []byte{}
	}
	return nodeInterfaceABI.Pack("gasEstimateComponents", to, contractCreation, data)
}

// UnpackGasEstimateComponents decodes the gasEstimateComponents return data.
func UnpackGasEstimateComponents(out []byte) (*GasComponents, error) {
	gc := new(GasComponents)
	if err := nodeInterfaceABI.UnpackIntoInterface(gc, "gasEstimateComponents", out); err != nil {
		return nil, fmt.Errorf("failed to unpack gasEstimateComponents: %w", err)
	}
	return gc, nil
}

// PackConstructOutboxProof encodes a constructOutboxProof call.
func PackConstructOutboxProof(size, leaf uint64) ([]byte, error) {
	return nodeInterfaceABI.Pack("constructOutboxProof", size, leaf)
}

// UnpackConstructOutboxProof decodes the constructOutboxProof return data.
func UnpackConstructOutboxProof(out []byte) (*OutboxProof, error) {
	p := new(OutboxProof)
	if err := nodeInterfaceABI.UnpackIntoInterface(p, "constructOutboxProof", out); err != nil {
		return nil, fmt.Errorf("failed to unpack constructOutboxProof: %w", err)
	}
	return p, nil
}

// PackIsSpent encodes an Outbox isSpent call.
func PackIsSpent(index *big.Int) ([]byte, error) {
	return outboxABI.Pack("isSpent", index)
}

// UnpackIsSpent decodes the isSpent return data.
func UnpackIsSpent(out []byte) (bool, error) {
	vals, err := outboxABI.Unpack("isSpent", out)
	if err != nil {
		return false, fmt.Errorf("failed to unpack isSpent: %w", err)
	}
	if len(vals) != 1 {
		return false, fmt.Errorf("isSpent returned %d values", len(vals))
	}
	return *abi.ConvertType(vals[0], new(bool)).(*bool), nil
}

// ExecuteTransactionArgs orders the Outbox executeTransaction parameters for
// the message.
func (m *L2ToL1Tx) ExecuteTransactionArgs(proof [][32]byte) []any {
	data := m.Data
	if data == nil {
		data = []byte{}
	}
	return []any{
		proof,
		m.Position,
		m.Caller,
		m.Destination,
		m.ArbBlockNum,
		m.EthBlockNum,
		m.Timestamp,
		m.Callvalue,
		data,
	}
}

// OutboxErrorName resolves a custom error selector in revert data against the
// Outbox ABI. It returns "" when the selector is unknown.
func OutboxErrorName(revertData []byte) string {
	if len(revertData) < 4 {
		return ""
	}
	for name, e := range outboxABI.Errors {
		if bytes.Equal(e.ID[:4], revertData[:4]) {
			return name
		}
	}
	return ""
}
