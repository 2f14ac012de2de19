package ethereum

import (
	"context"
	"errors"
	"fmt"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// classify maps RPC failures onto the transfer error taxonomy. Missing
// objects are chain state, node replies are returned as plain errors and
// everything else is a network error.
func classify(err error, op string, chainID uint64, ref string) error {
	switch {
	case errors.Is(err, geth.NotFound):
		return &transfer.ChainStateError{ChainID: chainID, Hash: ref, Reason: "not found"}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%s on chain %d: %w", op, chainID, err)
	}
	return transfer.NewNetworkError(fmt.Sprintf("%s on chain %d", op, chainID), err)
}

// revertData extracts the raw revert payload a node attached to a call error.
func revertData(err error) []byte {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil
	}
	switch d := dataErr.ErrorData().(type) {
	case string:
		return common.FromHex(d)
	case []byte:
		return d
	default:
		return nil
	}
}

func ethCallMsg(to common.Address, data []byte) geth.CallMsg {
	return geth.CallMsg{To: &to, Data: data}
}
