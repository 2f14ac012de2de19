package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/bridge-tracker/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// GasEstimateComponents calls NodeInterface.gasEstimateComponents on chainID.
func (p *Pool) GasEstimateComponents(ctx context.Context, chainID uint64, to common.Address, contractCreation bool, data []byte) (*contracts.GasComponents, error) {
	n, ok := p.networks.Lookup(chainID)
	if !ok {
		return nil, transfer.NewValidationError("chainId", fmt.Sprint(chainID), fmt.Errorf("unknown chain"))
	}
	input, err := contracts.PackGasEstimateComponents(to, contractCreation, data)
	if err != nil {
		return nil, err
	}
	out, err := p.call(ctx, chainID, n.NodeInterface, input, "nodeInterface.gasEstimateComponents")
	if err != nil {
		return nil, err
	}
	return contracts.UnpackGasEstimateComponents(out)
}

// ConstructOutboxProof asks the child chain for the merkle proof of leaf
// against an outbox of the given size.
func (p *Pool) ConstructOutboxProof(ctx context.Context, childChainID uint64, size, leaf uint64) (*contracts.OutboxProof, error) {
	child, _, err := p.rollup(childChainID)
	if err != nil {
		return nil, err
	}
	input, err := contracts.PackConstructOutboxProof(size, leaf)
	if err != nil {
		return nil, err
	}
	out, err := p.call(ctx, child.ChainID, child.NodeInterface, input, "nodeInterface.constructOutboxProof")
	if err != nil {
		return nil, err
	}
	return contracts.UnpackConstructOutboxProof(out)
}
