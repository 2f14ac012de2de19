// Package network holds the chain registry for the three-tier rollup topology.
package network

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/bridge-tracker/pkg/config"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

var (
	// DefaultArbSys is the precompile emitting outbound messages on a rollup.
	DefaultArbSys = common.HexToAddress("0x0000000000000000000000000000000000000064")
	// DefaultNodeInterface is the virtual contract answering gas and proof queries.
	DefaultNodeInterface = common.HexToAddress("0x00000000000000000000000000000000000000C8")
)

// Network describes one chain.
type Network struct {
	Name          string
	ChainID       uint64
	ParentChainID uint64
	RPCURL        string
	ExplorerURL   string

	// Contracts on the parent chain serving this rollup.
	Inbox  common.Address
	Bridge common.Address
	Outbox common.Address
	Rollup common.Address

	// Contracts on this chain.
	ArbSys        common.Address
	NodeInterface common.Address

	ChallengePeriod  time.Duration
	RetryableTimeout time.Duration

	NativeSymbol   string
	NativeDecimals int
}

// IsRollup reports whether the network settles to a parent chain.
func (n Network) IsRollup() bool {
	return n.ParentChainID != 0
}

// Registry indexes networks of one network type by chain id.
type Registry struct {
	networkType transfer.NetworkType
	byID        map[uint64]Network
	order       []uint64
}

// NewRegistry validates the topology and builds a registry.
func NewRegistry(networkType transfer.NetworkType, networks []Network) (*Registry, error) {
	r := &Registry{
		networkType: networkType,
		byID:        make(map[uint64]Network, len(networks)),
	}
	for _, n := range networks {
		if n.ChainID == 0 {
			return nil, fmt.Errorf("network %q: chain id is required", n.Name)
		}
		if _, dup := r.byID[n.ChainID]; dup {
			return nil, fmt.Errorf("duplicate chain id %d", n.ChainID)
		}
		if n.ArbSys == (common.Address{}) {
			n.ArbSys = DefaultArbSys
		}
		if n.NodeInterface == (common.Address{}) {
			n.NodeInterface = DefaultNodeInterface
		}
		r.byID[n.ChainID] = n
		r.order = append(r.order, n.ChainID)
	}

	for _, id := range r.order {
		n := r.byID[id]
		if !n.IsRollup() {
			continue
		}
		if _, ok := r.byID[n.ParentChainID]; !ok {
			return nil, fmt.Errorf("network %d: unknown parent chain %d", id, n.ParentChainID)
		}
		if err := r.checkAcyclic(id); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) checkAcyclic(start uint64) error {
	seen := map[uint64]bool{start: true}
	cur := r.byID[start]
	for cur.IsRollup() {
		if seen[cur.ParentChainID] {
			return fmt.Errorf("network %d: parent chain cycle", start)
		}
		seen[cur.ParentChainID] = true
		cur = r.byID[cur.ParentChainID]
	}
	return nil
}

// NetworkType returns the family this registry was built for.
func (r *Registry) NetworkType() transfer.NetworkType {
	return r.networkType
}

// Get looks a network up by chain id.
func (r *Registry) Get(chainID uint64) (Network, bool) {
	n, ok := r.byID[chainID]
	return n, ok
}

// MustGet is Get returning a ValidationError for unknown chains.
func (r *Registry) MustGet(chainID uint64) (Network, error) {
	n, ok := r.byID[chainID]
	if !ok {
		return Network{}, transfer.NewValidationError("chainId", fmt.Sprint(chainID), fmt.Errorf("not configured for %s", r.networkType))
	}
	return n, nil
}

// Parent returns the parent of a rollup.
func (r *Registry) Parent(chainID uint64) (Network, bool) {
	n, ok := r.byID[chainID]
	if !ok || !n.IsRollup() {
		return Network{}, false
	}
	return r.Get(n.ParentChainID)
}

// All returns the networks in configuration order.
func (r *Registry) All() []Network {
	out := make([]Network, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Registries holds one registry per network type.
type Registries map[transfer.NetworkType]*Registry

// For returns the registry of a network type.
func (rs Registries) For(nt transfer.NetworkType) (*Registry, error) {
	r, ok := rs[nt]
	if !ok {
		return nil, transfer.NewValidationError("networkType", string(nt), fmt.Errorf("not configured"))
	}
	return r, nil
}

// Lookup finds a chain in any registry.
func (rs Registries) Lookup(chainID uint64) (Network, bool) {
	for _, r := range rs {
		if n, ok := r.Get(chainID); ok {
			return n, true
		}
	}
	return Network{}, false
}

// FromConfig builds registries for every configured network type.
func FromConfig(cfg map[string][]config.NetworkConfig) (Registries, error) {
	out := make(Registries, len(cfg))
	for name, chains := range cfg {
		nt, err := transfer.ParseNetworkType(name)
		if err != nil {
			return nil, err
		}
		networks := make([]Network, 0, len(chains))
		for _, c := range chains {
			networks = append(networks, Network{
				Name:             c.Name,
				ChainID:          c.ChainID,
				ParentChainID:    c.ParentChainID,
				RPCURL:           c.RPCURL,
				ExplorerURL:      c.ExplorerURL,
				Inbox:            common.HexToAddress(c.Inbox),
				Bridge:           common.HexToAddress(c.Bridge),
				Outbox:           common.HexToAddress(c.Outbox),
				Rollup:           common.HexToAddress(c.Rollup),
				ArbSys:           common.HexToAddress(c.ArbSys),
				NodeInterface:    common.HexToAddress(c.NodeInterface),
				ChallengePeriod:  c.ChallengePeriod,
				RetryableTimeout: c.RetryableTimeout,
				NativeSymbol:     c.NativeCurrency.Symbol,
				NativeDecimals:   c.NativeCurrency.Decimals,
			})
		}
		reg, err := NewRegistry(nt, networks)
		if err != nil {
			return nil, fmt.Errorf("%s networks: %w", nt, err)
		}
		out[nt] = reg
	}
	return out, nil
}
