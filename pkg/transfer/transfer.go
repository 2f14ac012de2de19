// Package transfer defines the bridge transfer record shared by the store,
// the reconciliation engine and the status deriver.
package transfer

import (
	"fmt"
	"strings"
)

// Kind is the type of a bridge transfer.
type Kind string

const (
	// Deposit moves funds from a parent (low) network to its child (high) network.
	Deposit Kind = "DEPOSIT"
	// Withdrawal moves funds from a child (high) network down to its parent.
	Withdrawal Kind = "WITHDRAWAL"
	// Claim is the parent-network transaction releasing a confirmed withdrawal.
	Claim Kind = "CLAIM"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case Deposit, Withdrawal, Claim:
		return true
	default:
		return false
	}
}

// Status is the derived lifecycle state of a record.
type Status string

const (
	StatusSubmitted            Status = "SUBMITTED"
	StatusPendingOnDestination Status = "PENDING_ON_DESTINATION"
	StatusCompleted            Status = "COMPLETED"
	StatusUnconfirmed          Status = "UNCONFIRMED"
	StatusClaimable            Status = "CLAIMABLE"
	StatusExecuted             Status = "EXECUTED"
	StatusFailed               Status = "FAILED"
)

// Terminal reports whether s can no longer change.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusExecuted || s == StatusFailed
}

// NetworkType selects a family of networks (production or test).
type NetworkType string

const (
	Mainnet NetworkType = "Mainnet"
	Testnet NetworkType = "Testnet"
)

// ParseNetworkType accepts the canonical names case-insensitively.
func ParseNetworkType(s string) (NetworkType, error) {
	switch strings.ToLower(s) {
	case "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	default:
		return "", NewValidationError("networkType", s, fmt.Errorf("unknown network type"))
	}
}

// Record is a single bridge transfer as seen by the local store.
//
// Origin* fields describe the parent (low network) leg and Destination* fields
// the child (high network) leg, following the parent/child layout of the
// history feed. A DEPOSIT is submitted on the origin leg, a WITHDRAWAL on the
// destination leg.
type Record struct {
	Kind   Kind   `json:"type"`
	Amount string `json:"amount"`

	OriginChainID      uint64 `json:"originChainId"`
	DestinationChainID uint64 `json:"destinationChainId"`
	OriginHash         string `json:"originHash,omitempty"`
	DestinationHash    string `json:"destinationHash,omitempty"`

	OriginTimestamp      *int64 `json:"originTimestamp,omitempty"`
	DestinationTimestamp *int64 `json:"destinationTimestamp,omitempty"`
	CompletionTimestamp  *int64 `json:"completionTimestamp,omitempty"`
	ClaimableTimestamp   *int64 `json:"claimableTimestamp,omitempty"`

	ChallengePeriodSeconds int64 `json:"challengePeriodSeconds,omitempty"`

	TokenAddress            string `json:"tokenAddress,omitempty"`
	DestinationTokenAddress string `json:"destinationTokenAddress,omitempty"`
	Symbol                  string `json:"symbol,omitempty"`
	CCTP                    bool   `json:"cctp,omitempty"`

	Status      Status `json:"status,omitempty"`
	StatusRank  int    `json:"statusRank,omitempty"`
	LastUpdated *int64 `json:"lastUpdated,omitempty"`

	IsNewlyObserved bool `json:"isNewlyObserved,omitempty"`
	Seen            bool `json:"seen,omitempty"`
}

// Key returns the dedup key: the parent-leg hash for deposits and claims,
// the child-leg hash for withdrawals. Keys are lower-cased.
func (r *Record) Key() string {
	if r.Kind == Withdrawal {
		return strings.ToLower(r.DestinationHash)
	}
	return strings.ToLower(r.OriginHash)
}

// EffectiveTimestamp is the submission time used for ordering and ETA.
func (r *Record) EffectiveTimestamp() *int64 {
	if r.Kind == Withdrawal {
		return r.DestinationTimestamp
	}
	return r.OriginTimestamp
}

// SubmittedChainID is the chain the user's transaction was sent to.
func (r *Record) SubmittedChainID() uint64 {
	if r.Kind == Withdrawal {
		return r.DestinationChainID
	}
	return r.OriginChainID
}

// CounterpartChainID is the other leg of the transfer.
func (r *Record) CounterpartChainID() uint64 {
	if r.Kind == Withdrawal {
		return r.OriginChainID
	}
	return r.DestinationChainID
}

// SubmittedHash is the hash of the user's transaction.
func (r *Record) SubmittedHash() string {
	if r.Kind == Withdrawal {
		return r.DestinationHash
	}
	return r.OriginHash
}

// CounterpartHash is the hash observed on the other leg, if any.
func (r *Record) CounterpartHash() string {
	if r.Kind == Withdrawal {
		return r.OriginHash
	}
	return r.DestinationHash
}

// HasTokenMetadata reports whether the indexer enrichment is present.
func (r *Record) HasTokenMetadata() bool {
	return r.Symbol != "" || r.TokenAddress != ""
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	r.OriginTimestamp = cloneInt(r.OriginTimestamp)
	r.DestinationTimestamp = cloneInt(r.DestinationTimestamp)
	r.CompletionTimestamp = cloneInt(r.CompletionTimestamp)
	r.ClaimableTimestamp = cloneInt(r.ClaimableTimestamp)
	r.LastUpdated = cloneInt(r.LastUpdated)
	return r
}

func cloneInt(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}

// Identity addresses one record set: a connected address on one network type.
type Identity struct {
	Address     string      `json:"address"`
	NetworkType NetworkType `json:"networkType"`
}

// NewIdentity normalizes the address and validates both parts.
func NewIdentity(address string, networkType string) (Identity, error) {
	addr, err := NormalizeAddress(address)
	if err != nil {
		return Identity{}, err
	}
	nt, err := ParseNetworkType(networkType)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Address: addr, NetworkType: nt}, nil
}

// StoreKey is the key-value address of the identity's record set.
func (id Identity) StoreKey() string {
	return fmt.Sprintf("bridge-%s-transactions-%s", strings.ToLower(id.Address), id.NetworkType)
}

func (id Identity) String() string {
	return id.StoreKey()
}
