package status

import (
	"time"

	"github.com/chainsafe/bridge-tracker/pkg/chainstatus"
	"github.com/chainsafe/bridge-tracker/pkg/network"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// Derivation is the derived view of one record.
type Derivation struct {
	Status transfer.Status `json:"status"`
	Rank   int             `json:"rank"`
	// ETA is the expected completion time in unix seconds, nil when unknown.
	ETA      *int64  `json:"eta,omitempty"`
	Progress float64 `json:"progress"`
}

// Deriver maps records and resolver output to statuses and ETAs.
type Deriver struct {
	networks network.Registries
	now      func() time.Time
}

// NewDeriver creates a deriver reading per-network windows from networks.
func NewDeriver(networks network.Registries) *Deriver {
	return &Deriver{networks: networks, now: time.Now}
}

// WithClock replaces the time source.
func (d *Deriver) WithClock(now func() time.Time) *Deriver {
	d.now = now
	return d
}

// Derive computes the status and ETA of rec. res may be nil when the chain
// could not be read; the derivation then relies on stored facts only.
// It does not consult or update rec.Status beyond using it as the fallback.
func (d *Deriver) Derive(rec *transfer.Record, res *chainstatus.Resolution) Derivation {
	var s transfer.Status
	switch rec.Kind {
	case transfer.Deposit:
		s = deriveDeposit(rec, res)
	case transfer.Withdrawal:
		s = deriveWithdrawal(rec, res)
	default:
		s = deriveClaim(rec, res)
	}

	out := Derivation{Status: s, Rank: Rank(s)}
	out.ETA = d.eta(rec)
	out.Progress = d.progress(rec, out.ETA, s)
	return out
}

func deriveDeposit(rec *transfer.Record, res *chainstatus.Resolution) transfer.Status {
	if rec.CompletionTimestamp != nil {
		return transfer.StatusCompleted
	}
	if res == nil {
		return fallback(rec)
	}
	switch {
	case res.Reverted, res.DestinationReverted:
		return transfer.StatusFailed
	case res.DestinationExecuted:
		return transfer.StatusCompleted
	case res.Mined:
		return transfer.StatusPendingOnDestination
	}
	return transfer.StatusSubmitted
}

func deriveWithdrawal(rec *transfer.Record, res *chainstatus.Resolution) transfer.Status {
	if rec.CompletionTimestamp != nil {
		return transfer.StatusExecuted
	}
	if res == nil {
		if rec.ClaimableTimestamp != nil {
			return transfer.StatusClaimable
		}
		return fallback(rec)
	}
	if res.Reverted {
		return transfer.StatusFailed
	}
	switch res.MessageStatus {
	case chainstatus.MessageExecuted:
		return transfer.StatusExecuted
	case chainstatus.MessageConfirmed:
		return transfer.StatusClaimable
	case chainstatus.MessageUnconfirmed:
		return transfer.StatusUnconfirmed
	}
	if rec.ClaimableTimestamp != nil {
		return transfer.StatusClaimable
	}
	if res.Mined {
		return transfer.StatusUnconfirmed
	}
	return transfer.StatusSubmitted
}

func deriveClaim(rec *transfer.Record, res *chainstatus.Resolution) transfer.Status {
	if rec.CompletionTimestamp != nil {
		return transfer.StatusExecuted
	}
	if res == nil {
		return fallback(rec)
	}
	if res.Reverted {
		return transfer.StatusFailed
	}
	if res.Mined {
		return transfer.StatusExecuted
	}
	return transfer.StatusSubmitted
}

func fallback(rec *transfer.Record) transfer.Status {
	if rec.Status != "" {
		return rec.Status
	}
	return transfer.StatusSubmitted
}

// eta is the submission time plus the child chain's retryable timeout for
// deposits, or the challenge period for withdrawals.
func (d *Deriver) eta(rec *transfer.Record) *int64 {
	anchor := rec.EffectiveTimestamp()
	if anchor == nil {
		return nil
	}

	var window int64
	switch rec.Kind {
	case transfer.Deposit:
		child, ok := d.networks.Lookup(rec.DestinationChainID)
		if !ok {
			return nil
		}
		window = int64(child.RetryableTimeout / time.Second)
	case transfer.Withdrawal:
		window = rec.ChallengePeriodSeconds
		if window == 0 {
			child, ok := d.networks.Lookup(rec.DestinationChainID)
			if !ok {
				return nil
			}
			window = int64(child.ChallengePeriod / time.Second)
		}
	default:
		return nil
	}
	eta := *anchor + window
	return &eta
}

// progress is clamp((now - anchor) / (eta - anchor), 0, 1); terminal
// records are always complete.
func (d *Deriver) progress(rec *transfer.Record, eta *int64, s transfer.Status) float64 {
	if s.Terminal() {
		return 1
	}
	anchor := rec.EffectiveTimestamp()
	if anchor == nil || eta == nil {
		return 0
	}
	span := *eta - *anchor
	if span <= 0 {
		return 1
	}
	p := float64(d.now().Unix()-*anchor) / float64(span)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
