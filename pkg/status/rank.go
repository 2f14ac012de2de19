// Package status derives the user-facing state and completion estimate of a
// transfer and keeps that state from moving backwards between polls.
package status

import (
	"time"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// TerminalRank is the rank shared by COMPLETED, EXECUTED and FAILED.
const TerminalRank = 3

// Rank orders statuses by lifecycle progress. Unknown values rank lowest.
func Rank(s transfer.Status) int {
	switch s {
	case transfer.StatusUnconfirmed, transfer.StatusPendingOnDestination:
		return 1
	case transfer.StatusClaimable:
		return 2
	case transfer.StatusCompleted, transfer.StatusExecuted, transfer.StatusFailed:
		return TerminalRank
	default:
		return 0
	}
}

// Notifiable reports whether reaching s is something the owner gets notified
// about: any failure, a completed deposit, a claimable or executed withdrawal.
func Notifiable(kind transfer.Kind, s transfer.Status) bool {
	switch {
	case s == transfer.StatusFailed:
		return true
	case kind == transfer.Deposit:
		return s == transfer.StatusCompleted
	case kind == transfer.Withdrawal:
		return s == transfer.StatusClaimable || s == transfer.StatusExecuted
	default:
		return false
	}
}

// Best picks the status to keep when next is derived for a record that last
// had prev. A terminal prev never changes and the rank never goes down.
func Best(prev, next transfer.Status) transfer.Status {
	if prev == "" {
		return next
	}
	if next == "" || prev.Terminal() {
		return prev
	}
	if Rank(next) < Rank(prev) {
		return prev
	}
	return next
}

// Apply merges next into rec through Best and reports whether the stored
// status changed. The claimable and completion timestamps are stamped the
// first time the record reaches those states.
func Apply(rec *transfer.Record, next transfer.Status, now time.Time) bool {
	best := Best(rec.Status, next)
	changed := best != rec.Status

	rec.Status = best
	rec.StatusRank = Rank(best)

	ts := now.Unix()
	switch best {
	case transfer.StatusClaimable:
		if rec.ClaimableTimestamp == nil {
			rec.ClaimableTimestamp = transfer.Int64(ts)
		}
	case transfer.StatusCompleted, transfer.StatusExecuted:
		if rec.CompletionTimestamp == nil {
			rec.CompletionTimestamp = transfer.Int64(ts)
		}
	}
	if changed {
		rec.LastUpdated = transfer.Int64(ts)
	}
	return changed
}
