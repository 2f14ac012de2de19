package tracker

import (
	"sort"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// NotificationStatus is the user-facing outcome of a finished transfer.
type NotificationStatus string

const (
	NotificationFailed    NotificationStatus = "FAILED"
	NotificationCompleted NotificationStatus = "COMPLETED"
	NotificationClaimable NotificationStatus = "CLAIMABLE"
)

// Notification tells the owner a transfer finished or needs a claim.
type Notification struct {
	Key       string             `json:"key"`
	Kind      transfer.Kind      `json:"type"`
	Status    NotificationStatus `json:"status"`
	Amount    string             `json:"amount"`
	Symbol    string             `json:"symbol,omitempty"`
	ToChainID uint64             `json:"to"`
	Timestamp int64              `json:"timestamp"`
	Seen      bool               `json:"seen"`
	Record    transfer.Record    `json:"tx"`
}

// Notifications derives the notifications of records: failed transfers,
// completed deposits and withdrawals that became claimable or executed.
// Claimable withdrawals come first, then newest first.
func Notifications(records []transfer.Record, now int64) []Notification {
	out := make([]Notification, 0)
	for i := range records {
		n, ok := notificationFor(&records[i], now)
		if ok {
			out = append(out, n)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].Status == NotificationClaimable, out[j].Status == NotificationClaimable
		if ci != cj {
			return ci
		}
		return effective(&out[i].Record) > effective(&out[j].Record)
	})
	return out
}

// UnseenCount is the number of notifications the owner has not seen.
func UnseenCount(notifications []Notification) int {
	n := 0
	for i := range notifications {
		if !notifications[i].Seen {
			n++
		}
	}
	return n
}

// MarkSeen flags every record as seen and returns the ones that changed.
func MarkSeen(records []transfer.Record) []transfer.Record {
	changed := make([]transfer.Record, 0)
	for i := range records {
		if records[i].Seen && !records[i].IsNewlyObserved {
			continue
		}
		r := records[i].Clone()
		r.Seen = true
		r.IsNewlyObserved = false
		changed = append(changed, r)
	}
	return changed
}

func notificationFor(r *transfer.Record, now int64) (Notification, bool) {
	var st NotificationStatus
	switch {
	case r.Status == transfer.StatusFailed:
		st = NotificationFailed
	case r.Kind == transfer.Deposit && r.Status == transfer.StatusCompleted:
		st = NotificationCompleted
	case r.Kind == transfer.Withdrawal && (r.Status == transfer.StatusExecuted || r.CompletionTimestamp != nil):
		st = NotificationCompleted
	case r.Kind == transfer.Withdrawal && (r.Status == transfer.StatusClaimable || r.ClaimableTimestamp != nil):
		st = NotificationClaimable
	default:
		return Notification{}, false
	}

	to := r.DestinationChainID
	if r.Kind == transfer.Withdrawal {
		to = r.OriginChainID
	}

	return Notification{
		Key:       r.Key(),
		Kind:      r.Kind,
		Status:    st,
		Amount:    r.Amount,
		Symbol:    r.Symbol,
		ToChainID: to,
		Timestamp: notificationTime(r, now),
		Seen:      r.Seen || !r.IsNewlyObserved,
		Record:    r.Clone(),
	}, true
}

func notificationTime(r *transfer.Record, now int64) int64 {
	for _, ts := range []*int64{r.CompletionTimestamp, r.ClaimableTimestamp, r.EffectiveTimestamp()} {
		if ts != nil {
			return *ts
		}
	}
	return now
}

func effective(r *transfer.Record) int64 {
	if ts := r.EffectiveTimestamp(); ts != nil {
		return *ts
	}
	return 0
}
