package tracker

import (
	"fmt"
	"testing"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

func rec(kind transfer.Kind, n int, ts int64, st transfer.Status) transfer.Record {
	r := transfer.Record{
		Kind:               kind,
		Amount:             "10",
		OriginChainID:      421614,
		DestinationChainID: 13746,
		Status:             st,
		IsNewlyObserved:    true,
	}
	h := fmt.Sprintf("0x%064x", n)
	if kind == transfer.Withdrawal {
		r.DestinationHash = h
		r.DestinationTimestamp = transfer.Int64(ts)
	} else {
		r.OriginHash = h
		r.OriginTimestamp = transfer.Int64(ts)
	}
	return r
}

func TestNotifications_SelectionAndOrder(t *testing.T) {
	records := []transfer.Record{
		rec(transfer.Deposit, 1, 500, transfer.StatusCompleted),
		rec(transfer.Deposit, 2, 600, transfer.StatusPendingOnDestination),
		rec(transfer.Withdrawal, 3, 100, transfer.StatusClaimable),
		rec(transfer.Withdrawal, 4, 700, transfer.StatusExecuted),
		rec(transfer.Withdrawal, 5, 800, transfer.StatusUnconfirmed),
		rec(transfer.Deposit, 6, 900, transfer.StatusFailed),
	}
	records[0].Seen = true

	got := Notifications(records, 1000)
	if len(got) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(got))
	}

	wantKeys := []string{records[2].Key(), records[5].Key(), records[3].Key(), records[0].Key()}
	wantStatus := []NotificationStatus{NotificationClaimable, NotificationFailed, NotificationCompleted, NotificationCompleted}
	for i := range got {
		if got[i].Key != wantKeys[i] || got[i].Status != wantStatus[i] {
			t.Fatalf("notification %d = %s/%s, want %s/%s", i, got[i].Key, got[i].Status, wantKeys[i], wantStatus[i])
		}
	}
	if got[0].ToChainID != 421614 || got[3].ToChainID != 13746 {
		t.Fatalf("withdrawals notify the parent chain, deposits the child: %d %d", got[0].ToChainID, got[3].ToChainID)
	}
	if UnseenCount(got) != 3 {
		t.Fatalf("unseen = %d, want 3", UnseenCount(got))
	}
}

func TestNotifications_SeenWhenNotNewlyObserved(t *testing.T) {
	r := rec(transfer.Withdrawal, 1, 100, transfer.StatusClaimable)
	r.IsNewlyObserved = false
	got := Notifications([]transfer.Record{r}, 1000)
	if len(got) != 1 || !got[0].Seen {
		t.Fatalf("record loaded from history must count as seen: %+v", got)
	}
}

func TestNotifications_TimestampFallbacks(t *testing.T) {
	w := rec(transfer.Withdrawal, 1, 100, transfer.StatusClaimable)
	w.ClaimableTimestamp = transfer.Int64(300)
	d := rec(transfer.Deposit, 2, 200, transfer.StatusCompleted)

	got := Notifications([]transfer.Record{w, d}, 1000)
	if got[0].Timestamp != 300 || got[1].Timestamp != 200 {
		t.Fatalf("timestamps = %d, %d", got[0].Timestamp, got[1].Timestamp)
	}
}

func TestMarkSeen(t *testing.T) {
	records := []transfer.Record{
		rec(transfer.Deposit, 1, 1, transfer.StatusCompleted),
		rec(transfer.Deposit, 2, 2, transfer.StatusSubmitted),
	}
	records[1].Seen = true
	records[1].IsNewlyObserved = false

	changed := MarkSeen(records)
	if len(changed) != 1 || changed[0].Key() != records[0].Key() {
		t.Fatalf("unexpected changes: %+v", changed)
	}
	if !changed[0].Seen || changed[0].IsNewlyObserved {
		t.Fatalf("record not cleaned: %+v", changed[0])
	}
	if records[0].Seen {
		t.Fatal("MarkSeen must not modify its input")
	}
	if UnseenCount(Notifications(append(changed, records[1]), 10)) != 0 {
		t.Fatal("cleaned records still unseen")
	}
}
