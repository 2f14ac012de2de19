package reconcile

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

func hash(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

func dep(n int, ts int64) transfer.Record {
	return transfer.Record{
		Kind:               transfer.Deposit,
		Amount:             "100",
		OriginChainID:      421614,
		DestinationChainID: 13746,
		OriginHash:         hash(n),
		OriginTimestamp:    transfer.Int64(ts),
	}
}

func wd(n int, ts int64) transfer.Record {
	return transfer.Record{
		Kind:                 transfer.Withdrawal,
		Amount:               "7",
		OriginChainID:        421614,
		DestinationChainID:   13746,
		DestinationHash:      hash(n),
		DestinationTimestamp: transfer.Int64(ts),
	}
}

func TestMerge_EnrichmentScenario(t *testing.T) {
	local := dep(0xabc, 900)
	local.Status = transfer.StatusPendingOnDestination
	local.StatusRank = 1
	local.Seen = true

	indexed := dep(0xabc, 900)
	indexed.Symbol = "G7T"
	indexed.CompletionTimestamp = transfer.Int64(1000)

	merged, added := Merge([]transfer.Record{local}, []transfer.Record{indexed})
	if len(merged) != 1 || len(added) != 0 {
		t.Fatalf("merged=%d added=%d", len(merged), len(added))
	}
	got := merged[0]
	if got.Symbol != "G7T" || got.CompletionTimestamp == nil || *got.CompletionTimestamp != 1000 {
		t.Fatalf("indexer data not merged: %+v", got)
	}
	if !got.Seen || got.Status != transfer.StatusPendingOnDestination || got.IsNewlyObserved {
		t.Fatalf("local bookkeeping lost: %+v", got)
	}
}

func TestMerge_PriorityRules(t *testing.T) {
	completed := func(r transfer.Record, ts int64) transfer.Record {
		r.CompletionTimestamp = transfer.Int64(ts)
		return r
	}
	withSymbol := func(r transfer.Record) transfer.Record {
		r.Symbol = "ETH"
		return r
	}

	tests := []struct {
		name      string
		local     transfer.Record
		fetched   transfer.Record
		wantAmt   string
		wantCompl *int64
	}{
		{
			name:      "completion wins",
			local:     dep(1, 10),
			fetched:   func() transfer.Record { r := completed(dep(1, 10), 50); r.Amount = "feed"; return r }(),
			wantAmt:   "feed",
			wantCompl: transfer.Int64(50),
		},
		{
			name:      "local completion kept over incomplete feed",
			local:     completed(dep(1, 10), 40),
			fetched:   withSymbol(dep(1, 10)),
			wantAmt:   "100",
			wantCompl: transfer.Int64(40),
		},
		{
			name:    "metadata wins when neither completed",
			local:   dep(1, 10),
			fetched: func() transfer.Record { r := withSymbol(dep(1, 10)); r.Amount = "feed"; return r }(),
			wantAmt: "feed",
		},
		{
			name:      "metadata wins when both completed",
			local:     completed(dep(1, 10), 40),
			fetched:   func() transfer.Record { r := withSymbol(completed(dep(1, 10), 41)); r.Amount = "feed"; return r }(),
			wantAmt:   "feed",
			wantCompl: transfer.Int64(41),
		},
		{
			name:    "tie keeps local",
			local:   withSymbol(dep(1, 10)),
			fetched: func() transfer.Record { r := withSymbol(dep(1, 10)); r.Amount = "feed"; return r }(),
			wantAmt: "100",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, _ := Merge([]transfer.Record{tt.local}, []transfer.Record{tt.fetched})
			if len(merged) != 1 {
				t.Fatalf("expected one record, got %d", len(merged))
			}
			got := merged[0]
			if got.Amount != tt.wantAmt {
				t.Fatalf("Amount = %s, want %s", got.Amount, tt.wantAmt)
			}
			if !reflect.DeepEqual(got.CompletionTimestamp, tt.wantCompl) {
				t.Fatalf("CompletionTimestamp = %v, want %v", got.CompletionTimestamp, tt.wantCompl)
			}
		})
	}
}

func TestMerge_DedupAndNewlyObserved(t *testing.T) {
	local := []transfer.Record{dep(1, 10), wd(2, 20)}
	fetched := []transfer.Record{
		dep(1, 10),
		wd(2, 20),
		dep(3, 30),
		dep(3, 30),
		{Kind: transfer.Deposit},
	}

	merged, added := Merge(local, fetched)
	if len(merged) > len(local)+len(fetched) {
		t.Fatalf("merged set too large: %d", len(merged))
	}
	seen := map[string]bool{}
	for _, r := range merged {
		if seen[r.Key()] {
			t.Fatalf("duplicate key %s", r.Key())
		}
		seen[r.Key()] = true
	}
	if len(merged) != 3 {
		t.Fatalf("expected 3 records, got %d", len(merged))
	}
	if len(added) != 1 || added[0].Key() != hash(3) || !added[0].IsNewlyObserved {
		t.Fatalf("unexpected newly observed set: %+v", added)
	}
	for _, r := range merged {
		if r.Key() != hash(3) && r.IsNewlyObserved {
			t.Fatalf("local record flagged as new: %s", r.Key())
		}
	}
}

func TestMerge_KeyCaseInsensitive(t *testing.T) {
	upper := dep(0xabc, 1)
	upper.OriginHash = "0x" + fmt.Sprintf("%064X", 0xabc)

	merged, added := Merge([]transfer.Record{dep(0xabc, 1)}, []transfer.Record{upper})
	if len(merged) != 1 || len(added) != 0 {
		t.Fatalf("keys differing only in case must dedup: merged=%d added=%d", len(merged), len(added))
	}
}

func TestMerge_SortOrder(t *testing.T) {
	noTS := dep(9, 0)
	noTS.OriginTimestamp = nil
	local := []transfer.Record{dep(1, 100), noTS, wd(2, 300)}
	fetched := []transfer.Record{dep(3, 200), wd(4, 50)}

	merged, _ := Merge(local, fetched)
	var prev *int64
	for i, r := range merged {
		ts := r.EffectiveTimestamp()
		if ts == nil {
			if i != len(merged)-1 {
				t.Fatalf("record without timestamp must sort last, got position %d", i)
			}
			continue
		}
		if prev != nil && *ts > *prev {
			t.Fatalf("order not descending at %d: %d > %d", i, *ts, *prev)
		}
		prev = ts
	}
	if merged[0].Key() != hash(2) {
		t.Fatalf("withdrawal must sort by destination timestamp, got %s first", merged[0].Key())
	}
}

func TestMerge_Idempotent(t *testing.T) {
	local := []transfer.Record{dep(1, 100), wd(2, 300)}
	fetched := []transfer.Record{dep(1, 100), dep(3, 200), wd(4, 300)}
	fetched[0].Symbol = "G7T"

	first, _ := Merge(local, fetched)
	second, _ := Merge(local, fetched)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("merge is not idempotent:\n%s\n%s", a, b)
	}
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	local := []transfer.Record{dep(1, 100)}
	merged, _ := Merge(local, nil)
	*merged[0].OriginTimestamp = 5
	if *local[0].OriginTimestamp != 100 {
		t.Fatal("merge output aliases its input")
	}
}
