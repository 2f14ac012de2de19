// Package reconcile merges locally stored transfer records with the indexed
// history feed into one deduplicated, ordered record set.
package reconcile

import (
	"github.com/chainsafe/bridge-tracker/pkg/recordstore"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// Merge combines local records with fetched ones. Exactly one record per
// dedup key survives; keyless records are dropped. A fetched record replaces
// the local one only if it completes it, or failing that enriches it with
// token metadata. Fetched records with keys unknown locally come back with
// IsNewlyObserved set and are also returned in added.
//
// The output is sorted newest first by effective timestamp and shares no
// memory with the inputs, so merging the same inputs twice gives equal results.
func Merge(local, fetched []transfer.Record) (merged []transfer.Record, added []transfer.Record) {
	byKey := make(map[string]transfer.Record, len(local)+len(fetched))
	order := make([]string, 0, len(local)+len(fetched))

	for i := range local {
		k := local[i].Key()
		if k == "" {
			continue
		}
		if _, dup := byKey[k]; dup {
			continue
		}
		byKey[k] = local[i].Clone()
		order = append(order, k)
	}
	localKeys := len(order)

	for i := range fetched {
		a := &fetched[i]
		k := a.Key()
		if k == "" {
			continue
		}
		existing, ok := byKey[k]
		if !ok {
			rec := a.Clone()
			rec.IsNewlyObserved = true
			byKey[k] = rec
			order = append(order, k)
			continue
		}
		if replaces(a, &existing) {
			byKey[k] = carryLocal(a.Clone(), &existing)
		}
	}

	merged = make([]transfer.Record, 0, len(order))
	for _, k := range order {
		merged = append(merged, byKey[k])
	}
	for _, k := range order[localKeys:] {
		added = append(added, byKey[k].Clone())
	}
	recordstore.SortByEffectiveTimestamp(merged)
	recordstore.SortByEffectiveTimestamp(added)
	return merged, added
}

// replaces applies the priority rules: completion first, then metadata.
// Ties keep the local record.
func replaces(a, l *transfer.Record) bool {
	aDone, lDone := a.CompletionTimestamp != nil, l.CompletionTimestamp != nil
	if aDone && !lDone {
		return true
	}
	if aDone == lDone && a.HasTokenMetadata() && !l.HasTokenMetadata() {
		return true
	}
	return false
}

// carryLocal keeps the bookkeeping the feed never carries.
func carryLocal(a transfer.Record, l *transfer.Record) transfer.Record {
	a.Seen = l.Seen
	a.IsNewlyObserved = l.IsNewlyObserved
	a.Status = l.Status
	a.StatusRank = l.StatusRank
	a.LastUpdated = nil
	if l.LastUpdated != nil {
		a.LastUpdated = transfer.Int64(*l.LastUpdated)
	}
	return a
}
