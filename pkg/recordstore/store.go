// Package recordstore persists transfer records keyed by identity.
package recordstore

import (
	"context"
	"sort"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// Store is the keyed record repository.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	// Get returns every record stored for the identity. A missing identity
	// yields an empty slice and no error.
	Get(ctx context.Context, id transfer.Identity) ([]transfer.Record, error)
	// PutMany upserts records by dedup key. Records without a key are rejected.
	PutMany(ctx context.Context, id transfer.Identity, records []transfer.Record) error
}

// upsert merges incoming records into existing ones by dedup key, keeping the
// position of records that were already present and appending new ones.
func upsert(existing, incoming []transfer.Record) []transfer.Record {
	index := make(map[string]int, len(existing))
	out := make([]transfer.Record, 0, len(existing)+len(incoming))
	for _, r := range existing {
		index[r.Key()] = len(out)
		out = append(out, r.Clone())
	}
	for _, r := range incoming {
		if i, ok := index[r.Key()]; ok {
			out[i] = r.Clone()
			continue
		}
		index[r.Key()] = len(out)
		out = append(out, r.Clone())
	}
	return out
}

func checkKeys(records []transfer.Record) error {
	for _, r := range records {
		if r.Key() == "" {
			return transfer.NewValidationError("record", string(r.Kind), errMissingKey)
		}
	}
	return nil
}

// SortByEffectiveTimestamp orders records newest first, records without a
// timestamp last, ties broken by key.
func SortByEffectiveTimestamp(records []transfer.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := records[i].EffectiveTimestamp(), records[j].EffectiveTimestamp()
		switch {
		case ti == nil && tj == nil:
			return records[i].Key() < records[j].Key()
		case ti == nil:
			return false
		case tj == nil:
			return true
		case *ti != *tj:
			return *ti > *tj
		default:
			return records[i].Key() < records[j].Key()
		}
	})
}
