package recordstore

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

type pgStore struct {
	db *bun.DB
}

// NewPGStore creates a new postgres implementation of the record store
func NewPGStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Get(ctx context.Context, id transfer.Identity) ([]transfer.Record, error) {
	var daos []TransferRecordDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("address = ?", id.Address).
		Where("network_type = ?", string(id.NetworkType)).
		OrderExpr("sort_ts DESC NULLS LAST, dedup_key ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}

	out := make([]transfer.Record, 0, len(daos))
	for i := range daos {
		out = append(out, toRecord(&daos[i]))
	}
	return out, nil
}

func (s *pgStore) PutMany(ctx context.Context, id transfer.Identity, records []transfer.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := checkKeys(records); err != nil {
		return err
	}

	now := time.Now().UTC()
	// later duplicates win, matching the in-memory upsert
	byKey := make(map[string]int, len(records))
	daos := make([]*TransferRecordDao, 0, len(records))
	for i := range records {
		dao := toRecordDao(id, &records[i], now)
		if j, ok := byKey[dao.DedupKey]; ok {
			daos[j] = dao
			continue
		}
		byKey[dao.DedupKey] = len(daos)
		daos = append(daos, dao)
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewInsert().
			Model(&daos).
			On("CONFLICT (address, network_type, dedup_key) DO UPDATE")
		for _, col := range upsertColumns {
			q = q.Set("? = EXCLUDED.?", bun.Ident(col), bun.Ident(col))
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("failed to upsert records: %w", err)
		}
		return nil
	})
}
