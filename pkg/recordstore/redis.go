package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const maxWatchAttempts = 5

type redisStore struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore stores each identity as one JSON array under
// prefix+identity.StoreKey(). A zero ttl keeps keys forever.
func NewRedisStore(rdb redis.UniversalClient, prefix string, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *redisStore) key(id transfer.Identity) string {
	return s.prefix + id.StoreKey()
}

func (s *redisStore) Get(ctx context.Context, id transfer.Identity) ([]transfer.Record, error) {
	raw, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []transfer.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}
	return decodeRecords(raw)
}

func (s *redisStore) PutMany(ctx context.Context, id transfer.Identity, records []transfer.Record) error {
	if err := checkKeys(records); err != nil {
		return err
	}
	key := s.key(id)

	txf := func(tx *redis.Tx) error {
		existing := []transfer.Record{}
		raw, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			if existing, err = decodeRecords(raw); err != nil {
				return err
			}
		}

		payload, err := json.Marshal(upsert(existing, records))
		if err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxWatchAttempts; attempt++ {
		err := s.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to put records: %w", err)
		}
		return nil
	}
	return fmt.Errorf("failed to put records: concurrent updates on %s", key)
}

func decodeRecords(raw []byte) ([]transfer.Record, error) {
	var records []transfer.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	if records == nil {
		records = []transfer.Record{}
	}
	return records, nil
}
