package recordstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// TransferRecordDao maps to the 'transfer_records' table in PostgreSQL.
type TransferRecordDao struct {
	bun.BaseModel `bun:"table:transfer_records,alias:tr"`

	Address     string `bun:"address,pk,type:varchar(42)"`
	NetworkType string `bun:"network_type,pk,type:varchar(16)"`
	DedupKey    string `bun:"dedup_key,pk,type:varchar(66)"`

	Kind               string  `bun:"kind,notnull,type:varchar(16)"`
	Amount             string  `bun:"amount,notnull,type:numeric(78,0)"`
	OriginChainID      int64   `bun:"origin_chain_id,notnull"`
	DestinationChainID int64   `bun:"destination_chain_id,notnull"`
	OriginHash         *string `bun:"origin_hash,type:varchar(66)"`
	DestinationHash    *string `bun:"destination_hash,type:varchar(66)"`

	OriginTimestamp      *int64 `bun:"origin_timestamp"`
	DestinationTimestamp *int64 `bun:"destination_timestamp"`
	CompletionTimestamp  *int64 `bun:"completion_timestamp"`
	ClaimableTimestamp   *int64 `bun:"claimable_timestamp"`
	SortTS               *int64 `bun:"sort_ts"`

	ChallengePeriodSeconds  int64   `bun:"challenge_period_seconds,notnull,default:0"`
	TokenAddress            *string `bun:"token_address,type:varchar(42)"`
	DestinationTokenAddress *string `bun:"destination_token_address,type:varchar(42)"`
	Symbol                  *string `bun:"symbol,type:varchar(32)"`
	CCTP                    bool    `bun:"cctp,notnull,default:false"`

	Status          *string `bun:"status,type:varchar(32)"`
	StatusRank      int     `bun:"status_rank,notnull,default:0"`
	LastUpdated     *int64  `bun:"last_updated"`
	IsNewlyObserved bool    `bun:"is_newly_observed,notnull,default:false"`
	Seen            bool    `bun:"seen,notnull,default:false"`

	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// upsertColumns are overwritten when a dedup key already exists.
var upsertColumns = []string{
	"kind", "amount", "origin_chain_id", "destination_chain_id", "origin_hash", "destination_hash",
	"origin_timestamp", "destination_timestamp", "completion_timestamp", "claimable_timestamp", "sort_ts",
	"challenge_period_seconds", "token_address", "destination_token_address", "symbol", "cctp",
	"status", "status_rank", "last_updated", "is_newly_observed", "seen", "updated_at",
}

func toRecordDao(id transfer.Identity, r *transfer.Record, now time.Time) *TransferRecordDao {
	dao := &TransferRecordDao{
		Address:                 id.Address,
		NetworkType:             string(id.NetworkType),
		DedupKey:                r.Key(),
		Kind:                    string(r.Kind),
		Amount:                  r.Amount,
		OriginChainID:           int64(r.OriginChainID),
		DestinationChainID:      int64(r.DestinationChainID),
		OriginHash:              optString(r.OriginHash),
		DestinationHash:         optString(r.DestinationHash),
		OriginTimestamp:         r.OriginTimestamp,
		DestinationTimestamp:    r.DestinationTimestamp,
		CompletionTimestamp:     r.CompletionTimestamp,
		ClaimableTimestamp:      r.ClaimableTimestamp,
		SortTS:                  r.EffectiveTimestamp(),
		ChallengePeriodSeconds:  r.ChallengePeriodSeconds,
		TokenAddress:            optString(r.TokenAddress),
		DestinationTokenAddress: optString(r.DestinationTokenAddress),
		Symbol:                  optString(r.Symbol),
		CCTP:                    r.CCTP,
		Status:                  optString(string(r.Status)),
		StatusRank:              r.StatusRank,
		LastUpdated:             r.LastUpdated,
		IsNewlyObserved:         r.IsNewlyObserved,
		Seen:                    r.Seen,
		UpdatedAt:               now,
	}
	if dao.Amount == "" {
		dao.Amount = "0"
	}
	return dao
}

func toRecord(dao *TransferRecordDao) transfer.Record {
	return transfer.Record{
		Kind:                    transfer.Kind(dao.Kind),
		Amount:                  dao.Amount,
		OriginChainID:           uint64(dao.OriginChainID),
		DestinationChainID:      uint64(dao.DestinationChainID),
		OriginHash:              deref(dao.OriginHash),
		DestinationHash:         deref(dao.DestinationHash),
		OriginTimestamp:         dao.OriginTimestamp,
		DestinationTimestamp:    dao.DestinationTimestamp,
		CompletionTimestamp:     dao.CompletionTimestamp,
		ClaimableTimestamp:      dao.ClaimableTimestamp,
		ChallengePeriodSeconds:  dao.ChallengePeriodSeconds,
		TokenAddress:            deref(dao.TokenAddress),
		DestinationTokenAddress: deref(dao.DestinationTokenAddress),
		Symbol:                  deref(dao.Symbol),
		CCTP:                    dao.CCTP,
		Status:                  transfer.Status(deref(dao.Status)),
		StatusRank:              dao.StatusRank,
		LastUpdated:             dao.LastUpdated,
		IsNewlyObserved:         dao.IsNewlyObserved,
		Seen:                    dao.Seen,
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
