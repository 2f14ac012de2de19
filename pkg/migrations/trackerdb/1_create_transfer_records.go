package trackerdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/bridge-tracker/pkg/pgutil/migrations"
	"github.com/chainsafe/bridge-tracker/pkg/recordstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating transfer_records table...")
		if err := mghelper.CreateSchema(ctx, db, &recordstore.TransferRecordDao{}); err != nil {
			return err
		}
		// record sets are always read newest first
		if err := mghelper.CreateCompositeIndex(ctx, db, &recordstore.TransferRecordDao{},
			"identity_sort", "address", "network_type", "sort_ts DESC"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &recordstore.TransferRecordDao{}, "status")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transfer_records table...")
		return mghelper.DropTables(ctx, db, &recordstore.TransferRecordDao{})
	})
}
