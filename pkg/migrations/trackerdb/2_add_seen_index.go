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
		log.Println("creating unseen notifications index...")
		return mghelper.CreateCompositeIndex(ctx, db, &recordstore.TransferRecordDao{},
			"identity_seen", "address", "network_type", "seen")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping unseen notifications index...")
		return mghelper.DropModelIndex(ctx, db, &recordstore.TransferRecordDao{}, "identity_seen")
	})
}
