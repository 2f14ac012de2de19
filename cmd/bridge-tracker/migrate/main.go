package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/bridge-tracker/pkg/config"
	"github.com/chainsafe/bridge-tracker/pkg/migrations/trackerdb"
	"github.com/chainsafe/bridge-tracker/pkg/pgutil"
	mghelper "github.com/chainsafe/bridge-tracker/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}
	if cfg.Store.Driver != config.StorePostgres {
		log.Fatalf("store.driver is %q, migrations only apply to %q", cfg.Store.Driver, config.StorePostgres)
	}

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database, nil)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for record store database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, trackerdb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err)
	}
}
