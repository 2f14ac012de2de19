// Package migrations holds schema helpers shared by the bun migrations and
// the migrate command.
package migrations

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

const usageText = `Usage:
  go run cmd/bridge-tracker/migrate/main.go -config <file> <command>

Runs a migration command against the record store database:
  - init   - creates the migration bookkeeping tables
  - up     - applies every pending migration
  - down   - rolls back the last migration group
  - status - prints applied and pending migrations

Examples:
  go run cmd/bridge-tracker/migrate/main.go -config config.yaml init
  go run cmd/bridge-tracker/migrate/main.go -config config.yaml up
`

// Usage prints command usage and exits.
func Usage() {
	fmt.Print(usageText)
	flag.PrintDefaults()
	os.Exit(2)
}

// Exitf prints the message followed by usage and exits.
func Exitf(s string, args ...any) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
	Usage()
}

// CreateSchema creates a table for each model if it does not exist yet.
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		log.Println("creating table for", reflect.TypeOf(model))
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// DropTables drops the tables of the given models.
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		log.Println("dropping table for", reflect.TypeOf(model))
		if _, err := db.NewDropTable().
			Model(model).
			IfExists().
			Cascade().
			Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// CreateModelIndexes creates one single-column index per column, named
// idx_<table>_<column>.
func CreateModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	for _, column := range columns {
		if err := CreateCompositeIndex(ctx, db, model, column, column); err != nil {
			return err
		}
	}
	return nil
}

// CreateCompositeIndex creates an index named idx_<table>_<suffix> over the
// columns in order. Columns may carry a sort direction ("sort_ts DESC").
func CreateCompositeIndex(ctx context.Context, db bun.IDB, model any, suffix string, columns ...string) error {
	indexName, err := modelIndexName(db, model, suffix)
	if err != nil {
		return err
	}
	q := db.NewCreateIndex().
		Model(model).
		Index(indexName).
		IfNotExists()
	for _, column := range columns {
		q = q.ColumnExpr(column)
	}
	_, err = q.Exec(ctx)
	return err
}

// DropModelIndex drops idx_<table>_<suffix>.
func DropModelIndex(ctx context.Context, db bun.IDB, model any, suffix string) error {
	indexName, err := modelIndexName(db, model, suffix)
	if err != nil {
		return err
	}
	_, err = db.NewDropIndex().
		Index(indexName).
		IfExists().
		Exec(ctx)
	return err
}

func modelIndexName(db bun.IDB, model any, suffix string) (string, error) {
	if model == nil {
		return "", fmt.Errorf("model cannot be nil")
	}
	tableName := db.NewCreateIndex().Model(model).GetTableName()
	if tableName == "" {
		return "", fmt.Errorf("failed to resolve table name for model %T", model)
	}

	indexTableName := strings.NewReplacer(`"`, "", ".", "_").Replace(tableName)
	return fmt.Sprintf("idx_%s_%s", indexTableName, suffix), nil
}

// RunMigrations runs the command named by args[0] with the migrator.
func RunMigrations(ctx context.Context, migrator *migrate.Migrator, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}

	switch args[0] {
	case "init":
		if err := migrator.Init(ctx); err != nil {
			return err
		}
		log.Println("migration table created")
		return nil

	case "up":
		return withLock(ctx, migrator, func() error {
			group, err := migrator.Migrate(ctx)
			if err != nil {
				return err
			}
			if group.IsZero() {
				log.Println("no new migrations to run (database is up to date)")
			} else {
				log.Printf("migrated to %s\n", group)
			}
			return nil
		})

	case "down":
		return withLock(ctx, migrator, func() error {
			group, err := migrator.Rollback(ctx)
			if err != nil {
				return err
			}
			if group.IsZero() {
				log.Println("no migrations to rollback")
			} else {
				log.Printf("rolled back %s\n", group)
			}
			return nil
		})

	case "status":
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			return err
		}
		log.Printf("migrations: %s\n", ms)
		log.Printf("unapplied migrations: %s\n", ms.Unapplied())
		log.Printf("last migration group: %s\n", ms.LastGroup())
		return nil

	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func withLock(ctx context.Context, migrator *migrate.Migrator, fn func() error) error {
	if err := migrator.Lock(ctx); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		if err := migrator.Unlock(ctx); err != nil {
			log.Printf("failed to release migration lock: %v", err)
		}
	}()
	return fn()
}
