// Package trackerdb holds the migrations for the record store database
package trackerdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the record store database
var Migrations = migrate.NewMigrations()
