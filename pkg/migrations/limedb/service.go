// Package limedb holds all the migrations for the lime database
package limedb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the lime database
var Migrations = migrate.NewMigrations()
