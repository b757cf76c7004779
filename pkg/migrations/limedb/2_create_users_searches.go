package limedb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/lime-api/pkg/pgutil/migrations"
	"github.com/chainsafe/lime-api/pkg/txstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating users_searches table...")
		if err := mghelper.CreateSchema(ctx, db, &txstore.SearchDao{}); err != nil {
			return err
		}
		// ON CONFLICT (username, transaction_hash) needs this index
		if err := mghelper.CreateModelUniqueIndex(ctx, db, &txstore.SearchDao{}, "username", "transaction_hash"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &txstore.SearchDao{}, "username")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping users_searches table...")
		return mghelper.DropTables(ctx, db, &txstore.SearchDao{})
	})
}
