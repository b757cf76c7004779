package pgutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"

	"github.com/chainsafe/lime-api/pkg/config"
)

// ConnectDB opens a bun connection to PostgreSQL and pings it.
// A non-empty cfg.URL takes precedence over the discrete host/port/user fields.
func ConnectDB(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (*bun.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sqldb := sql.OpenDB(newConnector(cfg))
	db := bun.NewDB(sqldb, pgdialect.New())

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", describe(cfg), err)
	}

	logger.Info("Connected to database", zap.String("database", describe(cfg)))
	return db, nil
}

func newConnector(cfg *config.DatabaseConfig) *pgdriver.Connector {
	if cfg.URL != "" {
		return pgdriver.NewConnector(pgdriver.WithDSN(cfg.URL))
	}

	// Functional options escape special characters in credentials
	return pgdriver.NewConnector(
		pgdriver.WithNetwork("tcp"),
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Database),
		pgdriver.WithInsecure(cfg.SSLMode == "disable"),
	)
}

// describe names the target database without leaking credentials.
func describe(cfg *config.DatabaseConfig) string {
	if cfg.URL != "" {
		return "from connection url"
	}
	return fmt.Sprintf("%s@%s:%d", cfg.Database, cfg.Host, cfg.Port)
}
