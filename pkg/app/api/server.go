// Package api implements app.Runner for the lime API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/lime-api/pkg/app/http"
	"github.com/chainsafe/lime-api/pkg/auth"
	authservice "github.com/chainsafe/lime-api/pkg/auth/service"
	"github.com/chainsafe/lime-api/pkg/config"
	"github.com/chainsafe/lime-api/pkg/ethereum"
	"github.com/chainsafe/lime-api/pkg/migrations/limedb"
	"github.com/chainsafe/lime-api/pkg/pgutil"
	mghelper "github.com/chainsafe/lime-api/pkg/pgutil/migrations"
	txservice "github.com/chainsafe/lime-api/pkg/transaction/service"
	"github.com/chainsafe/lime-api/pkg/txstore"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting lime API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if cfg.Database.AutoMigrate {
		if err = s.migrate(ctx, db, logger); err != nil {
			return err
		}
	}

	store, err := txstore.NewCachedStore(ctx, txstore.NewStore(db), cfg.Cache, logger)
	if err != nil {
		return fmt.Errorf("setup cache: %w", err)
	}
	defer func() { _ = store.Close() }()

	resolver, err := ethereum.NewResolver(ctx, cfg.Ethereum, logger)
	if err != nil {
		return fmt.Errorf("connect ethereum node: %w", err)
	}
	defer resolver.Close()

	issuer, err := auth.NewTokenIssuer(cfg.Auth)
	if err != nil {
		return fmt.Errorf("setup token issuer: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		logger.Warn("JWT secret is empty, token issuance will fail", zap.String("env", config.EnvJWTSecret))
	}

	transactions := txservice.NewLog(
		txservice.NewService(store, resolver, cfg.Pipeline, logger),
		logger,
	)

	router := s.setupRouter(issuer, transactions, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) migrate(ctx context.Context, db *bun.DB, logger *zap.Logger) error {
	group, err := mghelper.MigrateUp(ctx, migrate.NewMigrator(db, limedb.Migrations))
	if err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	if group.IsZero() {
		logger.Info("Database schema is up to date")
		return nil
	}
	logger.Info("Applied database migrations", zap.String("group", group.String()))
	return nil
}

func (s *Server) setupRouter(
	issuer *auth.TokenIssuer,
	transactions txservice.Service,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if s.cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(issuer, logger))

		authservice.RegisterRoutes(r, issuer, auth.NewKnownUsersChecker(auth.DefaultKnownUsers...), logger)
		txservice.RegisterRoutes(r, transactions, logger)
	})

	return r
}
