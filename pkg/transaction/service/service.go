package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/lime-api/internal/metrics"
	"github.com/chainsafe/lime-api/pkg/config"
	"github.com/chainsafe/lime-api/pkg/transaction"
	"github.com/chainsafe/lime-api/pkg/txstore"
)

const defaultMaxConcurrency = 8

// Store is the narrow data-access interface for the resolution pipeline.
// GetTransaction must return txstore.ErrTransactionNotFound for unknown hashes.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetTransaction(ctx context.Context, hash string) (*transaction.Transaction, error)
	InsertTransaction(ctx context.Context, tx *transaction.Transaction) (bool, error)
	InsertSearch(ctx context.Context, username, hash string) (bool, error)
	ListTransactions(ctx context.Context) ([]*transaction.Transaction, error)
	ListSearchedTransactions(ctx context.Context, username string) ([]*transaction.Transaction, error)
}

// Resolver fetches a transaction from the network. A nil record with a nil
// error means the network does not know the hash.
//
//go:generate mockery --name Resolver --output mocks --outpkg mocks --filename mock_resolver.go --with-expecter
type Resolver interface {
	Resolve(ctx context.Context, hash common.Hash) (*transaction.Transaction, error)
}

// Service defines the transaction resolution business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// ResolveBatch resolves hashes cache-first and attributes every resolved
	// hash to subject when subject is non-empty. Unknown hashes are skipped.
	ResolveBatch(ctx context.Context, hashes []common.Hash, subject string) ([]*transaction.Transaction, error)
	ListAll(ctx context.Context) ([]*transaction.Transaction, error)
	ListForSubject(ctx context.Context, subject string) ([]*transaction.Transaction, error)
}

type resolutionService struct {
	store          Store
	resolver       Resolver
	maxConcurrency int
	logger         *zap.Logger
}

// NewService creates a new resolution service
func NewService(store Store, resolver Resolver, cfg config.PipelineConfig, logger *zap.Logger) Service {
	limit := cfg.MaxConcurrency
	if limit <= 0 {
		limit = defaultMaxConcurrency
	}
	return &resolutionService{
		store:          store,
		resolver:       resolver,
		maxConcurrency: limit,
		logger:         logger,
	}
}

// ResolveBatch runs the per-hash pipeline concurrently, bounded by the
// configured limit. Results follow the first occurrence order of each hash.
// A record store read failure aborts the batch; failed record or history
// writes are logged and do not.
func (s *resolutionService) ResolveBatch(
	ctx context.Context,
	hashes []common.Hash,
	subject string,
) ([]*transaction.Transaction, error) {
	start := time.Now()
	defer func() {
		metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}()

	unique := dedupe(hashes)
	metrics.BatchSize.Observe(float64(len(unique)))

	results := make([]*transaction.Transaction, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, hash := range unique {
		g.Go(func() error {
			tx, err := s.resolveOne(gctx, hash, subject)
			if err != nil {
				return err
			}
			results[i] = tx
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	txs := make([]*transaction.Transaction, 0, len(results))
	for _, tx := range results {
		if tx != nil {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (s *resolutionService) resolveOne(ctx context.Context, hash common.Hash, subject string) (*transaction.Transaction, error) {
	key := hash.Hex()

	tx, err := s.store.GetTransaction(ctx, key)
	switch {
	case err == nil:
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeCacheHit).Inc()
	case errors.Is(err, txstore.ErrTransactionNotFound):
		tx, err = s.resolver.Resolve(ctx, hash)
		if err != nil {
			metrics.LookupsTotal.WithLabelValues(metrics.OutcomeResolveError).Inc()
			s.logger.Warn("Failed to resolve transaction, skipping", zap.String("hash", key), zap.Error(err))
			return nil, nil
		}
		if tx == nil {
			metrics.LookupsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
			return nil, nil
		}
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeResolved).Inc()
		s.persist(ctx, tx)
	default:
		return nil, fmt.Errorf("failed to look up transaction %s: %w", key, err)
	}

	if subject != "" {
		s.attribute(ctx, subject, key)
	}
	return tx, nil
}

func (s *resolutionService) persist(ctx context.Context, tx *transaction.Transaction) {
	inserted, err := s.store.InsertTransaction(ctx, tx)
	if err != nil {
		metrics.SideEffectFailures.WithLabelValues(metrics.OperationPersist).Inc()
		s.logger.Error("Failed to save transaction",
			zap.String("hash", tx.TransactionHash),
			zap.Error(err),
		)
		return
	}
	if !inserted {
		s.logger.Debug("Transaction already stored by a concurrent lookup", zap.String("hash", tx.TransactionHash))
	}
}

func (s *resolutionService) attribute(ctx context.Context, subject, hash string) {
	if _, err := s.store.InsertSearch(ctx, subject, hash); err != nil {
		metrics.SideEffectFailures.WithLabelValues(metrics.OperationHistory).Inc()
		s.logger.Error("Failed to save user search",
			zap.String("username", subject),
			zap.String("hash", hash),
			zap.Error(err),
		)
	}
}

func (s *resolutionService) ListAll(ctx context.Context) ([]*transaction.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (s *resolutionService) ListForSubject(ctx context.Context, subject string) ([]*transaction.Transaction, error) {
	txs, err := s.store.ListSearchedTransactions(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s: %w", subject, err)
	}
	return txs, nil
}

func dedupe(hashes []common.Hash) []common.Hash {
	seen := make(map[common.Hash]struct{}, len(hashes))
	unique := make([]common.Hash, 0, len(hashes))
	for _, h := range hashes {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		unique = append(unique, h)
	}
	return unique
}
