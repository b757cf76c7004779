package txstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/chainsafe/lime-api/pkg/config"
	"github.com/chainsafe/lime-api/pkg/transaction"
)

const (
	cacheKeyPrefix  = "lime:tx:"
	defaultCacheTTL = time.Hour
	pingTimeout     = 2 * time.Second
)

// CachedStore is a Redis read-through cache in front of a Store.
// Records never change once written, so cached entries are never invalidated.
// With no Redis address configured every call goes straight to the base store.
type CachedStore struct {
	Store
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedStore connects to Redis at cfg.Addr and wraps base
func NewCachedStore(ctx context.Context, base Store, cfg config.CacheConfig, logger *zap.Logger) (*CachedStore, error) {
	if base == nil {
		return nil, errors.New("base store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return &CachedStore{Store: base, logger: logger}, nil
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultCacheTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &CachedStore{Store: base, cache: client, ttl: cfg.TTL, logger: logger}, nil
}

// Enabled reports whether a Redis client is attached
func (s *CachedStore) Enabled() bool {
	return s.cache != nil
}

func (s *CachedStore) GetTransaction(ctx context.Context, hash string) (*transaction.Transaction, error) {
	if s.cache == nil {
		return s.Store.GetTransaction(ctx, hash)
	}

	key := cacheKey(hash)
	cached, err := s.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var tx transaction.Transaction
		if err := json.Unmarshal(cached, &tx); err == nil {
			return &tx, nil
		}
		s.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		s.logger.Warn("Cache read failed, falling back to database", zap.String("key", key), zap.Error(err))
	}

	tx, err := s.Store.GetTransaction(ctx, hash)
	if err != nil {
		return nil, err
	}
	s.put(ctx, tx)
	return tx, nil
}

func (s *CachedStore) InsertTransaction(ctx context.Context, tx *transaction.Transaction) (bool, error) {
	inserted, err := s.Store.InsertTransaction(ctx, tx)
	if err != nil {
		return false, err
	}
	if inserted {
		s.put(ctx, tx)
	}
	return inserted, nil
}

// Close releases the Redis connection pool
func (s *CachedStore) Close() error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Close()
}

func (s *CachedStore) put(ctx context.Context, tx *transaction.Transaction) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(tx)
	if err != nil {
		return
	}
	key := cacheKey(tx.TransactionHash)
	if err := s.cache.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(hash string) string {
	return cacheKeyPrefix + strings.ToLower(hash)
}
