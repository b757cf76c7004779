package txstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/chainsafe/lime-api/pkg/config"
	"github.com/chainsafe/lime-api/pkg/pgutil"
	"github.com/chainsafe/lime-api/pkg/transaction"
)

// memStore is an in-memory Store counting record reads
type memStore struct {
	mu    sync.Mutex
	txs   map[string]*transaction.Transaction
	reads int
}

func newMemStore() *memStore {
	return &memStore{txs: make(map[string]*transaction.Transaction)}
}

func (m *memStore) GetTransaction(_ context.Context, hash string) (*transaction.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	tx, ok := m.txs[hash]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (m *memStore) InsertTransaction(_ context.Context, tx *transaction.Transaction) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.txs[tx.TransactionHash]; ok {
		return false, nil
	}
	cp := *tx
	m.txs[tx.TransactionHash] = &cp
	return true, nil
}

func (m *memStore) ListTransactions(context.Context) ([]*transaction.Transaction, error) {
	return nil, nil
}

func (m *memStore) ListTransactionsByHashes(context.Context, []string) ([]*transaction.Transaction, error) {
	return nil, nil
}

func (m *memStore) SearchExists(context.Context, string, string) (bool, error) { return false, nil }

func (m *memStore) InsertSearch(context.Context, string, string) (bool, error) { return true, nil }

func (m *memStore) ListSearchedHashes(context.Context, string) ([]string, error) { return nil, nil }

func (m *memStore) ListSearchedTransactions(context.Context, string) ([]*transaction.Transaction, error) {
	return nil, nil
}

func (m *memStore) readCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

func (m *memStore) forget(hash string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.txs, hash)
}

func setupRedis(t *testing.T) string {
	t.Helper()
	pgutil.RequireDockerAccess(t)
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	addr, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("failed to get redis endpoint: %v", err)
	}
	return addr
}

func newCachedTestStore(t *testing.T, addr string, base Store) *CachedStore {
	t.Helper()

	s, err := NewCachedStore(context.Background(), base, config.CacheConfig{Addr: addr, TTL: time.Minute}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewCachedStore() failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCachedStore_DisabledPassesThrough(t *testing.T) {
	base := newMemStore()
	s := newCachedTestStore(t, "", base)
	ctx := context.Background()

	if s.Enabled() {
		t.Fatal("expected cache to be disabled without an address")
	}
	if _, err := s.InsertTransaction(ctx, newTestTransaction(hashA, "1")); err != nil {
		t.Fatalf("InsertTransaction() failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := s.GetTransaction(ctx, hashA); err != nil {
			t.Fatalf("GetTransaction() failed: %v", err)
		}
	}
	if got := base.readCount(); got != 2 {
		t.Fatalf("expected every read to reach the base store, got %d reads", got)
	}
}

func TestCachedStore_RequiresBase(t *testing.T) {
	if _, err := NewCachedStore(context.Background(), nil, config.CacheConfig{}, nil); err == nil {
		t.Fatal("expected error for nil base store")
	}
}

func TestCachedStore_UnreachableRedis(t *testing.T) {
	_, err := NewCachedStore(context.Background(), newMemStore(), config.CacheConfig{Addr: "127.0.0.1:1"}, nil)
	if err == nil {
		t.Fatal("expected error for unreachable redis")
	}
}

func TestCachedStore_ReadThrough(t *testing.T) {
	addr := setupRedis(t)
	base := newMemStore()
	ctx := context.Background()

	if _, err := base.InsertTransaction(ctx, newTestTransaction(hashA, "99")); err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}
	s := newCachedTestStore(t, addr, base)

	first, err := s.GetTransaction(ctx, hashA)
	if err != nil {
		t.Fatalf("GetTransaction() failed: %v", err)
	}

	// A cached record keeps being served after the base forgets it
	base.forget(hashA)
	second, err := s.GetTransaction(ctx, hashA)
	if err != nil {
		t.Fatalf("cached GetTransaction() failed: %v", err)
	}
	if base.readCount() != 1 {
		t.Fatalf("expected one base read, got %d", base.readCount())
	}
	if *second.To != *first.To || second.Value != first.Value || second.BlockNumber != first.BlockNumber {
		t.Fatalf("cached record differs: %+v vs %+v", second, first)
	}

	_, err = s.GetTransaction(ctx, hashB)
	if !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestCachedStore_InsertPopulatesCache(t *testing.T) {
	addr := setupRedis(t)
	base := newMemStore()
	s := newCachedTestStore(t, addr, base)
	ctx := context.Background()

	inserted, err := s.InsertTransaction(ctx, newTestTransaction(hashB, "5"))
	if err != nil {
		t.Fatalf("InsertTransaction() failed: %v", err)
	}
	if !inserted {
		t.Fatal("expected insert to write")
	}

	got, err := s.GetTransaction(ctx, hashB)
	if err != nil {
		t.Fatalf("GetTransaction() failed: %v", err)
	}
	if got.Value != "5" {
		t.Fatalf("unexpected value %q", got.Value)
	}
	if base.readCount() != 0 {
		t.Fatalf("expected read to be served from cache, got %d base reads", base.readCount())
	}
}

func TestCachedStore_CorruptEntryFallsBack(t *testing.T) {
	addr := setupRedis(t)
	base := newMemStore()
	ctx := context.Background()

	if _, err := base.InsertTransaction(ctx, newTestTransaction(hashC, "3")); err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}

	raw := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = raw.Close() })
	if err := raw.Set(ctx, cacheKey(hashC), "not-json", time.Minute).Err(); err != nil {
		t.Fatalf("failed to seed corrupt entry: %v", err)
	}

	s := newCachedTestStore(t, addr, base)
	got, err := s.GetTransaction(ctx, hashC)
	if err != nil {
		t.Fatalf("GetTransaction() failed: %v", err)
	}
	if got.Value != "3" || base.readCount() != 1 {
		t.Fatalf("expected fallback to base, got value %q after %d reads", got.Value, base.readCount())
	}
}
