// Package txstore persists resolved transaction records and the per-user
// lookup history that references them.
package txstore

import (
	"context"
	"errors"

	"github.com/chainsafe/lime-api/pkg/transaction"
)

// ErrTransactionNotFound is returned when no record exists for a hash.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionStore holds immutable transaction records keyed by hash.
// Hashes are lowercase 0x-prefixed hex.
type TransactionStore interface {
	GetTransaction(ctx context.Context, hash string) (*transaction.Transaction, error)
	// InsertTransaction writes tx unless a record with the same hash exists.
	// It reports whether a row was written; an existing record is not an error.
	InsertTransaction(ctx context.Context, tx *transaction.Transaction) (bool, error)
	ListTransactions(ctx context.Context) ([]*transaction.Transaction, error)
	ListTransactionsByHashes(ctx context.Context, hashes []string) ([]*transaction.Transaction, error)
}

// SearchStore holds the (username, hash) pairs attributed to authenticated lookups
type SearchStore interface {
	SearchExists(ctx context.Context, username, hash string) (bool, error)
	InsertSearch(ctx context.Context, username, hash string) (bool, error)
	ListSearchedHashes(ctx context.Context, username string) ([]string, error)
	ListSearchedTransactions(ctx context.Context, username string) ([]*transaction.Transaction, error)
}

// Store combines record and history persistence
type Store interface {
	TransactionStore
	SearchStore
}
