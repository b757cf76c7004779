package txstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/lime-api/pkg/transaction"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the transaction store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) GetTransaction(ctx context.Context, hash string) (*transaction.Transaction, error) {
	dao := new(TransactionDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("transaction_hash = ?", hash).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return toTransaction(dao), nil
}

func (s *pgStore) InsertTransaction(ctx context.Context, tx *transaction.Transaction) (bool, error) {
	res, err := s.db.NewInsert().
		Model(toTransactionDao(tx)).
		On("CONFLICT (transaction_hash) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return inserted(res)
}

func (s *pgStore) ListTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	var daos []TransactionDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("transaction_hash ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return toTransactions(daos), nil
}

func (s *pgStore) ListTransactionsByHashes(ctx context.Context, hashes []string) ([]*transaction.Transaction, error) {
	if len(hashes) == 0 {
		return []*transaction.Transaction{}, nil
	}

	var daos []TransactionDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("transaction_hash IN (?)", bun.In(hashes)).
		Order("transaction_hash ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by hash: %w", err)
	}
	return toTransactions(daos), nil
}

func (s *pgStore) SearchExists(ctx context.Context, username, hash string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*SearchDao)(nil)).
		Where("username = ?", username).
		Where("transaction_hash = ?", hash).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check search history: %w", err)
	}
	return exists, nil
}

func (s *pgStore) InsertSearch(ctx context.Context, username, hash string) (bool, error) {
	res, err := s.db.NewInsert().
		Model(&SearchDao{Username: username, TransactionHash: hash}).
		On("CONFLICT (username, transaction_hash) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert search history: %w", err)
	}
	return inserted(res)
}

func (s *pgStore) ListSearchedHashes(ctx context.Context, username string) ([]string, error) {
	hashes := make([]string, 0)
	err := s.db.NewSelect().
		Model((*SearchDao)(nil)).
		Column("transaction_hash").
		Distinct().
		Where("username = ?", username).
		Order("transaction_hash ASC").
		Scan(ctx, &hashes)
	if err != nil {
		return nil, fmt.Errorf("failed to list searched hashes: %w", err)
	}
	return hashes, nil
}

func (s *pgStore) ListSearchedTransactions(ctx context.Context, username string) ([]*transaction.Transaction, error) {
	searched := s.db.NewSelect().
		Model((*SearchDao)(nil)).
		Column("transaction_hash").
		Where("username = ?", username)

	var daos []TransactionDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("t.transaction_hash IN (?)", searched).
		Order("t.transaction_hash ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list searched transactions: %w", err)
	}
	return toTransactions(daos), nil
}

func inserted(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}
