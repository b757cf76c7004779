package txstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/lime-api/pkg/transaction"
)

// TransactionDao maps directly to the 'transactions' table in PostgreSQL.
type TransactionDao struct {
	bun.BaseModel     `bun:"table:transactions,alias:t"`
	TransactionHash   string    `bun:"transaction_hash,pk,type:varchar(66)"`
	TransactionStatus bool      `bun:"transaction_status,notnull"`
	BlockHash         string    `bun:"block_hash,notnull,type:varchar(66)"`
	BlockNumber       int64     `bun:"block_number,notnull"`
	From              string    `bun:"from,notnull,type:varchar(42)"`
	To                *string   `bun:"to,type:varchar(42)"`
	ContractAddress   *string   `bun:"contract_address,type:varchar(42)"`
	LogsCount         int64     `bun:"logs_count,notnull"`
	Input             string    `bun:"input,notnull,type:text"`
	Value             string    `bun:"value,notnull,type:text"`
	CreatedAt         time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// SearchDao maps directly to the 'users_searches' table in PostgreSQL.
// (username, transaction_hash) is unique; see the limedb migrations.
type SearchDao struct {
	bun.BaseModel   `bun:"table:users_searches,alias:us"`
	ID              int64     `bun:"id,pk,autoincrement"`
	Username        string    `bun:"username,notnull,type:varchar(255)"`
	TransactionHash string    `bun:"transaction_hash,notnull,type:varchar(66)"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toTransactionDao(tx *transaction.Transaction) *TransactionDao {
	return &TransactionDao{
		TransactionHash:   tx.TransactionHash,
		TransactionStatus: tx.TransactionStatus,
		BlockHash:         tx.BlockHash,
		BlockNumber:       tx.BlockNumber,
		From:              tx.From,
		To:                tx.To,
		ContractAddress:   tx.ContractAddress,
		LogsCount:         tx.LogsCount,
		Input:             tx.Input,
		Value:             tx.Value,
	}
}

func toTransaction(dao *TransactionDao) *transaction.Transaction {
	return &transaction.Transaction{
		TransactionHash:   dao.TransactionHash,
		TransactionStatus: dao.TransactionStatus,
		BlockHash:         dao.BlockHash,
		BlockNumber:       dao.BlockNumber,
		From:              dao.From,
		To:                dao.To,
		ContractAddress:   dao.ContractAddress,
		LogsCount:         dao.LogsCount,
		Input:             dao.Input,
		Value:             dao.Value,
	}
}

func toTransactions(daos []TransactionDao) []*transaction.Transaction {
	txs := make([]*transaction.Transaction, len(daos))
	for i := range daos {
		txs[i] = toTransaction(&daos[i])
	}
	return txs
}
