// Package ethereum resolves transaction hashes against an Ethereum node
package ethereum

import (
	"context"
	"errors"
	"fmt"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/lime-api/pkg/config"
	"github.com/chainsafe/lime-api/pkg/transaction"
)

// ChainReader is the subset of ethclient.Client the resolver needs
type ChainReader interface {
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionSender(ctx context.Context, tx *types.Transaction, block common.Hash, index uint) (common.Address, error)
}

// Resolver fetches a transaction and its receipt and normalizes them
type Resolver struct {
	reader ChainReader
	closer func()
	cfg    config.EthereumConfig
	logger *zap.Logger
}

// NewResolver dials the configured node
func NewResolver(ctx context.Context, cfg config.EthereumConfig, logger *zap.Logger) (*Resolver, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	logger.Info("Connected to Ethereum node", zap.Duration("request_timeout", cfg.RequestTimeout))

	r := NewResolverWithReader(client, cfg, logger)
	r.closer = client.Close
	return r, nil
}

// NewResolverWithReader builds a resolver over an existing reader
func NewResolverWithReader(reader ChainReader, cfg config.EthereumConfig, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		reader: reader,
		cfg:    cfg,
		logger: logger,
	}
}

// Close closes the underlying RPC client, if the resolver dialed one
func (r *Resolver) Close() {
	if r.closer != nil {
		r.closer()
	}
}

// Resolve returns the normalized record for hash.
// A transaction that is unknown, still pending, or has no receipt yet
// yields (nil, nil). RPC failures are returned as errors; partial data is
// never turned into a record.
func (r *Resolver) Resolve(ctx context.Context, hash common.Hash) (*transaction.Transaction, error) {
	if r.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.RequestTimeout)
		defer cancel()
	}

	tx, pending, err := r.reader.TransactionByHash(ctx, hash)
	if errors.Is(err, geth.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction %s: %w", hash.Hex(), err)
	}
	if pending {
		r.logger.Debug("Transaction is pending", zap.String("hash", hash.Hex()))
		return nil, nil
	}

	receipt, err := r.reader.TransactionReceipt(ctx, hash)
	if errors.Is(err, geth.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt %s: %w", hash.Hex(), err)
	}

	from, err := r.sender(ctx, tx, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to recover sender of %s: %w", hash.Hex(), err)
	}

	return FromGeth(tx, receipt, from), nil
}

// sender prefers the node-reported sender and falls back to signature recovery
func (r *Resolver) sender(ctx context.Context, tx *types.Transaction, receipt *types.Receipt) (common.Address, error) {
	from, err := r.reader.TransactionSender(ctx, tx, receipt.BlockHash, receipt.TransactionIndex)
	if err == nil {
		return from, nil
	}
	r.logger.Debug("Node did not report sender, recovering from signature",
		zap.String("hash", tx.Hash().Hex()),
		zap.Error(err),
	)
	return types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
}
