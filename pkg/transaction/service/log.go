package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/lime-api/pkg/transaction"
)

const serviceName = "TransactionService"

// hashesLogLimit caps how many hashes of a batch are logged
const hashesLogLimit = 5

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the transaction Service.
// It logs method entry/exit, duration, errors and result sizes.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// ResolveBatch wraps the service method with logging
func (ls *logService) ResolveBatch(
	ctx context.Context,
	hashes []common.Hash,
	subject string,
) (txs []*transaction.Transaction, err error) {
	start := time.Now()

	ls.logger.Info("ResolveBatch started",
		zap.String("service", serviceName),
		zap.String("method", "ResolveBatch"),
		zap.Int("hashes", len(hashes)),
		zap.Strings("sample", sampleHashes(hashes)),
		zap.Bool("authenticated", subject != ""),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("ResolveBatch failed",
				zap.String("service", serviceName),
				zap.String("method", "ResolveBatch"),
				zap.Int("hashes", len(hashes)),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("ResolveBatch completed",
				zap.String("service", serviceName),
				zap.String("method", "ResolveBatch"),
				zap.Int("hashes", len(hashes)),
				zap.Int("resolved", len(txs)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.ResolveBatch(ctx, hashes, subject)
}

// ListAll wraps the service method with logging
func (ls *logService) ListAll(ctx context.Context) (txs []*transaction.Transaction, err error) {
	start := time.Now()

	defer func() {
		ls.logResult("ListAll", "", len(txs), time.Since(start), err)
	}()

	return ls.svc.ListAll(ctx)
}

// ListForSubject wraps the service method with logging
func (ls *logService) ListForSubject(ctx context.Context, subject string) (txs []*transaction.Transaction, err error) {
	start := time.Now()

	defer func() {
		ls.logResult("ListForSubject", subject, len(txs), time.Since(start), err)
	}()

	return ls.svc.ListForSubject(ctx, subject)
}

func (ls *logService) logResult(method, subject string, count int, duration time.Duration, err error) {
	fields := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", duration),
	}
	if subject != "" {
		fields = append(fields, zap.String("username", subject))
	}

	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", append(fields, zap.Int("count", count))...)
}

func sampleHashes(hashes []common.Hash) []string {
	n := min(len(hashes), hashesLogLimit)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = hashes[i].Hex()
	}
	return out
}
