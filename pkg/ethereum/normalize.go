package ethereum

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/lime-api/pkg/transaction"
)

// FromGeth normalizes a mined transaction, its receipt and its sender.
// Hashes and addresses come out as lowercase 0x hex and the value in base 10.
func FromGeth(tx *types.Transaction, receipt *types.Receipt, from common.Address) *transaction.Transaction {
	rec := &transaction.Transaction{
		TransactionHash:   tx.Hash().Hex(),
		TransactionStatus: receipt.Status == types.ReceiptStatusSuccessful,
		BlockHash:         receipt.BlockHash.Hex(),
		From:              encodeAddress(from),
		LogsCount:         int64(len(receipt.Logs)),
		Input:             hexutil.Encode(tx.Data()),
		Value:             tx.Value().String(),
	}

	if receipt.BlockNumber != nil {
		rec.BlockNumber = receipt.BlockNumber.Int64()
	}
	if to := tx.To(); to != nil {
		addr := encodeAddress(*to)
		rec.To = &addr
	}
	if receipt.ContractAddress != (common.Address{}) {
		addr := encodeAddress(receipt.ContractAddress)
		rec.ContractAddress = &addr
	}

	return rec
}

func encodeAddress(addr common.Address) string {
	return hexutil.Encode(addr[:])
}
