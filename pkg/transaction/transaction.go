// Package transaction holds the normalized transaction record and the
// decoding rules for the hashes clients use to look records up.
package transaction

// Transaction is the normalized view of a finalized on-chain transaction and
// its receipt. Hashes and addresses are lowercase 0x-prefixed hex, Value is
// the wei amount in base 10.
type Transaction struct {
	TransactionHash   string  `json:"transactionHash"`
	TransactionStatus bool    `json:"transactionStatus"`
	BlockHash         string  `json:"blockHash"`
	BlockNumber       int64   `json:"blockNumber"`
	From              string  `json:"from"`
	To                *string `json:"to"`
	ContractAddress   *string `json:"contractAddress"`
	LogsCount         int64   `json:"logsCount"`
	Input             string  `json:"input"`
	Value             string  `json:"value"`
}

// ListResponse is the body returned by every endpoint that lists transactions
type ListResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

// NewListResponse wraps txs, never encoding a nil slice as null.
func NewListResponse(txs []*Transaction) *ListResponse {
	if txs == nil {
		txs = []*Transaction{}
	}
	return &ListResponse{Transactions: txs}
}
