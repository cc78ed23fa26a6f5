package result

import "time"

// Transaction execution statuses reported by the indexer.
const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

// Transaction is a contract-invoking transaction captured by the indexer.
type Transaction struct {
	// Hash is the transaction hash.
	Hash string `json:"hash"`
	// Ledger is the sequence of the ledger the transaction was applied in.
	Ledger uint32 `json:"ledger"`
	// ContractID is the address of the invoked contract.
	ContractID string `json:"contractId"`
	// Account is the source account of the transaction.
	Account string `json:"account"`
	// Status is one of the TransactionStatus* values.
	Status string `json:"status"`
	// Operation is the invoked contract function name.
	Operation string `json:"operation,omitempty"`
	// FeeCharged is the fee actually charged, in stroops.
	FeeCharged int64 `json:"feeCharged"`
	// CreatedAt is the close time of the containing ledger.
	CreatedAt time.Time `json:"createdAt"`
}
