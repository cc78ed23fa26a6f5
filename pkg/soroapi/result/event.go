package result

import (
	"encoding/json"
	"time"
)

// Event is a single contract event captured by the indexer.
type Event struct {
	// ID is the indexer-assigned event identifier.
	ID string `json:"id"`
	// ContractID is the address of the emitting contract.
	ContractID string `json:"contractId"`
	// TxHash is the hash of the transaction the event was emitted in.
	TxHash string `json:"txHash"`
	// Ledger is the sequence of the ledger the event was recorded in.
	Ledger uint32 `json:"ledger"`
	// EventType is the event type name as emitted by the contract.
	EventType string `json:"eventType"`
	// Topics are the decoded event topic values.
	Topics []string `json:"topics"`
	// Data is the raw decoded event payload. Its shape is contract-specific,
	// so it is left to the caller to interpret.
	Data json.RawMessage `json:"data"`
	// LedgerClosedAt is the close time of the containing ledger.
	LedgerClosedAt time.Time `json:"ledgerClosedAt"`
}
