package result

import "time"

// Ledger is a closed ledger as recorded by the indexer.
type Ledger struct {
	// Sequence is the ledger sequence number.
	Sequence uint32 `json:"sequence"`
	// Hash is the ledger header hash.
	Hash string `json:"hash"`
	// PrevHash is the hash of the preceding ledger.
	PrevHash string `json:"prevHash"`
	// TxCount is the number of transactions applied in the ledger.
	TxCount int `json:"txCount"`
	// EventCount is the number of contract events emitted in the ledger.
	EventCount int `json:"eventCount"`
	// ClosedAt is the ledger close time.
	ClosedAt time.Time `json:"closedAt"`
}
