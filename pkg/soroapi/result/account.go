package result

import "time"

// Account is a network account as seen by the indexer.
type Account struct {
	// ID is the account address.
	ID string `json:"id"`
	// Balance is the native asset balance as a decimal string.
	Balance string `json:"balance"`
	// Sequence is the current account sequence number.
	Sequence int64 `json:"sequence"`
	// TxCount is the number of indexed transactions submitted by the account.
	TxCount int64 `json:"txCount"`
	// LastActiveAt is the close time of the last ledger the account
	// transacted in.
	LastActiveAt time.Time `json:"lastActiveAt"`
}
