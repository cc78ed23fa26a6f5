package result

import "time"

// Contract is a smart contract tracked by the indexer.
type Contract struct {
	// ID is the contract address.
	ID string `json:"id"`
	// Name is a human-readable contract name, if known.
	Name string `json:"name,omitempty"`
	// Type classifies the contract (token, amm, nft, ...).
	Type string `json:"type"`
	// Creator is the account that deployed the contract.
	Creator string `json:"creator"`
	// Verified reports whether the contract source has been verified.
	Verified bool `json:"verified"`
	// EventCount is the total number of events indexed for the contract.
	EventCount int64 `json:"eventCount"`
	// TxCount is the total number of transactions invoking the contract.
	TxCount int64 `json:"txCount"`
	// CreatedAt is the close time of the ledger the contract was deployed in.
	CreatedAt time.Time `json:"createdAt"`
}
