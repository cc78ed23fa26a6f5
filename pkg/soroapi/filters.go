package soroapi

import (
	"net/url"
	"strconv"
)

// EventFilter narrows down a contract event listing. All fields are optional,
// zero values are omitted from the request.
type EventFilter struct {
	// ContractID limits events to the given contract address.
	ContractID string
	// EventType limits events to the given type name.
	EventType string
	// StartLedger and EndLedger bound the ledger range (inclusive).
	StartLedger uint32
	EndLedger   uint32
	Pagination
}

// Values returns the filter as URL query values.
func (f EventFilter) Values() url.Values {
	values := make(url.Values)
	if f.ContractID != "" {
		values.Set("contractId", f.ContractID)
	}
	if f.EventType != "" {
		values.Set("eventType", f.EventType)
	}
	if f.StartLedger != 0 {
		values.Set("startLedger", strconv.FormatUint(uint64(f.StartLedger), 10))
	}
	if f.EndLedger != 0 {
		values.Set("endLedger", strconv.FormatUint(uint64(f.EndLedger), 10))
	}
	f.appendQuery(values)
	return values
}

// ContractFilter narrows down a tracked contract listing. All fields are
// optional.
type ContractFilter struct {
	// Type limits results to contracts of the given kind (token, amm, ...).
	Type string
	// Creator limits results to contracts deployed by the given account.
	Creator string
	// Search matches against contract names and addresses.
	Search string
	// Verified, when set, limits results to contracts with a matching
	// source-verification state.
	Verified *bool
	Pagination
}

// Values returns the filter as URL query values.
func (f ContractFilter) Values() url.Values {
	values := make(url.Values)
	if f.Type != "" {
		values.Set("type", f.Type)
	}
	if f.Creator != "" {
		values.Set("creator", f.Creator)
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.Verified != nil {
		values.Set("verified", strconv.FormatBool(*f.Verified))
	}
	f.appendQuery(values)
	return values
}

// TransactionFilter narrows down a transaction listing. All fields are
// optional.
type TransactionFilter struct {
	// ContractID limits transactions to ones invoking the given contract.
	ContractID string
	// Account limits transactions to ones submitted by the given account.
	Account string
	// Status limits transactions by execution status, see the
	// result.TransactionStatus* constants.
	Status string
	Pagination
}

// Values returns the filter as URL query values.
func (f TransactionFilter) Values() url.Values {
	values := make(url.Values)
	if f.ContractID != "" {
		values.Set("contractId", f.ContractID)
	}
	if f.Account != "" {
		values.Set("account", f.Account)
	}
	if f.Status != "" {
		values.Set("status", f.Status)
	}
	f.appendQuery(values)
	return values
}
