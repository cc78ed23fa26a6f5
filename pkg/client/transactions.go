package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/soroscan/soroscan-go/pkg/soroapi"
	"github.com/soroscan/soroscan-go/pkg/soroapi/result"
)

// GetTransactions retrieves transactions matching the given filter.
func (c *Client) GetTransactions(ctx context.Context, filter soroapi.TransactionFilter) (soroapi.Page[result.Transaction], error) {
	var page soroapi.Page[result.Transaction]
	err := c.performRequest(ctx, http.MethodGet, "/v1/transactions", filter.Values(), nil, &page)
	if err != nil {
		return soroapi.Page[result.Transaction]{}, err
	}
	return page, nil
}

// GetTransaction retrieves a single transaction by its hash.
func (c *Client) GetTransaction(ctx context.Context, txHash string) (result.Transaction, error) {
	var tx result.Transaction
	err := c.performRequest(ctx, http.MethodGet, "/v1/transactions/"+url.PathEscape(txHash), nil, nil, &tx)
	if err != nil {
		return result.Transaction{}, err
	}
	return tx, nil
}
