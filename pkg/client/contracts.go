package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/soroscan/soroscan-go/pkg/soroapi"
	"github.com/soroscan/soroscan-go/pkg/soroapi/result"
)

// GetContracts retrieves tracked contracts matching the given filter.
func (c *Client) GetContracts(ctx context.Context, filter soroapi.ContractFilter) (soroapi.Page[result.Contract], error) {
	var page soroapi.Page[result.Contract]
	err := c.performRequest(ctx, http.MethodGet, "/v1/contracts", filter.Values(), nil, &page)
	if err != nil {
		return soroapi.Page[result.Contract]{}, err
	}
	return page, nil
}

// GetContract retrieves a single contract by its address. A contract unknown
// to the indexer surfaces as a *soroapi.Error with the NOT_FOUND code.
func (c *Client) GetContract(ctx context.Context, contractID string) (result.Contract, error) {
	var ctr result.Contract
	err := c.performRequest(ctx, http.MethodGet, "/v1/contracts/"+url.PathEscape(contractID), nil, nil, &ctr)
	if err != nil {
		return result.Contract{}, err
	}
	return ctr, nil
}
