package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/soroscan/soroscan-go/pkg/soroapi"
	"github.com/soroscan/soroscan-go/pkg/soroapi/result"
)

// GetLedgers retrieves closed ledgers, newest first, using the given
// pagination parameters.
func (c *Client) GetLedgers(ctx context.Context, pg soroapi.Pagination) (soroapi.Page[result.Ledger], error) {
	var page soroapi.Page[result.Ledger]
	err := c.performRequest(ctx, http.MethodGet, "/v1/ledgers", pg.Values(), nil, &page)
	if err != nil {
		return soroapi.Page[result.Ledger]{}, err
	}
	return page, nil
}

// GetLedger retrieves a single ledger by its sequence number.
func (c *Client) GetLedger(ctx context.Context, sequence uint32) (result.Ledger, error) {
	var ledger result.Ledger
	err := c.performRequest(ctx, http.MethodGet, "/v1/ledgers/"+strconv.FormatUint(uint64(sequence), 10), nil, nil, &ledger)
	if err != nil {
		return result.Ledger{}, err
	}
	return ledger, nil
}
