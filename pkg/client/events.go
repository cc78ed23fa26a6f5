package client

import (
	"context"
	"net/http"

	"github.com/soroscan/soroscan-go/pkg/soroapi"
	"github.com/soroscan/soroscan-go/pkg/soroapi/result"
)

// GetEvents retrieves contract events matching the given filter. Events can
// be narrowed down by contract, event type and ledger range; use the embedded
// pagination parameters to walk the result set.
func (c *Client) GetEvents(ctx context.Context, filter soroapi.EventFilter) (soroapi.Page[result.Event], error) {
	var page soroapi.Page[result.Event]
	err := c.performRequest(ctx, http.MethodGet, "/v1/events", filter.Values(), nil, &page)
	if err != nil {
		return soroapi.Page[result.Event]{}, err
	}
	return page, nil
}
