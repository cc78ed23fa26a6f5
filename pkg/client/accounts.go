package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/soroscan/soroscan-go/pkg/soroapi/result"
)

// GetAccount retrieves a single account by its address.
func (c *Client) GetAccount(ctx context.Context, accountID string) (result.Account, error) {
	var acc result.Account
	err := c.performRequest(ctx, http.MethodGet, "/v1/accounts/"+url.PathEscape(accountID), nil, nil, &acc)
	if err != nil {
		return result.Account{}, err
	}
	return acc, nil
}
